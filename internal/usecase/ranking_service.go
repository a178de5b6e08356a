package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/hltv-api/internal/domain/ranking"
	"github.com/riskibarqy/hltv-api/internal/extraction"
)

type RankingService struct {
	fetcher   DocumentFetcher
	extractor *extraction.Extractor
	pages     Pages
}

func NewRankingService(fetcher DocumentFetcher, extractor *extraction.Extractor, pages Pages) *RankingService {
	return &RankingService{
		fetcher:   fetcher,
		extractor: extractor,
		pages:     pages,
	}
}

func (s *RankingService) GetRanking(ctx context.Context) (out []ranking.Entry, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.GetRanking")
	defer func() { finishUsecaseSpan(span, err) }()

	raw, err := s.fetcher.Fetch(ctx, s.pages.Ranking())
	if err != nil {
		return nil, fmt.Errorf("fetch ranking: %w", err)
	}

	entries, err := s.extractor.Ranking(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("extract ranking: %w", err)
	}

	return entries, nil
}
