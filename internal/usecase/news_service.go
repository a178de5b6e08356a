package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/hltv-api/internal/domain/news"
	"github.com/riskibarqy/hltv-api/internal/extraction"
)

type NewsService struct {
	fetcher   DocumentFetcher
	extractor *extraction.Extractor
	pages     Pages
}

func NewNewsService(fetcher DocumentFetcher, extractor *extraction.Extractor, pages Pages) *NewsService {
	return &NewsService{
		fetcher:   fetcher,
		extractor: extractor,
		pages:     pages,
	}
}

func (s *NewsService) ListNews(ctx context.Context) (out []news.Item, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.ListNews")
	defer func() { finishUsecaseSpan(span, err) }()

	raw, err := s.fetcher.Fetch(ctx, s.pages.News())
	if err != nil {
		return nil, fmt.Errorf("fetch news feed: %w", err)
	}

	items, err := s.extractor.News(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("extract news: %w", err)
	}

	return items, nil
}
