package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/hltv-api/internal/domain/search"
	"github.com/riskibarqy/hltv-api/internal/extraction"
)

type SearchService struct {
	fetcher   DocumentFetcher
	extractor *extraction.Extractor
	pages     Pages
}

func NewSearchService(fetcher DocumentFetcher, extractor *extraction.Extractor, pages Pages) *SearchService {
	return &SearchService{
		fetcher:   fetcher,
		extractor: extractor,
		pages:     pages,
	}
}

// FindTeam returns the first team hit for term.
func (s *SearchService) FindTeam(ctx context.Context, term string) (out search.Team, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SearchService.FindTeam")
	defer func() { finishUsecaseSpan(span, err) }()

	raw, err := s.lookup(ctx, term)
	if err != nil {
		return search.Team{}, err
	}

	item, err := s.extractor.SearchTeam(ctx, raw)
	if err != nil {
		return search.Team{}, fmt.Errorf("extract team search: %w", err)
	}

	return item, nil
}

// FindPlayer returns the first player hit for term.
func (s *SearchService) FindPlayer(ctx context.Context, term string) (out search.Player, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SearchService.FindPlayer")
	defer func() { finishUsecaseSpan(span, err) }()

	raw, err := s.lookup(ctx, term)
	if err != nil {
		return search.Player{}, err
	}

	item, err := s.extractor.SearchPlayer(ctx, raw)
	if err != nil {
		return search.Player{}, fmt.Errorf("extract player search: %w", err)
	}

	return item, nil
}

func (s *SearchService) lookup(ctx context.Context, term string) ([]byte, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fmt.Errorf("%w: search term is required", ErrInvalidInput)
	}

	raw, err := s.fetcher.Fetch(ctx, s.pages.Search(term))
	if err != nil {
		return nil, fmt.Errorf("fetch search: %w", err)
	}

	return raw, nil
}
