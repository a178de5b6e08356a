package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/hltv-api/internal/domain/player"
	"github.com/riskibarqy/hltv-api/internal/extraction"
	"github.com/riskibarqy/hltv-api/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

type PlayerService struct {
	fetcher   DocumentFetcher
	extractor *extraction.Extractor
	pages     Pages
	logger    *logging.Logger
}

func NewPlayerService(fetcher DocumentFetcher, extractor *extraction.Extractor, pages Pages, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		fetcher:   fetcher,
		extractor: extractor,
		pages:     pages,
		logger:    logger,
	}
}

func (s *PlayerService) GetPlayer(ctx context.Context, id int64) (out player.Player, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer func() { finishUsecaseSpan(span, err) }()

	if id <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id must be positive", ErrInvalidInput)
	}

	raw, err := s.fetcher.Fetch(ctx, s.pages.PlayerProfile(id))
	if err != nil {
		return player.Player{}, fmt.Errorf("fetch player profile: %w", err)
	}

	item, err := s.extractor.Player(ctx, id, raw)
	if err != nil {
		return player.Player{}, fmt.Errorf("extract player: %w", err)
	}

	return item, nil
}

// GetStatistics reads the summary and individual statistics pages
// concurrently. A failed individual page leaves its metrics unset.
func (s *PlayerService) GetStatistics(ctx context.Context, id int64) (out player.Statistics, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetStatistics")
	defer func() { finishUsecaseSpan(span, err) }()

	if id <= 0 {
		return player.Statistics{}, fmt.Errorf("%w: player id must be positive", ErrInvalidInput)
	}

	var (
		summary    []byte
		summaryErr error
		individual []byte
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		summary, summaryErr = s.fetcher.Fetch(ctx, s.pages.PlayerSummary(id))
	})
	wg.Go(func() {
		raw, err := s.fetcher.Fetch(ctx, s.pages.PlayerIndividual(id))
		if err != nil {
			s.logger.WarnContext(ctx, "player individual statistics unavailable", "player_id", id, "error", err)
			return
		}
		individual = raw
	})
	wg.Wait()

	if summaryErr != nil {
		return player.Statistics{}, fmt.Errorf("fetch player statistics: %w", summaryErr)
	}

	stats, err := s.extractor.PlayerStatistics(ctx, summary, individual)
	if err != nil {
		return player.Statistics{}, fmt.Errorf("extract player statistics: %w", err)
	}

	return stats, nil
}
