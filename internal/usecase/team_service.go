package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/hltv-api/internal/domain/match"
	"github.com/riskibarqy/hltv-api/internal/domain/team"
	"github.com/riskibarqy/hltv-api/internal/extraction"
	"github.com/riskibarqy/hltv-api/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

type TeamService struct {
	fetcher   DocumentFetcher
	extractor *extraction.Extractor
	pages     Pages
	logger    *logging.Logger
}

func NewTeamService(fetcher DocumentFetcher, extractor *extraction.Extractor, pages Pages, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamService{
		fetcher:   fetcher,
		extractor: extractor,
		pages:     pages,
		logger:    logger,
	}
}

// GetTeam reads the profile, upcoming and results pages concurrently. Only
// the profile is required; the match lists fall back to empty.
func (s *TeamService) GetTeam(ctx context.Context, id int64) (out team.Team, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer func() { finishUsecaseSpan(span, err) }()

	if id <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}

	var (
		profile    team.Team
		profileErr error
		upcoming   []match.Upcoming
		results    []match.Result
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		profile, profileErr = s.profile(ctx, id)
	})
	wg.Go(func() {
		items, err := s.GetUpcoming(ctx, id)
		if err != nil {
			s.logger.WarnContext(ctx, "team upcoming matches unavailable", "team_id", id, "error", err)
			return
		}
		upcoming = items
	})
	wg.Go(func() {
		items, err := s.GetResults(ctx, id)
		if err != nil {
			s.logger.WarnContext(ctx, "team results unavailable", "team_id", id, "error", err)
			return
		}
		results = items
	})
	wg.Wait()

	if profileErr != nil {
		return team.Team{}, profileErr
	}

	if upcoming == nil {
		upcoming = []match.Upcoming{}
	}
	if results == nil {
		results = []match.Result{}
	}
	profile.Upcoming = upcoming
	profile.Results = results

	return profile, nil
}

func (s *TeamService) GetUpcoming(ctx context.Context, id int64) (out []match.Upcoming, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetUpcoming")
	defer func() { finishUsecaseSpan(span, err) }()

	if id <= 0 {
		return nil, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}

	raw, err := s.fetcher.Fetch(ctx, s.pages.TeamUpcoming(id))
	if err != nil {
		return nil, fmt.Errorf("fetch upcoming matches: %w", err)
	}

	items, err := s.extractor.UpcomingMatches(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("extract upcoming matches: %w", err)
	}

	return items, nil
}

func (s *TeamService) GetResults(ctx context.Context, id int64) (out []match.Result, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetResults")
	defer func() { finishUsecaseSpan(span, err) }()

	if id <= 0 {
		return nil, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}

	raw, err := s.fetcher.Fetch(ctx, s.pages.TeamResults(id))
	if err != nil {
		return nil, fmt.Errorf("fetch results: %w", err)
	}

	items, err := s.extractor.Results(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("extract results: %w", err)
	}

	return items, nil
}

func (s *TeamService) profile(ctx context.Context, id int64) (team.Team, error) {
	raw, err := s.fetcher.Fetch(ctx, s.pages.TeamProfile(id))
	if err != nil {
		return team.Team{}, fmt.Errorf("fetch team profile: %w", err)
	}

	item, err := s.extractor.Team(ctx, id, raw)
	if err != nil {
		return team.Team{}, fmt.Errorf("extract team: %w", err)
	}

	return item, nil
}
