package extraction

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/hltv-api/internal/domain/team"
	"github.com/riskibarqy/hltv-api/internal/platform/logging"
)

const testBaseURL = "https://www.hltv.org"

func newTestExtractor() *Extractor {
	return New(testBaseURL, logging.NewNop())
}

func fixture(t *testing.T, name string) []byte {
	t.Helper()

	raw, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return raw
}

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }
func stringPtr(v string) *string { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestExtractor_Team(t *testing.T) {
	t.Parallel()

	got, err := newTestExtractor().Team(context.Background(), 4608, fixture(t, "team.html"))
	if err != nil {
		t.Fatalf("Team error: %v", err)
	}

	want := team.Team{
		ID:               4608,
		Name:             "Natus Vincere",
		Logo:             "https://img-cdn.hltv.org/teamlogo/navi.svg",
		Ranking:          intPtr(2),
		Country:          &team.Country{Name: "Ukraine", Flag: "https://www.hltv.org/img/static/flags/30x20/UA.gif"},
		AveragePlayerAge: floatPtr(24.6),
		Coach:            stringPtr("B1ad3"),
		Players: []team.Player{
			{
				ID:       7998,
				Nickname: "s1mple",
				FullName: "Oleksandr Kostyliev",
				Image:    "https://img-cdn.hltv.org/playerbodyshot/s1mple.png",
				Country:  &team.Country{Name: "Ukraine", Flag: "https://www.hltv.org/img/static/flags/30x20/UA.gif"},
			},
			{
				ID:       9816,
				Nickname: "electronic",
				FullName: "Denis Sharipov",
				Image:    "https://www.hltv.org/img/static/player/player_silhouette.png",
			},
		},
		SocialMedia: []team.SocialLink{
			{Name: "twitter", Link: "https://www.twitter.com/natusvincere"},
			{Name: "instagram", Link: "https://www.instagram.com/natus_vincere_official"},
		},
		Trophies: []team.Trophy{
			{
				Name: "BLAST Premier World Final 2022",
				Logo: "https://www.hltv.org/img/static/trophies/blast.png",
				URL:  "https://www.hltv.org/events/6793/blast-premier-world-final-2022",
			},
			{
				Name: "PGL Major Stockholm 2021",
				Logo: "https://img-cdn.hltv.org/trophy/major.png",
				URL:  "https://www.hltv.org/events/6372/pgl-major-stockholm-2021",
			},
		},
		MapStats: team.MapStats{
			Available: true,
			WinRates:  map[string]float64{"mirage": 64.3, "dust2": 52},
		},
		RecentMaps: team.RecentMaps{
			Available: true,
			Items: []team.MapResult{
				{Opponent: "FaZe", Result: "W"},
				{Opponent: "G2", Result: "L"},
			},
		},
		UpcomingEvents: []team.Event{
			{
				Name:  "IEM Cologne 2024",
				Logo:  "https://img-cdn.hltv.org/eventlogo/cologne.png",
				Start: 1723161600000,
				End:   1723939200000,
				URL:   "https://www.hltv.org/events/7148/iem-cologne-2024",
			},
			{
				Name:  "Showmatch",
				Logo:  "https://www.hltv.org/img/static/event/logo/7200",
				Start: 1724000000000,
				End:   1724000000000,
				URL:   "https://www.hltv.org/events/7200/showmatch",
			},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("team mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractor_TeamOptionalGroupsFallBack(t *testing.T) {
	t.Parallel()

	got, err := newTestExtractor().Team(context.Background(), 11, fixture(t, "team_minimal.html"))
	if err != nil {
		t.Fatalf("Team error: %v", err)
	}

	if got.Ranking != nil || got.AveragePlayerAge != nil || got.Coach != nil || got.Country != nil {
		t.Fatalf("expected absent profile stats to stay nil, got %+v", got)
	}
	if got.MapStats.Available {
		t.Fatalf("map stats with mismatched names and containers should be unavailable")
	}
	if got.RecentMaps.Available {
		t.Fatalf("last maps with a broken record should be unavailable")
	}
	if got.UpcomingEvents == nil || len(got.UpcomingEvents) != 0 {
		t.Fatalf("expected empty upcoming events, got %#v", got.UpcomingEvents)
	}
	if got.Trophies == nil || len(got.Trophies) != 0 {
		t.Fatalf("expected empty trophies, got %#v", got.Trophies)
	}
	if got.Players == nil || got.SocialMedia == nil {
		t.Fatalf("lists must be non-nil")
	}
}

func TestExtractor_TeamNotFound(t *testing.T) {
	t.Parallel()

	_, err := newTestExtractor().Team(context.Background(), 1, []byte(`<html><body><div class="error">Page not found</div></body></html>`))
	if !errors.Is(err, ErrEntityNotFound) {
		t.Fatalf("expected ErrEntityNotFound, got %v", err)
	}
}

func TestExtractor_TeamMalformedStandaloneField(t *testing.T) {
	t.Parallel()

	raw := []byte(`<div class="teamProfile">
		<img class="teamlogo" src="/logo.svg"><h1 class="profile-team-name">X</h1>
		<div class="profile-team-stats-container"><div><span class="right">unranked</span></div></div>
	</div>`)
	_, err := newTestExtractor().Team(context.Background(), 1, raw)
	if !errors.Is(err, ErrMalformedField) {
		t.Fatalf("expected ErrMalformedField for ranking, got %v", err)
	}
}

func TestExtractor_TeamMissingName(t *testing.T) {
	t.Parallel()

	raw := []byte(`<div class="teamProfile"><img class="teamlogo" src="/logo.svg"></div>`)
	_, err := newTestExtractor().Team(context.Background(), 1, raw)
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Field != "name" {
		t.Fatalf("expected missing name, got %v", err)
	}
}
