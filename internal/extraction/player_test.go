package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/hltv-api/internal/domain/player"
)

func TestExtractor_Player(t *testing.T) {
	t.Parallel()

	got, err := newTestExtractor().Player(context.Background(), 7998, fixture(t, "player.html"))
	if err != nil {
		t.Fatalf("Player error: %v", err)
	}

	last := player.Appearance{Year: 2022, Position: 2, NewsURL: "https://www.hltv.org/news/36050/top-20-players-of-2022-s1mple-2"}
	want := player.Player{
		ID:       7998,
		Nickname: "s1mple",
		Name:     player.Name{Full: "Oleksandr Kostyliev", First: "Oleksandr", Last: "Kostyliev"},
		Picture:  stringPtr("https://img-cdn.hltv.org/playerbodyshot/s1mple.png"),
		Age:      intPtr(26),
		Flag:     stringPtr("https://www.hltv.org/img/static/flags/30x20/UA.gif"),
		Career: player.CareerSummary{
			Available:         true,
			TeamsCount:        5,
			DaysInCurrentTeam: 120,
			DaysInTeams:       2900,
		},
		CurrentTeam: &player.Stint{
			Name:     "Natus Vincere",
			Logo:     "https://img-cdn.hltv.org/teamlogo/navi.svg",
			Entrance: 1475272800000,
			Trophies: []player.Trophy{
				{
					Name:     "PGL Major Stockholm 2021",
					Image:    "https://www.hltv.org/img/static/trophies/major.png",
					EventURL: "https://www.hltv.org/events/6372/pgl-major-stockholm-2021",
				},
			},
			URL: "https://www.hltv.org/team/4608/natus-vincere",
		},
		FormerTeams: []player.Stint{
			{
				Name:     "Liquid",
				Logo:     "https://www.hltv.org/img/static/team/liquid.svg",
				Entrance: 1451606400000,
				Left:     int64Ptr(1470009600000),
				Trophies: []player.Trophy{},
				URL:      "https://www.hltv.org/team/5973/liquid",
			},
		},
		Trophies: []player.Trophy{
			{
				Name:     "PGL Major Stockholm 2021",
				Image:    "https://img-cdn.hltv.org/trophy/major.png",
				EventURL: "https://www.hltv.org/events/6372/pgl-major-stockholm-2021",
			},
			{
				Name:     "BLAST Premier World Final 2022",
				Image:    "https://www.hltv.org/img/static/trophies/blast.png",
				EventURL: "https://www.hltv.org/events/6793/blast-premier-world-final-2022",
			},
		},
		MVPs: []player.Trophy{
			{
				Name:     "PGL Major Stockholm 2021",
				Image:    "https://www.hltv.org/img/static/mvp/mvp.png",
				EventURL: "https://www.hltv.org/events/6372/pgl-major-stockholm-2021",
			},
		},
		Top20: player.Top20{
			HasAppeared: true,
			Last:        &last,
			All: []player.Appearance{
				{Year: 2018, Position: 1, NewsURL: "https://www.hltv.org/news/28410/top-20-players-of-2018-s1mple-1"},
				{Year: 2021, Position: 1, NewsURL: "https://www.hltv.org/news/33215/top-20-players-of-2021-s1mple-1"},
				last,
			},
		},
		Stats: &player.Stats{
			Rating:             1.26,
			KillsPerRound:      0.86,
			HeadshotPercentage: 41.2,
			MapsPlayed:         1311,
			DeathsPerRound:     0.62,
			RoundsContributed:  76.5,
		},
		MajorWinner: player.MajorWinner{Winner: true, Champions: intPtr(1)},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("player mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractor_PlayerGroupDefaults(t *testing.T) {
	t.Parallel()

	raw := []byte(`<div class="playerProfile">
		<h1 class="playerNickname">Zeus</h1>
		<div class="playerRealname">Danylo</div>
		<div class="highlighted-stat"><div class="stat">3</div></div>
	</div>`)

	got, err := newTestExtractor().Player(context.Background(), 42, raw)
	if err != nil {
		t.Fatalf("Player error: %v", err)
	}

	if got.Name.First != "Danylo" || got.Name.Last != "" {
		t.Fatalf("unexpected name split %+v", got.Name)
	}
	if got.Picture != nil || got.Age != nil || got.Flag != nil {
		t.Fatalf("expected nil optional fields, got %+v", got)
	}
	if got.Career.Available {
		t.Fatalf("incomplete career block should be unavailable")
	}
	if got.CurrentTeam != nil || got.Stats != nil {
		t.Fatalf("expected nil current team and stats")
	}
	if got.MajorWinner.Winner || got.MajorWinner.Champions != nil {
		t.Fatalf("unexpected major winner %+v", got.MajorWinner)
	}
	wantTop := player.Top20{All: []player.Appearance{}}
	if diff := cmp.Diff(wantTop, got.Top20); diff != "" {
		t.Fatalf("top20 mismatch (-want +got):\n%s", diff)
	}
	if got.FormerTeams == nil || got.Trophies == nil || got.MVPs == nil {
		t.Fatalf("lists must be non-nil")
	}
}

func TestExtractor_PlayerNotFound(t *testing.T) {
	t.Parallel()

	_, err := newTestExtractor().Player(context.Background(), 1, []byte(`<html><body>Just a moment...</body></html>`))
	if !errors.Is(err, ErrEntityNotFound) {
		t.Fatalf("expected ErrEntityNotFound, got %v", err)
	}
}

func TestExtractor_PlayerStatistics(t *testing.T) {
	t.Parallel()

	got, err := newTestExtractor().PlayerStatistics(context.Background(), fixture(t, "player_stats.html"), fixture(t, "player_individual.html"))
	if err != nil {
		t.Fatalf("PlayerStatistics error: %v", err)
	}

	if got.Nickname != "s1mple" || got.FullName != "Oleksandr Kostyliev" {
		t.Fatalf("unexpected identity %q %q", got.Nickname, got.FullName)
	}
	if got.Age == nil || *got.Age != 26 {
		t.Fatalf("unexpected age %v", got.Age)
	}
	if got.Flag != "https://www.hltv.org/img/static/flags/30x20/UA.gif" || got.TeamURL != "https://www.hltv.org/stats/teams/4608/natus-vincere" {
		t.Fatalf("unexpected links %q %q", got.Flag, got.TeamURL)
	}

	want := map[player.Metric]float64{
		player.MetricRating:               1.27,
		player.MetricKAST:                 74.6,
		player.MetricImpact:               1.38,
		player.MetricTotalKills:           31546,
		player.MetricHeadshotPercentage:   41.2,
		player.MetricTotalDeaths:          22896,
		player.MetricKDRatio:              1.38,
		player.MetricDamagePerRound:       87.1,
		player.MetricMapsPlayed:           1311,
		player.MetricRoundsPlayed:         34614,
		player.MetricKillsPerRound:        0.91,
		player.MetricAssistsPerRound:      0.10,
		player.MetricDeathsPerRound:       0.66,
		player.MetricSavedByTeammates:     0.10,
		player.MetricSavedTeammates:       0.08,
		player.MetricVsTop5:               1.18,
		player.MetricVsTop10:              1.20,
		player.MetricVsTop30:              1.24,
		player.MetricVsTop50:              1.25,
		player.MetricZeroKillRounds:       9873,
		player.MetricOneKillRounds:        11002,
		player.MetricTwoKillRounds:        6791,
		player.MetricThreeKillRounds:      2401,
		player.MetricFourKillRounds:       520,
		player.MetricFiveKillRounds:       52,
		player.MetricTotalOpeningKills:    5390,
		player.MetricTotalOpeningDeaths:   3185,
		player.MetricOpeningKillRatio:     1.69,
		player.MetricOpeningKillRating:    1.22,
		player.MetricWinAfterOpeningKill:  77.6,
		player.MetricFirstKillInWonRounds: 23.4,
		player.MetricRifleKills:           14230,
		player.MetricSniperKills:          13410,
		player.MetricSMGKills:             998,
		player.MetricPistolKills:          2602,
		player.MetricGrenadeKills:         176,
		player.MetricOtherKills:           130,
	}
	if diff := cmp.Diff(want, got.Metrics); diff != "" {
		t.Fatalf("metrics mismatch (-want +got):\n%s", diff)
	}

	if _, ok := got.Metric(player.MetricGrenadeDamagePerRound); ok {
		t.Fatalf("unparseable grenade damage should be unset")
	}
	if _, ok := got.Metric(player.MetricVsTop20); ok {
		t.Fatalf("unparseable featured rating should be unset")
	}
}

func TestExtractor_PlayerStatisticsWithoutIndividualPage(t *testing.T) {
	t.Parallel()

	got, err := newTestExtractor().PlayerStatistics(context.Background(), fixture(t, "player_stats.html"), nil)
	if err != nil {
		t.Fatalf("PlayerStatistics error: %v", err)
	}
	if _, ok := got.Metric(player.MetricRifleKills); ok {
		t.Fatalf("individual metrics should be unset without the individual page")
	}
	if v, ok := got.Metric(player.MetricKAST); !ok || v != 74.6 {
		t.Fatalf("summary metrics should still be read, got %v %v", v, ok)
	}
}

func TestExtractor_PlayerStatisticsNotFound(t *testing.T) {
	t.Parallel()

	_, err := newTestExtractor().PlayerStatistics(context.Background(), []byte(`<html></html>`), nil)
	if !errors.Is(err, ErrEntityNotFound) {
		t.Fatalf("expected ErrEntityNotFound, got %v", err)
	}
}

func TestExtractor_Deterministic(t *testing.T) {
	t.Parallel()

	ex := newTestExtractor()
	raw := fixture(t, "team.html")
	first, err := ex.Team(context.Background(), 4608, raw)
	if err != nil {
		t.Fatalf("Team error: %v", err)
	}
	second, err := ex.Team(context.Background(), 4608, raw)
	if err != nil {
		t.Fatalf("Team error: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated extraction differs:\n%s", diff)
	}
}
