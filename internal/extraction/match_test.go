package extraction

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/hltv-api/internal/domain/match"
)

func TestExtractor_UpcomingMatches(t *testing.T) {
	t.Parallel()

	got, err := newTestExtractor().UpcomingMatches(context.Background(), fixture(t, "upcoming.html"))
	if err != nil {
		t.Fatalf("UpcomingMatches error: %v", err)
	}

	want := []match.Upcoming{
		{
			ID:         2373741,
			Opponent:   match.Participant{Name: "FaZe", Logo: "https://www.hltv.org/img/static/team/faze.svg"},
			Tournament: match.Participant{Name: "IEM Cologne 2024", Logo: "https://img-cdn.hltv.org/eventlogo/cologne.png"},
			Type:       "bo3",
			StartsAt:   1723471200000,
			URL:        "https://www.hltv.org/matches/2373741/natus-vincere-vs-faze-iem-cologne-2024",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("upcoming mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractor_UpcomingMatchesWithoutWrapper(t *testing.T) {
	t.Parallel()

	got, err := newTestExtractor().UpcomingMatches(context.Background(), []byte(`<html><body><p>No matches</p></body></html>`))
	if err != nil {
		t.Fatalf("UpcomingMatches error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
}

func TestExtractor_Results(t *testing.T) {
	t.Parallel()

	got, err := newTestExtractor().Results(context.Background(), fixture(t, "results.html"))
	if err != nil {
		t.Fatalf("Results error: %v", err)
	}

	want := []match.Result{
		{
			ID:         2373700,
			Outcome:    match.OutcomeVictory,
			Score:      "2 - 1",
			Opponent:   match.Participant{Name: "G2", Logo: "https://www.hltv.org/img/static/team/g2.svg"},
			Tournament: match.Participant{Name: "IEM Cologne 2024", Logo: "https://img-cdn.hltv.org/eventlogo/cologne.png"},
			Type:       "bo3",
			URL:        "https://www.hltv.org/matches/2373700/natus-vincere-vs-g2-iem-cologne-2024",
		},
		{
			ID:         2373690,
			Outcome:    match.OutcomeDefeat,
			Score:      "0 - 2",
			Opponent:   match.Participant{Name: "Vitality", Logo: "https://www.hltv.org/img/static/team/vitality.svg"},
			Tournament: match.Participant{Name: "IEM Cologne 2024"},
			Type:       "bo3",
			URL:        "https://www.hltv.org/matches/2373690/natus-vincere-vs-vitality-iem-cologne-2024",
		},
		{
			ID:         2373500,
			Outcome:    match.OutcomeVictory,
			Score:      "13 - 7",
			Opponent:   match.Participant{Name: "Spirit"},
			Tournament: match.Participant{Name: "BLAST"},
			Type:       "nuke",
			URL:        "https://www.hltv.org/matches/2373500/natus-vincere-vs-spirit-blast",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractor_ResultsOpponentIsSecondTeam(t *testing.T) {
	t.Parallel()

	raw := []byte(`<div class="results-all"><div class="results-sublist"><div class="result-con">
		<a href="/matches/10/x">
			<div class="team1"><div class="team">Spirit</div></div>
			<div class="result-score"><span class="score-won">2</span><span class="score-lost">0</span></div>
			<div class="team2"><div class="team team-won">Natus Vincere</div></div>
			<span class="event-name">BLAST</span><div class="map-text">bo3</div>
		</a>
	</div></div></div>`)

	got, err := newTestExtractor().Results(context.Background(), raw)
	if err != nil {
		t.Fatalf("Results error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].Opponent.Name != "Natus Vincere" || got[0].Outcome != match.OutcomeDefeat || got[0].Score != "0 - 2" {
		t.Fatalf("unexpected result %+v", got[0])
	}
}

func TestFormatScore(t *testing.T) {
	t.Parallel()

	if got := match.FormatScore(match.OutcomeVictory, "16", "9"); got != "16 - 9" {
		t.Fatalf("victory score=%q", got)
	}
	if got := match.FormatScore(match.OutcomeDefeat, "16", "9"); got != "9 - 16" {
		t.Fatalf("defeat score=%q", got)
	}
}
