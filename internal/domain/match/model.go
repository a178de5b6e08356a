package match

import "fmt"

type Outcome string

const (
	OutcomeVictory Outcome = "Victory"
	OutcomeDefeat  Outcome = "Defeat"
)

// Participant is a named side of a match listing: a team or a tournament.
type Participant struct {
	Name string
	Logo string
}

// Upcoming is a scheduled match seen from the requested team's side.
// Opponent is always the second team listed on the page.
type Upcoming struct {
	ID         int64
	Opponent   Participant
	Tournament Participant
	Type       string
	StartsAt   int64
	URL        string
}

// Result is a finished match seen from the first listed team.
type Result struct {
	ID         int64
	Outcome    Outcome
	Score      string
	Opponent   Participant
	Tournament Participant
	Type       string
	URL        string
}

// FormatScore renders the score from the first listed team's perspective.
func FormatScore(outcome Outcome, won, lost string) string {
	if outcome == OutcomeVictory {
		return fmt.Sprintf("%s - %s", won, lost)
	}
	return fmt.Sprintf("%s - %s", lost, won)
}

func (r Result) Validate() error {
	if r.ID <= 0 {
		return fmt.Errorf("match id must be positive")
	}
	if r.Outcome != OutcomeVictory && r.Outcome != OutcomeDefeat {
		return fmt.Errorf("invalid match outcome %q", r.Outcome)
	}

	return nil
}
