package player

import "fmt"

type Name struct {
	Full  string
	First string
	Last  string
}

type Trophy struct {
	Name     string
	Image    string
	EventURL string
}

// Stint is a period spent in one team. Left is nil for the current team.
type Stint struct {
	Name     string
	Logo     string
	Entrance int64
	Left     *int64
	Trophies []Trophy
	URL      string
}

type CareerSummary struct {
	Available         bool
	TeamsCount        int
	DaysInCurrentTeam int
	DaysInTeams       int
}

type Appearance struct {
	Year     int
	Position int
	NewsURL  string
}

type Top20 struct {
	HasAppeared bool
	Last        *Appearance
	All         []Appearance
}

type Stats struct {
	Rating             float64
	KillsPerRound      float64
	HeadshotPercentage float64
	MapsPlayed         int
	DeathsPerRound     float64
	RoundsContributed  float64
}

type MajorWinner struct {
	Winner    bool
	Champions *int
}

// Player is a professional player profile.
type Player struct {
	ID          int64
	Nickname    string
	Name        Name
	Picture     *string
	Age         *int
	Flag        *string
	Career      CareerSummary
	CurrentTeam *Stint
	FormerTeams []Stint
	Trophies    []Trophy
	MVPs        []Trophy
	Top20       Top20
	Stats       *Stats
	MajorWinner MajorWinner
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be positive")
	}
	if p.Nickname == "" {
		return fmt.Errorf("player nickname is required")
	}

	return nil
}
