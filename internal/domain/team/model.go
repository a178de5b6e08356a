package team

import (
	"fmt"

	"github.com/riskibarqy/hltv-api/internal/domain/match"
)

// MapPool lists the maps tracked in team map statistics, in output order.
var MapPool = []string{"dust2", "mirage", "inferno", "overpass", "nuke", "vertigo", "ancient", "anubis"}

// IsPoolMap reports whether name is one of MapPool.
func IsPoolMap(name string) bool {
	for _, item := range MapPool {
		if item == name {
			return true
		}
	}
	return false
}

type Country struct {
	Name string
	Flag string
}

// Player is a lineup member shown on a team profile.
type Player struct {
	ID       int64
	Nickname string
	FullName string
	Image    string
	Country  *Country
}

type SocialLink struct {
	Name string
	Link string
}

type Trophy struct {
	Name string
	Logo string
	URL  string
}

// MapStats holds win rates per pool map. Available is false when the
// section could not be read at all; a pool map missing from WinRates is unknown.
type MapStats struct {
	Available bool
	WinRates  map[string]float64
}

type MapResult struct {
	Opponent string
	Result   string
}

type RecentMaps struct {
	Available bool
	Items     []MapResult
}

type Event struct {
	Name  string
	Logo  string
	Start int64
	End   int64
	URL   string
}

// Team is a professional team profile with its match lists attached.
type Team struct {
	ID               int64
	Name             string
	Logo             string
	Ranking          *int
	Country          *Country
	AveragePlayerAge *float64
	Coach            *string
	Players          []Player
	SocialMedia      []SocialLink
	Trophies         []Trophy
	MapStats         MapStats
	RecentMaps       RecentMaps
	UpcomingEvents   []Event
	Upcoming         []match.Upcoming
	Results          []match.Result
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id must be positive")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
