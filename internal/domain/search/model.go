package search

// Kind discriminates a search query.
type Kind string

const (
	KindTeam   Kind = "team"
	KindPlayer Kind = "player"
)

type TeamPlayer struct {
	Nickname  string
	FirstName string
	LastName  string
	Flag      string
	URL       string
}

// Team is the first team hit of a search.
type Team struct {
	ID      int64
	Name    string
	Logo    string
	Flag    string
	URL     string
	Players []TeamPlayer
}

type PlayerTeam struct {
	Name string
	Logo string
	URL  string
}

// Player is the first player hit of a search.
type Player struct {
	ID        int64
	Nickname  string
	FirstName string
	LastName  string
	Flag      string
	Picture   string
	URL       string
	Team      *PlayerTeam
}
