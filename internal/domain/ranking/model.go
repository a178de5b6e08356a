package ranking

// Player is a member of a ranked team's lineup.
type Player struct {
	ID       int64
	Nickname string
	FullName string
	Picture  string
	URL      string
}

// Entry is one team in the world ranking, in page order.
type Entry struct {
	ID       int64
	Position int
	Name     string
	Logo     string
	Players  []Player
}
