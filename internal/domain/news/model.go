package news

// Item is a single news article from the RSS feed. PubDate is kept as published.
type Item struct {
	Title       string
	Description string
	Link        string
	PubDate     string
}
