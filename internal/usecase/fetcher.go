package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// DocumentFetcher downloads a raw document. Errors wrap ErrUpstreamFetch or
// ErrDependencyUnavailable.
type DocumentFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Pages builds the upstream URLs each route reads from.
type Pages struct {
	BaseURL string
	RSSURL  string
}

func (p Pages) base() string {
	return strings.TrimRight(p.BaseURL, "/")
}

func (p Pages) TeamProfile(id int64) string {
	return fmt.Sprintf("%s/team/%d/_", p.base(), id)
}

func (p Pages) TeamUpcoming(id int64) string {
	return fmt.Sprintf("%s/matches?team=%d", p.base(), id)
}

func (p Pages) TeamResults(id int64) string {
	return fmt.Sprintf("%s/results?team=%d", p.base(), id)
}

func (p Pages) PlayerProfile(id int64) string {
	return fmt.Sprintf("%s/player/%d/_", p.base(), id)
}

func (p Pages) PlayerSummary(id int64) string {
	return fmt.Sprintf("%s/stats/players/%d/_", p.base(), id)
}

func (p Pages) PlayerIndividual(id int64) string {
	return fmt.Sprintf("%s/stats/players/individual/%d/_", p.base(), id)
}

func (p Pages) Ranking() string {
	return p.base() + "/ranking/teams"
}

func (p Pages) News() string {
	return strings.TrimRight(p.RSSURL, "/") + "/news"
}

func (p Pages) Search(term string) string {
	return p.base() + "/search?term=" + url.QueryEscape(term)
}
