package extraction

import (
	"context"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/hltv-api/internal/domain/search"
)

type searchGroup struct {
	Teams   []searchTeam   `json:"teams"`
	Players []searchPlayer `json:"players"`
}

type searchTeam struct {
	ID       int64              `json:"id"`
	Name     string             `json:"name"`
	Logo     string             `json:"teamLogoDay"`
	Flag     string             `json:"flagUrl"`
	Location string             `json:"location"`
	Players  []searchTeamMember `json:"players"`
}

type searchTeamMember struct {
	Nickname  string `json:"nickName"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Flag      string `json:"flagUrl"`
	Location  string `json:"location"`
}

type searchPlayer struct {
	ID        int64             `json:"id"`
	Nickname  string            `json:"nickName"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Flag      string            `json:"flagUrl"`
	Picture   string            `json:"pictureUrl"`
	Location  string            `json:"location"`
	Team      *searchPlayerTeam `json:"team"`
}

type searchPlayerTeam struct {
	Name     string `json:"name"`
	Logo     string `json:"teamLogoDay"`
	Location string `json:"location"`
}

func decodeSearch(raw []byte) ([]searchGroup, error) {
	var groups []searchGroup
	if err := sonic.Unmarshal(raw, &groups); err != nil {
		return nil, parseFailure("decode search response", err)
	}
	return groups, nil
}

// SearchTeam returns the first team hit of a search response.
func (e *Extractor) SearchTeam(ctx context.Context, raw []byte) (out search.Team, err error) {
	_, span := startSpan(ctx, "extraction.SearchTeam")
	defer func() { finishSpan(span, err) }()

	groups, err := decodeSearch(raw)
	if err != nil {
		return search.Team{}, err
	}
	if len(groups) == 0 || len(groups[0].Teams) == 0 {
		return search.Team{}, notFound("search team", "teams[0]")
	}

	hit := groups[0].Teams[0]
	out = search.Team{
		ID:      hit.ID,
		Name:    strings.TrimSpace(hit.Name),
		Logo:    AbsoluteURL(e.baseURL, hit.Logo),
		Flag:    AbsoluteURL(e.baseURL, hit.Flag),
		URL:     AbsoluteURL(e.baseURL, hit.Location),
		Players: make([]search.TeamPlayer, 0, len(hit.Players)),
	}
	for _, member := range hit.Players {
		out.Players = append(out.Players, search.TeamPlayer{
			Nickname:  member.Nickname,
			FirstName: member.FirstName,
			LastName:  member.LastName,
			Flag:      AbsoluteURL(e.baseURL, member.Flag),
			URL:       AbsoluteURL(e.baseURL, member.Location),
		})
	}

	return out, nil
}

// SearchPlayer returns the first player hit of a search response.
func (e *Extractor) SearchPlayer(ctx context.Context, raw []byte) (out search.Player, err error) {
	_, span := startSpan(ctx, "extraction.SearchPlayer")
	defer func() { finishSpan(span, err) }()

	groups, err := decodeSearch(raw)
	if err != nil {
		return search.Player{}, err
	}
	if len(groups) == 0 || len(groups[0].Players) == 0 {
		return search.Player{}, notFound("search player", "players[0]")
	}

	hit := groups[0].Players[0]
	out = search.Player{
		ID:        hit.ID,
		Nickname:  hit.Nickname,
		FirstName: hit.FirstName,
		LastName:  hit.LastName,
		Flag:      AbsoluteURL(e.baseURL, hit.Flag),
		Picture:   AbsoluteURL(e.baseURL, hit.Picture),
		URL:       AbsoluteURL(e.baseURL, hit.Location),
	}
	if hit.Team != nil {
		out.Team = &search.PlayerTeam{
			Name: hit.Team.Name,
			Logo: AbsoluteURL(e.baseURL, hit.Team.Logo),
			URL:  AbsoluteURL(e.baseURL, hit.Team.Location),
		}
	}

	return out, nil
}
