package extraction

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/riskibarqy/hltv-api/internal/domain/team"
)

// Team extracts a team profile page. Match lists are not part of the
// profile page and are left empty.
func (e *Extractor) Team(ctx context.Context, id int64, raw []byte) (out team.Team, err error) {
	ctx, span := startSpan(ctx, "extraction.Team")
	defer func() { finishSpan(span, err) }()

	doc, err := parseHTML(raw)
	if err != nil {
		return team.Team{}, err
	}
	profile, err := root(doc, "team", teamFields.Root)
	if err != nil {
		return team.Team{}, err
	}

	f := teamFields
	out = team.Team{ID: id}
	if out.Name, _, err = e.text(profile, f.Name); err != nil {
		return team.Team{}, err
	}
	if out.Logo, _, err = e.text(profile, f.Logo); err != nil {
		return team.Team{}, err
	}

	rank, ok, err := e.integer(profile, f.Ranking)
	if err != nil {
		return team.Team{}, err
	}
	out.Ranking = optionalInt(rank, ok)

	age, ok, err := e.number(profile, f.AverageAge)
	if err != nil {
		return team.Team{}, err
	}
	out.AveragePlayerAge = optionalFloat(age, ok)

	coach, ok, err := e.text(profile, f.Coach)
	if err != nil {
		return team.Team{}, err
	}
	out.Coach = optionalString(coach, ok && coach != "")

	if out.Country, err = e.teamCountry(profile); err != nil {
		return team.Team{}, err
	}

	out.Players = make([]team.Player, 0, 5)
	profile.Find(f.Lineup).Each(func(i int, rec *goquery.Selection) {
		p, recErr := e.lineupPlayer(rec)
		if recErr != nil {
			e.skip(ctx, "team_player", i, recErr)
			return
		}
		out.Players = append(out.Players, p)
	})

	out.SocialMedia = make([]team.SocialLink, 0)
	e.group(ctx, "team", "social_media", func() error {
		links, gErr := e.socialLinks(profile)
		if gErr == nil {
			out.SocialMedia = links
		}
		return gErr
	})

	out.MapStats.Available = e.group(ctx, "team", "map_stats", func() error {
		rates, gErr := e.mapWinRates(profile)
		if gErr == nil {
			out.MapStats.WinRates = rates
		}
		return gErr
	})

	out.RecentMaps.Available = e.group(ctx, "team", "last_5_maps", func() error {
		items, gErr := e.lastMaps(profile)
		if gErr == nil {
			out.RecentMaps.Items = items
		}
		return gErr
	})

	out.UpcomingEvents = make([]team.Event, 0)
	e.group(ctx, "team", "upcoming_events", func() error {
		events, gErr := e.upcomingEvents(profile)
		if gErr == nil {
			out.UpcomingEvents = events
		}
		return gErr
	})

	out.Trophies = make([]team.Trophy, 0)
	e.group(ctx, "team", "trophies", func() error {
		trophies, gErr := e.teamTrophies(profile)
		if gErr == nil {
			out.Trophies = trophies
		}
		return gErr
	})

	return out, out.Validate()
}

func (e *Extractor) teamCountry(profile *goquery.Selection) (*team.Country, error) {
	name, ok, err := e.text(profile, teamFields.CountryName)
	if err != nil || !ok || name == "" {
		return nil, err
	}
	flag, _, err := e.text(profile, teamFields.CountryFlag)
	if err != nil {
		return nil, err
	}
	return &team.Country{Name: name, Flag: flag}, nil
}

func (e *Extractor) lineupPlayer(rec *goquery.Selection) (team.Player, error) {
	f := teamFields
	var p team.Player
	var err error

	if p.ID, _, err = e.integer(rec, f.PlayerID); err != nil {
		return team.Player{}, err
	}
	if p.Nickname, _, err = e.text(rec, f.PlayerNickname); err != nil {
		return team.Player{}, err
	}
	title, _, err := e.text(rec, f.PlayerTitle)
	if err != nil {
		return team.Player{}, err
	}
	p.FullName = StripNickname(title, p.Nickname)
	if p.Image, _, err = e.text(rec, f.PlayerImage); err != nil {
		return team.Player{}, err
	}

	countryName, _, err := e.text(rec, f.PlayerCountry)
	if err != nil {
		return team.Player{}, err
	}
	if countryName != "" {
		flag, _, err := e.text(rec, f.PlayerCountryFlag)
		if err != nil {
			return team.Player{}, err
		}
		p.Country = &team.Country{Name: countryName, Flag: flag}
	}

	return p, nil
}

func (e *Extractor) socialLinks(profile *goquery.Selection) ([]team.SocialLink, error) {
	out := make([]team.SocialLink, 0)
	var err error
	profile.Find(teamFields.Social).EachWithBreak(func(_ int, rec *goquery.Selection) bool {
		var link, name string
		if link, _, err = e.text(rec, teamFields.SocialLink); err != nil {
			return false
		}
		if name, err = SocialNetwork(link); err != nil {
			err = malformedField(teamFields.SocialLink.Name, link)
			return false
		}
		out = append(out, team.SocialLink{Name: name, Link: link})
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// mapWinRates pairs the n-th map name of the section with its n-th
// statistics container. Maps outside the pool are ignored.
func (e *Extractor) mapWinRates(profile *goquery.Selection) (map[string]float64, error) {
	section := profile.Find(teamFields.MapStats).First()
	if section.Length() == 0 {
		return nil, missingField("map_stats")
	}

	names := section.Find(teamFields.MapName)
	containers := section.Find(teamFields.MapContainer)
	if names.Length() != containers.Length() {
		return nil, malformedField("map_stats", fmt.Sprintf("%d names for %d containers", names.Length(), containers.Length()))
	}

	out := make(map[string]float64, len(team.MapPool))
	for i := 0; i < containers.Length(); i++ {
		name := strings.ToLower(cleanText(names.Eq(i).Text()))
		if !team.IsPoolMap(name) {
			continue
		}
		rate, _, err := e.number(containers.Eq(i), teamFields.MapWinRate)
		if err != nil {
			return nil, err
		}
		out[name] = rate
	}

	return out, nil
}

func (e *Extractor) lastMaps(profile *goquery.Selection) ([]team.MapResult, error) {
	section := profile.Find(teamFields.LastMaps).First()
	if section.Length() == 0 {
		return nil, missingField("last_5_maps")
	}

	out := make([]team.MapResult, 0, 5)
	var err error
	section.Find(teamFields.GroupRecord).EachWithBreak(func(_ int, rec *goquery.Selection) bool {
		var item team.MapResult
		if item.Opponent, _, err = e.text(rec, teamFields.LastMapOpponent); err != nil {
			return false
		}
		if item.Result, _, err = e.text(rec, teamFields.LastMapResult); err != nil {
			return false
		}
		out = append(out, item)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (e *Extractor) upcomingEvents(profile *goquery.Selection) ([]team.Event, error) {
	section := profile.Find(teamFields.Events).First()
	if section.Length() == 0 {
		return nil, missingField("upcoming_events")
	}

	out := make([]team.Event, 0)
	var err error
	section.Find(teamFields.GroupRecord).EachWithBreak(func(_ int, rec *goquery.Selection) bool {
		var event team.Event
		event, err = e.upcomingEvent(rec)
		if err != nil {
			return false
		}
		out = append(out, event)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// upcomingEvent reads one event box. Single-day events carry one
// timestamp, which is used for both ends.
func (e *Extractor) upcomingEvent(rec *goquery.Selection) (team.Event, error) {
	f := teamFields
	var event team.Event
	var err error

	if event.Name, _, err = e.text(rec, f.EventName); err != nil {
		return team.Event{}, err
	}
	if event.Logo, _, err = e.text(rec, f.EventLogo); err != nil {
		return team.Event{}, err
	}
	if event.Start, _, err = e.integer(rec, f.EventDate.nth(0)); err != nil {
		return team.Event{}, err
	}
	end, ok, err := e.integer(rec, f.EventDate.nth(1))
	if err != nil {
		return team.Event{}, err
	}
	event.End = event.Start
	if ok {
		event.End = end
	}
	if event.URL, _, err = e.text(rec, f.EventURL); err != nil {
		return team.Event{}, err
	}

	return event, nil
}

func (e *Extractor) teamTrophies(profile *goquery.Selection) ([]team.Trophy, error) {
	section := profile.Find(teamFields.Trophies).First()
	if section.Length() == 0 {
		return nil, missingField("trophies")
	}

	out := make([]team.Trophy, 0)
	var err error
	section.Find(teamFields.GroupRecord).EachWithBreak(func(_ int, rec *goquery.Selection) bool {
		var trophy team.Trophy
		if trophy.Name, _, err = e.text(rec, teamFields.TrophyName); err != nil {
			return false
		}
		if trophy.Logo, _, err = e.text(rec, teamFields.TrophyLogo); err != nil {
			return false
		}
		if trophy.URL, _, err = e.text(rec, teamFields.TrophyURL); err != nil {
			return false
		}
		out = append(out, trophy)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
