package extraction

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/riskibarqy/hltv-api/internal/domain/player"
)

// Player extracts a player profile page.
func (e *Extractor) Player(ctx context.Context, id int64, raw []byte) (out player.Player, err error) {
	ctx, span := startSpan(ctx, "extraction.Player")
	defer func() { finishSpan(span, err) }()

	doc, err := parseHTML(raw)
	if err != nil {
		return player.Player{}, err
	}
	profile, err := root(doc, "player", playerFields.Root)
	if err != nil {
		return player.Player{}, err
	}

	f := playerFields
	out = player.Player{ID: id}
	if out.Nickname, _, err = e.text(profile, f.Nickname); err != nil {
		return player.Player{}, err
	}
	if out.Name.Full, _, err = e.text(profile, f.RealName); err != nil {
		return player.Player{}, err
	}
	out.Name.First, out.Name.Last = SplitFullName(out.Name.Full)

	picture, ok, err := e.text(profile, f.Picture)
	if err != nil {
		return player.Player{}, err
	}
	out.Picture = optionalString(picture, ok && picture != "")

	age, ok, err := e.integer(profile, f.Age)
	if err != nil {
		return player.Player{}, err
	}
	out.Age = optionalInt(age, ok)

	flag, ok, err := e.text(profile, f.Flag)
	if err != nil {
		return player.Player{}, err
	}
	out.Flag = optionalString(flag, ok && flag != "")

	out.Top20 = player.Top20{All: make([]player.Appearance, 0)}
	e.group(ctx, "player", "top20", func() error {
		top, gErr := e.top20(ctx, profile)
		if gErr == nil {
			out.Top20 = top
		}
		return gErr
	})

	e.group(ctx, "player", "major_winner", func() error {
		champions, found, gErr := e.integer(profile, f.MajorTitles)
		if gErr != nil {
			return gErr
		}
		if found {
			out.MajorWinner = player.MajorWinner{Winner: true, Champions: optionalInt(champions, true)}
		}
		return nil
	})

	e.group(ctx, "player", "general_data", func() error {
		career, gErr := e.career(profile)
		if gErr == nil {
			out.Career = career
		}
		return gErr
	})

	e.group(ctx, "player", "current_team", func() error {
		current, gErr := e.currentTeam(ctx, profile)
		if gErr == nil {
			out.CurrentTeam = current
		}
		return gErr
	})

	out.FormerTeams = make([]player.Stint, 0)
	profile.Find(f.PastTeam).Each(func(i int, rec *goquery.Selection) {
		stint, recErr := e.formerTeam(ctx, rec)
		if recErr != nil {
			e.skip(ctx, "former_team", i, recErr)
			return
		}
		out.FormerTeams = append(out.FormerTeams, stint)
	})

	out.Trophies = e.trophyDetails(ctx, profile, f.Trophies, "trophy")
	out.MVPs = e.trophyDetails(ctx, profile, f.MVPs, "mvp")

	e.group(ctx, "player", "stats", func() error {
		stats, gErr := e.profileStats(profile)
		if gErr == nil {
			out.Stats = stats
		}
		return gErr
	})

	return out, out.Validate()
}

// top20 reads the yearly top 20 appearances in page order; the last one
// listed is the most recent.
func (e *Extractor) top20(ctx context.Context, profile *goquery.Selection) (player.Top20, error) {
	f := playerFields
	all := make([]player.Appearance, 0)
	profile.Find(f.Top20).Each(func(i int, rec *goquery.Selection) {
		item, recErr := e.appearance(rec)
		if recErr != nil {
			e.skip(ctx, "top20_appearance", i, recErr)
			return
		}
		all = append(all, item)
	})

	out := player.Top20{HasAppeared: len(all) > 0, All: all}
	if out.HasAppeared {
		last := all[len(all)-1]
		out.Last = &last
	}
	return out, nil
}

func (e *Extractor) appearance(rec *goquery.Selection) (player.Appearance, error) {
	f := playerFields
	href, _, err := e.text(rec, f.Top20Link)
	if err != nil {
		return player.Appearance{}, err
	}
	year, err := AppearanceYear(href)
	if err != nil {
		return player.Appearance{}, malformedField(f.Top20Link.Name, href)
	}
	position, _, err := e.integer(rec, f.Top20Position)
	if err != nil {
		return player.Appearance{}, err
	}

	return player.Appearance{
		Year:     year,
		Position: int(position),
		NewsURL:  AbsoluteURL(e.baseURL, href),
	}, nil
}

func (e *Extractor) career(profile *goquery.Selection) (player.CareerSummary, error) {
	f := playerFields.CareerStat
	values := [3]int64{}
	for i := range values {
		v, _, err := e.integer(profile, f.nth(i))
		if err != nil {
			return player.CareerSummary{}, err
		}
		values[i] = v
	}

	return player.CareerSummary{
		Available:         true,
		TeamsCount:        int(values[0]),
		DaysInCurrentTeam: int(values[1]),
		DaysInTeams:       int(values[2]),
	}, nil
}

// currentTeam returns nil when the player has no team block.
func (e *Extractor) currentTeam(ctx context.Context, profile *goquery.Selection) (*player.Stint, error) {
	block := profile.Find(playerFields.CurrentTeam).First()
	if block.Length() == 0 {
		return nil, nil
	}

	stint, err := e.stint(ctx, block)
	if err != nil {
		return nil, err
	}
	return &stint, nil
}

// formerTeam requires both the entrance and the leaving timestamp.
func (e *Extractor) formerTeam(ctx context.Context, rec *goquery.Selection) (player.Stint, error) {
	stint, err := e.stint(ctx, rec)
	if err != nil {
		return player.Stint{}, err
	}
	left, _, err := e.integer(rec, playerFields.TeamDate.nth(1))
	if err != nil {
		return player.Stint{}, err
	}
	stint.Left = &left
	return stint, nil
}

func (e *Extractor) stint(ctx context.Context, rec *goquery.Selection) (player.Stint, error) {
	f := playerFields
	var stint player.Stint
	var err error

	if stint.Name, _, err = e.text(rec, f.TeamName); err != nil {
		return player.Stint{}, err
	}
	if stint.Logo, _, err = e.text(rec, f.TeamLogo); err != nil {
		return player.Stint{}, err
	}
	if stint.Entrance, _, err = e.integer(rec, f.TeamDate.nth(0)); err != nil {
		return player.Stint{}, err
	}
	if stint.URL, _, err = e.text(rec, f.TeamURL); err != nil {
		return player.Stint{}, err
	}

	stint.Trophies = make([]player.Trophy, 0)
	rec.Find(f.TeamTrophies).Each(func(i int, item *goquery.Selection) {
		var trophy player.Trophy
		var tErr error
		if trophy.Name, _, tErr = e.text(item, f.TeamTrophyName); tErr == nil {
			if trophy.Image, _, tErr = e.text(item, f.TeamTrophyImage); tErr == nil {
				trophy.EventURL, _, tErr = e.text(item, f.TeamTrophyURL)
			}
		}
		if tErr != nil {
			e.skip(ctx, "team_trophy", i, tErr)
			return
		}
		stint.Trophies = append(stint.Trophies, trophy)
	})

	return stint, nil
}

func (e *Extractor) trophyDetails(ctx context.Context, profile *goquery.Selection, selector, entity string) []player.Trophy {
	f := playerFields
	out := make([]player.Trophy, 0)
	profile.Find(selector).Each(func(i int, rec *goquery.Selection) {
		var trophy player.Trophy
		var err error
		if trophy.Name, _, err = e.text(rec, f.TrophyName); err == nil {
			if trophy.Image, _, err = e.text(rec, f.TrophyImage); err == nil {
				trophy.EventURL, _, err = e.text(rec, f.TrophyURL)
			}
		}
		if err != nil {
			e.skip(ctx, entity, i, err)
			return
		}
		out = append(out, trophy)
	})
	return out
}

// profileStats reads the six headline values of the profile, in order:
// rating, kills per round, headshot %, maps played, deaths per round and
// rounds contributed %.
func (e *Extractor) profileStats(profile *goquery.Selection) (*player.Stats, error) {
	f := playerFields.StatValue
	decimal := f
	decimal.Mode = Float
	percent := f
	percent.Mode = Percent
	whole := f
	whole.Mode = Int

	var stats player.Stats
	var err error
	if stats.Rating, _, err = e.number(profile, decimal.nth(0)); err != nil {
		return nil, err
	}
	if stats.KillsPerRound, _, err = e.number(profile, decimal.nth(1)); err != nil {
		return nil, err
	}
	if stats.HeadshotPercentage, _, err = e.number(profile, percent.nth(2)); err != nil {
		return nil, err
	}
	maps, _, err := e.integer(profile, whole.nth(3))
	if err != nil {
		return nil, err
	}
	stats.MapsPlayed = int(maps)
	if stats.DeathsPerRound, _, err = e.number(profile, decimal.nth(4)); err != nil {
		return nil, err
	}
	if stats.RoundsContributed, _, err = e.number(profile, percent.nth(5)); err != nil {
		return nil, err
	}

	return &stats, nil
}
