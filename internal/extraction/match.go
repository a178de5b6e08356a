package extraction

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/riskibarqy/hltv-api/internal/domain/match"
)

// UpcomingMatches extracts the scheduled matches of a team matches page.
// A page without the matches wrapper has no upcoming matches.
func (e *Extractor) UpcomingMatches(ctx context.Context, raw []byte) (out []match.Upcoming, err error) {
	ctx, span := startSpan(ctx, "extraction.UpcomingMatches")
	defer func() { finishSpan(span, err) }()

	doc, err := parseHTML(raw)
	if err != nil {
		return nil, err
	}

	out = make([]match.Upcoming, 0)
	doc.Find(upcomingFields.Root).First().Find(upcomingFields.Record).Each(func(i int, rec *goquery.Selection) {
		item, recErr := e.upcomingMatch(rec)
		if recErr != nil {
			e.skip(ctx, "upcoming_match", i, recErr)
			return
		}
		out = append(out, item)
	})

	return out, nil
}

func (e *Extractor) upcomingMatch(rec *goquery.Selection) (match.Upcoming, error) {
	f := upcomingFields
	var item match.Upcoming
	var err error

	if item.ID, _, err = e.integer(rec, f.ID); err != nil {
		return match.Upcoming{}, err
	}
	if item.Opponent.Name, _, err = e.text(rec, f.OpponentName); err != nil {
		return match.Upcoming{}, err
	}
	if item.Opponent.Logo, _, err = e.text(rec, f.OpponentLogo); err != nil {
		return match.Upcoming{}, err
	}
	if item.Tournament.Name, _, err = e.text(rec, f.TournamentName); err != nil {
		return match.Upcoming{}, err
	}
	if item.Tournament.Logo, _, err = e.text(rec, f.TournamentLogo); err != nil {
		return match.Upcoming{}, err
	}
	if item.Type, _, err = e.text(rec, f.Type); err != nil {
		return match.Upcoming{}, err
	}
	if item.StartsAt, _, err = e.integer(rec, f.Date); err != nil {
		return match.Upcoming{}, err
	}
	if item.URL, _, err = e.text(rec, f.MatchURL); err != nil {
		return match.Upcoming{}, err
	}

	return item, nil
}

// Results extracts finished matches of a team results page, day group by
// day group and record by record in page order.
func (e *Extractor) Results(ctx context.Context, raw []byte) (out []match.Result, err error) {
	ctx, span := startSpan(ctx, "extraction.Results")
	defer func() { finishSpan(span, err) }()

	doc, err := parseHTML(raw)
	if err != nil {
		return nil, err
	}

	out = make([]match.Result, 0)
	index := 0
	doc.Find(resultFields.Root).First().Find(resultFields.Day).Each(func(_ int, day *goquery.Selection) {
		day.Find(resultFields.Record).Each(func(_ int, rec *goquery.Selection) {
			item, recErr := e.result(rec)
			if recErr != nil {
				e.skip(ctx, "match_result", index, recErr)
			} else {
				out = append(out, item)
			}
			index++
		})
	})

	return out, nil
}

func (e *Extractor) result(rec *goquery.Selection) (match.Result, error) {
	f := resultFields
	var item match.Result
	var err error

	if item.ID, _, err = e.integer(rec, f.ID); err != nil {
		return match.Result{}, err
	}
	team1, _, err := e.text(rec, f.Team1)
	if err != nil {
		return match.Result{}, err
	}
	team2, _, err := e.text(rec, f.Team2)
	if err != nil {
		return match.Result{}, err
	}
	winner, _, err := e.text(rec, f.Winner)
	if err != nil {
		return match.Result{}, err
	}
	switch winner {
	case team1:
		item.Outcome = match.OutcomeVictory
	case team2:
		item.Outcome = match.OutcomeDefeat
	default:
		return match.Result{}, malformedField(f.Winner.Name, winner)
	}

	won, _, err := e.text(rec, f.ScoreWon)
	if err != nil {
		return match.Result{}, err
	}
	lost, _, err := e.text(rec, f.ScoreLost)
	if err != nil {
		return match.Result{}, err
	}
	item.Score = match.FormatScore(item.Outcome, won, lost)

	item.Opponent.Name = team2
	if item.Opponent.Logo, _, err = e.text(rec, f.Team2Logo); err != nil {
		return match.Result{}, err
	}
	if item.Tournament.Name, _, err = e.text(rec, f.TournamentName); err != nil {
		return match.Result{}, err
	}
	if item.Tournament.Logo, _, err = e.text(rec, f.TournamentLogo); err != nil {
		return match.Result{}, err
	}
	if item.Type, _, err = e.text(rec, f.Type); err != nil {
		return match.Result{}, err
	}
	if item.URL, _, err = e.text(rec, f.MatchURL); err != nil {
		return match.Result{}, err
	}

	return item, item.Validate()
}
