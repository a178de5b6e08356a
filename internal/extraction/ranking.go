package extraction

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/riskibarqy/hltv-api/internal/domain/ranking"
)

// Ranking extracts the world ranking in page order.
func (e *Extractor) Ranking(ctx context.Context, raw []byte) (out []ranking.Entry, err error) {
	ctx, span := startSpan(ctx, "extraction.Ranking")
	defer func() { finishSpan(span, err) }()

	doc, err := parseHTML(raw)
	if err != nil {
		return nil, err
	}

	out = make([]ranking.Entry, 0)
	doc.Find(rankingFields.Record).Each(func(i int, rec *goquery.Selection) {
		entry, recErr := e.rankingEntry(ctx, rec)
		if recErr != nil {
			e.skip(ctx, "ranking_entry", i, recErr)
			return
		}
		out = append(out, entry)
	})

	return out, nil
}

func (e *Extractor) rankingEntry(ctx context.Context, rec *goquery.Selection) (ranking.Entry, error) {
	f := rankingFields
	var entry ranking.Entry
	var err error

	if entry.ID, _, err = e.integer(rec, f.ID); err != nil {
		return ranking.Entry{}, err
	}
	position, _, err := e.integer(rec, f.Position)
	if err != nil {
		return ranking.Entry{}, err
	}
	entry.Position = int(position)
	if entry.Name, _, err = e.text(rec, f.Name); err != nil {
		return ranking.Entry{}, err
	}
	if entry.Logo, _, err = e.text(rec, f.Logo); err != nil {
		return ranking.Entry{}, err
	}

	entry.Players = make([]ranking.Player, 0, 5)
	rec.Find(f.Player).Each(func(i int, holder *goquery.Selection) {
		p, pErr := e.rankedPlayer(holder)
		if pErr != nil {
			e.skip(ctx, "ranking_player", i, pErr)
			return
		}
		entry.Players = append(entry.Players, p)
	})

	return entry, nil
}

func (e *Extractor) rankedPlayer(holder *goquery.Selection) (ranking.Player, error) {
	f := rankingFields
	var p ranking.Player
	var err error

	if p.ID, _, err = e.integer(holder, f.PlayerID); err != nil {
		return ranking.Player{}, err
	}
	if p.Nickname, _, err = e.text(holder, f.PlayerNickname); err != nil {
		return ranking.Player{}, err
	}
	alt, _, err := e.text(holder, f.PlayerFullName)
	if err != nil {
		return ranking.Player{}, err
	}
	p.FullName = StripNickname(alt, p.Nickname)
	if p.Picture, _, err = e.text(holder, f.PlayerPicture); err != nil {
		return ranking.Player{}, err
	}
	if p.URL, _, err = e.text(holder, f.PlayerURL); err != nil {
		return ranking.Player{}, err
	}

	return p, nil
}
