package extraction

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/riskibarqy/hltv-api/internal/domain/player"
)

// PlayerStatistics extracts the statistics summary page and, when given,
// the individual statistics page. Metrics are matched by label; a label
// that is missing or carries an unreadable value leaves its metric unset.
func (e *Extractor) PlayerStatistics(ctx context.Context, summary, individual []byte) (out player.Statistics, err error) {
	ctx, span := startSpan(ctx, "extraction.PlayerStatistics")
	defer func() { finishSpan(span, err) }()

	doc, err := parseHTML(summary)
	if err != nil {
		return player.Statistics{}, err
	}
	box, err := root(doc, "player statistics", statisticsFields.Root)
	if err != nil {
		return player.Statistics{}, err
	}

	f := statisticsFields
	if out.Nickname, _, err = e.text(box, f.Nickname); err != nil {
		return player.Statistics{}, err
	}
	if out.FullName, _, err = e.text(box, f.FullName); err != nil {
		return player.Statistics{}, err
	}
	age, ok, err := e.integer(box, f.Age)
	if err != nil {
		return player.Statistics{}, err
	}
	out.Age = optionalInt(age, ok)
	if out.Flag, _, err = e.text(box, f.Flag); err != nil {
		return player.Statistics{}, err
	}
	if out.TeamURL, _, err = e.text(box, f.Team); err != nil {
		return player.Statistics{}, err
	}

	labels := make(map[string]float64)
	e.statRows(ctx, doc.Selection, f.SummaryRows, labels)
	e.breakdowns(ctx, doc.Selection, labels)

	out.Metrics = make(map[player.Metric]float64, len(statLabels)+len(featuredRatings))
	doc.Find(f.FeaturedRatings).Each(func(i int, sel *goquery.Selection) {
		if i >= len(featuredRatings) {
			return
		}
		value, _, vErr := e.number(sel, f.FeaturedRating)
		if vErr != nil {
			e.skip(ctx, "featured_rating", i, vErr)
			return
		}
		out.Metrics[featuredRatings[i]] = value
	})

	if individual != nil {
		e.group(ctx, "player statistics", "individual", func() error {
			page, gErr := parseHTML(individual)
			if gErr != nil {
				return gErr
			}
			e.statRows(ctx, page.Selection, f.IndividualRows, labels)
			return nil
		})
	}

	for label, value := range labels {
		if metric, known := statLabels[label]; known {
			out.Metrics[metric] = value
		}
	}

	return out, nil
}

// statRows adds every "label value" row under sel to labels.
func (e *Extractor) statRows(ctx context.Context, sel *goquery.Selection, selector string, labels map[string]float64) {
	f := statisticsFields
	sel.Find(selector).Each(func(i int, row *goquery.Selection) {
		label, _, err := e.text(row, f.RowLabel)
		if err != nil {
			e.skip(ctx, "stats_row", i, err)
			return
		}
		value, _, err := e.number(row, f.RowValue)
		if err != nil {
			e.skip(ctx, "stats_row", i, err)
			return
		}
		labels[label] = value
	})
}

// breakdowns reads the KAST and impact boxes of the summary page.
func (e *Extractor) breakdowns(ctx context.Context, sel *goquery.Selection, labels map[string]float64) {
	f := statisticsFields
	sel.Find(f.Breakdown).Each(func(i int, box *goquery.Selection) {
		label, _, err := e.text(box, f.BreakdownLabel)
		if err != nil {
			e.skip(ctx, "stats_breakdown", i, err)
			return
		}
		if metric := statLabels[label]; metric != player.MetricKAST && metric != player.MetricImpact {
			return
		}
		value, _, err := e.number(box, f.BreakdownValue)
		if err != nil {
			e.skip(ctx, "stats_breakdown", i, err)
			return
		}
		labels[label] = value
	})
}
