package extraction

import (
	"bytes"
	"context"
	"strings"

	"github.com/mmcdole/gofeed"
	"github.com/riskibarqy/hltv-api/internal/domain/news"
)

var xmlDeclaration = []byte("<?xml")

// parseFeed accepts only a body whose first bytes are the xml declaration.
func parseFeed(raw []byte) (*gofeed.Feed, error) {
	if !bytes.HasPrefix(raw, xmlDeclaration) {
		return nil, parseFailure("news feed does not start with an xml declaration", nil)
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, parseFailure("decode news feed", err)
	}

	return feed, nil
}

// News extracts the items of the RSS news feed in feed order. Items
// without a title or link are skipped.
func (e *Extractor) News(ctx context.Context, raw []byte) (out []news.Item, err error) {
	ctx, span := startSpan(ctx, "extraction.News")
	defer func() { finishSpan(span, err) }()

	feed, err := parseFeed(raw)
	if err != nil {
		return nil, err
	}

	out = make([]news.Item, 0, len(feed.Items))
	for i, item := range feed.Items {
		if item == nil {
			continue
		}
		entry := news.Item{
			Title:       strings.TrimSpace(item.Title),
			Description: strings.TrimSpace(item.Description),
			Link:        strings.TrimSpace(item.Link),
			PubDate:     strings.TrimSpace(item.Published),
		}
		switch {
		case entry.Title == "":
			e.skip(ctx, "news_item", i, missingField("title"))
			continue
		case entry.Link == "":
			e.skip(ctx, "news_item", i, missingField("link"))
			continue
		}
		out = append(out, entry)
	}

	return out, nil
}
