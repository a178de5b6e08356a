// Package extraction turns HTML pages, the RSS feed and search JSON of the
// stats site into domain entities. It performs no I/O: callers hand it the
// raw document bytes.
package extraction

import (
	"bytes"
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/riskibarqy/hltv-api/internal/platform/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("hltv-api/internal/extraction")

type Extractor struct {
	resolver
	logger *logging.Logger
}

// New returns an Extractor resolving relative links against baseURL.
func New(baseURL string, logger *logging.Logger) *Extractor {
	if logger == nil {
		logger = logging.Default()
	}

	return &Extractor{
		resolver: resolver{baseURL: baseURL},
		logger:   logger,
	}
}

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name)
}

func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func parseHTML(raw []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, parseFailure("parse html", err)
	}
	return doc, nil
}

// root returns the first match of selector or an ErrEntityNotFound error.
func root(doc *goquery.Document, entity, selector string) (*goquery.Selection, error) {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return nil, notFound(entity, selector)
	}
	return sel, nil
}

// group runs fn and reports whether it succeeded. Failures are logged and
// absorbed so that the caller can fall back to the group's default.
func (e *Extractor) group(ctx context.Context, entity, name string, fn func() error) bool {
	if err := fn(); err != nil {
		e.logger.WarnContext(ctx, "optional group unavailable",
			"entity", entity,
			"group", name,
			"error", err,
		)
		trace.SpanFromContext(ctx).AddEvent("group.unavailable", trace.WithAttributes(
			attribute.String("group", name),
		))
		return false
	}
	return true
}

// skip logs a list record that was dropped.
func (e *Extractor) skip(ctx context.Context, entity string, index int, err error) {
	e.logger.WarnContext(ctx, "record skipped",
		"entity", entity,
		"index", index,
		"error", err,
	)
}
