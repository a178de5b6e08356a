package extraction

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func selection(t *testing.T, markup string) *goquery.Selection {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse markup: %v", err)
	}
	return doc.Selection
}

func TestResolver_RequiredAndOptional(t *testing.T) {
	t.Parallel()

	r := resolver{baseURL: "https://www.hltv.org"}
	sel := selection(t, `<div class="box"><span class="name">  Natus
		Vincere </span><img class="logo" src="/img/navi.svg"></div>`)

	name, ok, err := r.text(sel, Field{Name: "name", Path: ".name", Required: true})
	if err != nil || !ok || name != "Natus Vincere" {
		t.Fatalf("text=%q ok=%v err=%v", name, ok, err)
	}

	logo, ok, err := r.text(sel, Field{Name: "logo", Path: ".logo", Attr: "src", Mode: URL})
	if err != nil || !ok || logo != "https://www.hltv.org/img/navi.svg" {
		t.Fatalf("url=%q ok=%v err=%v", logo, ok, err)
	}

	_, ok, err = r.text(sel, Field{Name: "coach", Path: ".coach"})
	if err != nil || ok {
		t.Fatalf("optional absent field: ok=%v err=%v", ok, err)
	}

	_, _, err = r.text(sel, Field{Name: "coach", Path: ".coach", Required: true})
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Field != "coach" {
		t.Fatalf("expected FieldError for coach, got %v", err)
	}
	if !errors.Is(err, ErrMissingRequiredField) {
		t.Fatalf("expected ErrMissingRequiredField, got %v", err)
	}
}

func TestResolver_MalformedEvenWhenOptional(t *testing.T) {
	t.Parallel()

	r := resolver{}
	sel := selection(t, `<div><span class="age">unknown</span><span class="rate">n/a</span></div>`)

	_, ok, err := r.integer(sel, Field{Name: "age", Path: ".age", Mode: Digits})
	if !ok || !errors.Is(err, ErrMalformedField) {
		t.Fatalf("expected malformed age, ok=%v err=%v", ok, err)
	}

	_, _, err = r.number(sel, Field{Name: "rate", Path: ".rate", Mode: Percent})
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Raw != "n/a" {
		t.Fatalf("expected raw value in FieldError, got %v", err)
	}
}

func TestResolver_NonFiniteNumbersAreMalformed(t *testing.T) {
	t.Parallel()

	r := resolver{}
	sel := selection(t, `<div><span class="rating">NaN</span><span class="hs">Inf%</span></div>`)

	_, ok, err := r.number(sel, Field{Name: "rating", Path: ".rating"})
	if !ok || !errors.Is(err, ErrMalformedField) {
		t.Fatalf("expected malformed rating, ok=%v err=%v", ok, err)
	}
	_, ok, err = r.number(sel, Field{Name: "hs", Path: ".hs", Mode: Percent})
	if !ok || !errors.Is(err, ErrMalformedField) {
		t.Fatalf("expected malformed percentage, ok=%v err=%v", ok, err)
	}
}

func TestResolver_IndexAndLeadingText(t *testing.T) {
	t.Parallel()

	r := resolver{}
	sel := selection(t, `<div>
		<span data-unix="100">a</span><span data-unix="200">b</span>
		<div class="label">KAST<span class="info"> i </span></div>
	</div>`)

	date := Field{Name: "date", Path: "span[data-unix]", Attr: "data-unix", Mode: Unix, Required: true}
	first, _, err := r.integer(sel, date.nth(0))
	if err != nil || first != 100 {
		t.Fatalf("first=%d err=%v", first, err)
	}
	second, _, err := r.integer(sel, date.nth(1))
	if err != nil || second != 200 {
		t.Fatalf("second=%d err=%v", second, err)
	}
	if _, _, err := r.integer(sel, date.nth(2)); !errors.Is(err, ErrMissingRequiredField) {
		t.Fatalf("expected missing third timestamp, got %v", err)
	}

	label, _, err := r.text(sel, Field{Name: "label", Path: ".label", Mode: LeadingText})
	if err != nil || label != "KAST" {
		t.Fatalf("leading text=%q err=%v", label, err)
	}
}

func TestCleanText(t *testing.T) {
	t.Parallel()

	if got := cleanText("\n\t Team   Liquid\u200b  "); got != "Team Liquid" {
		t.Fatalf("cleanText=%q", got)
	}
	if got := cleanText("   "); got != "" {
		t.Fatalf("cleanText of blanks=%q", got)
	}
}
