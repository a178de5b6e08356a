package extraction

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// resolver applies Field declarations to a selection. Every method reports
// whether the value was present; a missing optional field is not an error.
type resolver struct {
	baseURL string
}

func (r resolver) lookup(sel *goquery.Selection, f Field) (string, bool) {
	target := sel
	if f.Path != "" {
		target = sel.Find(f.Path)
	}
	if f.Index >= target.Length() {
		return "", false
	}
	target = target.Eq(f.Index)

	if f.Attr != "" {
		value, ok := target.Attr(f.Attr)
		return strings.TrimSpace(value), ok
	}
	if f.Mode == LeadingText {
		return leadingText(target), true
	}
	return cleanText(target.Text()), true
}

func (r resolver) absent(f Field) error {
	if f.Required {
		return missingField(f.Name)
	}
	return nil
}

func (r resolver) text(sel *goquery.Selection, f Field) (string, bool, error) {
	raw, ok := r.lookup(sel, f)
	if !ok {
		return "", false, r.absent(f)
	}
	if f.Mode == URL {
		return AbsoluteURL(r.baseURL, raw), true, nil
	}
	return raw, true, nil
}

func (r resolver) integer(sel *goquery.Selection, f Field) (int64, bool, error) {
	raw, ok := r.lookup(sel, f)
	if !ok {
		return 0, false, r.absent(f)
	}

	var (
		out int64
		err error
	)
	switch f.Mode {
	case ID:
		out, err = IDFromURL(raw)
	case Unix:
		out, err = UnixTimestamp(raw)
	case Ranking:
		var n int
		n, err = RankingNumber(raw)
		out = int64(n)
	case Digits:
		var n int
		n, err = LeadingInt(raw)
		out = int64(n)
	default:
		out, err = strconv.ParseInt(raw, 10, 64)
	}
	if err != nil {
		return 0, true, malformedField(f.Name, raw)
	}

	return out, true, nil
}

func (r resolver) number(sel *goquery.Selection, f Field) (float64, bool, error) {
	raw, ok := r.lookup(sel, f)
	if !ok {
		return 0, false, r.absent(f)
	}

	var (
		out float64
		err error
	)
	if f.Mode == Percent {
		out, err = Percentage(raw)
	} else {
		out, err = Decimal(raw)
	}
	if err != nil {
		return 0, true, malformedField(f.Name, raw)
	}

	return out, true, nil
}

func optionalString(v string, ok bool) *string {
	if !ok {
		return nil
	}
	return &v
}

func optionalInt(v int64, ok bool) *int {
	if !ok {
		return nil
	}
	out := int(v)
	return &out
}

func optionalFloat(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}
