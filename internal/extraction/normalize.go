package extraction

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	digitsRegex = regexp.MustCompile(`\d+`)
	yearRegex   = regexp.MustCompile(`\d{4}`)
	schemeRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)
)

// IDFromURL returns the numeric identifier of a /<kind>/<id>/<slug> path.
// Absolute URLs are reduced to their path first.
func IDFromURL(raw string) (int64, error) {
	path := strings.TrimSpace(raw)
	if schemeRegex.MatchString(path) {
		parsed, err := url.Parse(path)
		if err != nil {
			return 0, fmt.Errorf("parse url %q: %w", raw, err)
		}
		path = parsed.Path
	}

	segments := strings.Split(path, "/")
	if len(segments) < 3 {
		return 0, fmt.Errorf("url %q has no id segment", raw)
	}
	id, err := strconv.ParseInt(segments[2], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("url %q id segment is not numeric", raw)
	}
	if id <= 0 {
		return 0, fmt.Errorf("url %q id must be positive", raw)
	}

	return id, nil
}

// Percentage parses "73.5%" as 73.5.
func Percentage(raw string) (float64, error) {
	value := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	if value == "" {
		return 0, fmt.Errorf("empty percentage")
	}

	return Decimal(value)
}

// Decimal parses a finite float. NaN and infinities are rejected.
func Decimal(raw string) (float64, error) {
	out, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(out) || math.IsInf(out, 0) {
		return 0, fmt.Errorf("non-finite number %q", raw)
	}

	return out, nil
}

// AbsoluteURL resolves ref against base. Refs that carry a scheme are returned unchanged.
func AbsoluteURL(base, ref string) string {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return ""
	case schemeRegex.MatchString(ref):
		return ref
	case strings.HasPrefix(ref, "//"):
		return "https:" + ref
	case strings.HasPrefix(ref, "/"):
		return strings.TrimRight(base, "/") + ref
	default:
		return strings.TrimRight(base, "/") + "/" + ref
	}
}

// UnixTimestamp parses an epoch attribute as delivered by the site, without conversion.
func UnixTimestamp(raw string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
}

// SplitFullName returns the first and second whitespace tokens of a full name.
// Multi-word last names are truncated to their first word.
func SplitFullName(full string) (first, last string) {
	tokens := strings.Fields(full)
	if len(tokens) > 0 {
		first = tokens[0]
	}
	if len(tokens) > 1 {
		last = tokens[1]
	}
	return first, last
}

// StripNickname removes the quoted nickname from a "First 'nick' Last" title.
func StripNickname(title, nickname string) string {
	out := strings.ReplaceAll(title, "'"+nickname+"'", "")
	out = strings.ReplaceAll(out, "  ", " ")
	return strings.TrimSpace(out)
}

// LeadingInt returns the first run of digits in raw, as in "24 years".
func LeadingInt(raw string) (int, error) {
	match := digitsRegex.FindString(raw)
	if match == "" {
		return 0, fmt.Errorf("no digits in %q", raw)
	}

	return strconv.Atoi(match)
}

// RankingNumber parses "#5" as 5.
func RankingNumber(raw string) (int, error) {
	return strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(raw), "#"))
}

// AppearanceYear returns the second four-digit group of a top 20 article path,
// the first one being the article date.
func AppearanceYear(href string) (int, error) {
	years := yearRegex.FindAllString(href, -1)
	if len(years) < 2 {
		return 0, fmt.Errorf("no ranking year in %q", href)
	}

	return strconv.Atoi(years[1])
}

// SocialNetwork names a social link by the first label of its host,
// so https://www.twitter.com/navi becomes "twitter".
func SocialNetwork(link string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(link))
	if err != nil || parsed.Hostname() == "" {
		return "", fmt.Errorf("cannot derive network from %q", link)
	}

	host := strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
	label, _, _ := strings.Cut(host, ".")
	return label, nil
}
