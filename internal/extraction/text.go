package extraction

import (
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/valyala/bytebufferpool"
	"golang.org/x/net/html"
)

// cleanText trims s and collapses inner whitespace runs to one space.
func cleanText(s string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	pendingSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			pendingSpace = buf.Len() > 0
			continue
		}
		if !unicode.IsPrint(r) {
			continue
		}
		if pendingSpace {
			_ = buf.WriteByte(' ')
			pendingSpace = false
		}
		buf.B = utf8.AppendRune(buf.B, r)
	}

	return buf.String()
}

// leadingText returns the first non-blank text node directly under the
// first node of sel, ignoring text nested in child elements.
func leadingText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	for child := sel.Nodes[0].FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.TextNode {
			continue
		}
		if text := cleanText(child.Data); text != "" {
			return text
		}
	}
	return ""
}
