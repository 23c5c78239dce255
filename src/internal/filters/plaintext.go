package filters

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// PlainText drops the markup CleanLatex and the highlighters add, keeping
// only text, so a title can go into an attribute or a feed. Entities are
// decoded.
func PlainText(value string) string {
	if !strings.ContainsAny(value, "<&") {
		return value
	}
	z := html.NewTokenizer(strings.NewReader(value))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return b.String()
			}
			return value
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}
