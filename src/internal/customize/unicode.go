package customize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"publist/src/internal/entry"
)

// combiningMarks maps LaTeX accent commands to Unicode combining characters.
var combiningMarks = map[string]string{
	"'":  "\u0301",
	"`":  "\u0300",
	"^":  "\u0302",
	"\"": "\u0308",
	"~":  "\u0303",
	"=":  "\u0304",
	".":  "\u0307",
	"c":  "\u0327",
	"v":  "\u030c",
	"u":  "\u0306",
	"H":  "\u030b",
	"k":  "\u0328",
	"r":  "\u030a",
	"d":  "\u0323",
	"b":  "\u0331",
}

var namedLetters = map[string]string{
	"ss": "ß",
	"ae": "æ",
	"AE": "Æ",
	"oe": "œ",
	"OE": "Œ",
	"aa": "å",
	"AA": "Å",
	"o":  "ø",
	"O":  "Ø",
	"l":  "ł",
	"L":  "Ł",
	"i":  "ı",
	"j":  "ȷ",
}

var (
	// \'e, \'{e}, \'\i
	symbolAccent = regexp.MustCompile("\\\\(['`^\"~=.])\\s*(?:\\{\\s*(\\\\[ij]|[A-Za-z])\\s*\\}|(\\\\[ij]|[A-Za-z]))")
	// \c{c}, \v{s}: letter commands only take a braced argument, which keeps
	// \cite, \url and friends out of the match.
	letterAccent = regexp.MustCompile(`\\([cvuHkrdb])\{\s*(\\[ij]|[A-Za-z])\s*\}`)
	namedLetter  = regexp.MustCompile(`\\(ss|ae|AE|oe|OE|aa|AA|o|O|l|L|i|j)(?:\{\}|\s+|\b)`)
)

var specials = strings.NewReplacer(
	`\&`, "&",
	`\%`, "%",
	`\$`, "$",
	`\#`, "#",
	`\_`, "_",
	"---", "—",
	"--", "–",
	"``", "“",
	"''", "”",
)

// ConvertToUnicode replaces LaTeX accents, named letters and escaped
// specials with their Unicode characters and NFC-normalises the result.
// It applies to string fields and to the string elements of list fields
// (YAML and JSON lists arrive as []any); bibTex is left as written.
func ConvertToUnicode(e entry.Entry) entry.Entry {
	for k, v := range e {
		if k == entry.FieldBibTeX {
			continue
		}
		switch v := v.(type) {
		case string:
			e[k] = LatexToUnicode(v)
		case []string:
			out := make([]string, len(v))
			for i, s := range v {
				out[i] = LatexToUnicode(s)
			}
			e[k] = out
		case []any:
			out := make([]any, len(v))
			for i, x := range v {
				if s, ok := x.(string); ok {
					x = LatexToUnicode(s)
				}
				out[i] = x
			}
			e[k] = out
		}
	}
	return e
}

// LatexToUnicode converts one string. Only strings that contain LaTeX (a
// backslash or a brace) are rewritten; everything is NFC-normalised.
func LatexToUnicode(s string) string {
	if strings.ContainsAny(s, `\{`) {
		s = symbolAccent.ReplaceAllStringFunc(s, func(m string) string {
			sub := symbolAccent.FindStringSubmatch(m)
			return accentBase(sub[2]+sub[3]) + combiningMarks[sub[1]]
		})
		s = letterAccent.ReplaceAllStringFunc(s, func(m string) string {
			sub := letterAccent.FindStringSubmatch(m)
			return accentBase(sub[2]) + combiningMarks[sub[1]]
		})
		s = namedLetter.ReplaceAllStringFunc(s, func(m string) string {
			sub := namedLetter.FindStringSubmatch(m)
			return namedLetters[sub[1]]
		})
		s = specials.Replace(s)
	}
	return norm.NFC.String(s)
}

// accentBase maps the dotless \i and \j to plain letters so the combining
// mark composes into í rather than ı́.
func accentBase(b string) string {
	switch b {
	case `\i`:
		return "i"
	case `\j`:
		return "j"
	}
	return b
}
