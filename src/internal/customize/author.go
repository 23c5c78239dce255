package customize

import (
	"strings"

	"publist/src/internal/entry"
)

var braceStripper = strings.NewReplacer("\n", " ", "{", "", "}", "")

// Authors turns the author field into an ordered list of trimmed names.
// A BibTeX author string is split on the " and " separator; a list that
// came from YAML or JSON input is only trimmed. No-op when author is absent.
func Authors(e entry.Entry) entry.Entry {
	switch v := e[entry.FieldAuthor].(type) {
	case string:
		e[entry.FieldAuthor] = splitAuthors(v)
	case []string:
		e[entry.FieldAuthor] = compactNames(v)
	case []any:
		names := make([]string, 0, len(v))
		for _, n := range v {
			if s, ok := n.(string); ok {
				names = append(names, s)
			}
		}
		e[entry.FieldAuthor] = compactNames(names)
	}
	return e
}

func splitAuthors(s string) []string {
	return compactNames(strings.Split(braceStripper.Replace(s), " and "))
}

func compactNames(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
