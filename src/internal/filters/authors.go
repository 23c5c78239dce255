package filters

import (
	"errors"
	"strings"

	"publist/src/internal/names"
)

// ErrNoAuthors is returned by AuthorJoin for an empty list.
var ErrNoAuthors = errors.New("author_join: empty author list")

// AuthorJoin joins names for display. seps overrides, in order, the general
// separator (", "), the separator before the last of three or more names
// (", and ") and the separator between exactly two names (" and ").
func AuthorJoin(value []string, seps ...string) (string, error) {
	d, last, two := ", ", ", and ", " and "
	if len(seps) > 0 {
		d = seps[0]
	}
	if len(seps) > 1 {
		last = seps[1]
	}
	if len(seps) > 2 {
		two = seps[2]
	}
	switch len(value) {
	case 0:
		return "", ErrNoAuthors
	case 1:
		return value[0], nil
	case 2:
		return value[0] + two + value[1], nil
	}
	return strings.Join(value[:len(value)-1], d) + last + value[len(value)-1], nil
}

// Highlighter wraps the names that contain every one of Parts in a span of
// class Class.
type Highlighter struct {
	Parts []string
	Class string
}

// Apply returns a new list with matching names wrapped; others pass through.
func (h Highlighter) Apply(value []string) []string {
	out := make([]string, 0, len(value))
	for _, name := range value {
		if h.matches(name) {
			name = `<span class="` + h.Class + `">` + name + "</span>"
		}
		out = append(out, name)
	}
	return out
}

func (h Highlighter) matches(name string) bool {
	if len(h.Parts) == 0 {
		return false
	}
	for _, p := range h.Parts {
		if !strings.Contains(name, p) {
			return false
		}
	}
	return true
}

var jnw = Highlighter{Parts: []string{"Jonathan", "Washington"}, Class: "pub-author-me"}

// HighlightJNW marks Jonathan Washington in an author list. A list of one
// name or fewer yields [""] rather than the name itself.
func HighlightJNW(value []string) []string {
	if len(value) <= 1 {
		return []string{""}
	}
	return jnw.Apply(value)
}

// Abbreviate maps each name to "J. Q. Doe" form.
func Abbreviate(value []string) []string {
	out := make([]string, len(value))
	for i, n := range value {
		out[i] = names.Abbreviate(n)
	}
	return out
}
