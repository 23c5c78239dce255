// Package stringsx holds small string helpers used for flag and config
// layering.
package stringsx

import "strings"

// FirstNonEmpty returns the first value that is non-empty once trimmed,
// trimmed. Callers pass flag, environment and file values in priority order.
func FirstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// SplitList splits a comma-separated list, trimming items and dropping empty
// ones. "article, book,," gives [article book].
func SplitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
