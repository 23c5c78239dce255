// Package dates extracts publication years from BibTeX year and biblatex
// date values.
package dates

import (
	"strconv"
	"strings"
	"time"
)

// Year returns the first plausible four-digit year in s: "2020", "2020-05-01",
// "in press, 2021" and "2019a" all work. Years after next year are ignored.
// It returns 0 when none is found.
func Year(s string) int {
	s = strings.TrimSpace(s)
	limit := time.Now().Year() + 1
	for i := 0; i+4 <= len(s); i++ {
		if i > 0 && isDigit(s[i-1]) {
			continue
		}
		if i+4 < len(s) && isDigit(s[i+4]) {
			continue
		}
		y, err := strconv.Atoi(s[i : i+4])
		if err == nil && y >= 1000 && y <= limit {
			return y
		}
	}
	return 0
}

// Today returns the current local date as YYYY-MM-DD.
func Today() string { return time.Now().Format("2006-01-02") }

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
