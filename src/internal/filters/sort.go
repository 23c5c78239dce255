package filters

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"publist/src/internal/entry"
)

// SortBy returns a copy of value stably sorted on field. Values compare as
// integers when both parse as such (years, volumes), otherwise as
// case-insensitive strings. Entries missing the field sort last either way.
func SortBy(value []entry.Entry, field string, desc ...bool) []entry.Entry {
	reverse := len(desc) > 0 && desc[0]
	out := append([]entry.Entry(nil), value...)
	sort.SliceStable(out, func(i, j int) bool {
		a, aok := scalar(out[i], field)
		b, bok := scalar(out[j], field)
		if !aok || !bok {
			return aok && !bok
		}
		c := compareValues(a, b)
		if reverse {
			return c > 0
		}
		return c < 0
	})
	return out
}

// scalar renders a string or number field for comparison.
func scalar(e entry.Entry, field string) (string, bool) {
	switch v := e[field].(type) {
	case string:
		return v, true
	case int, int64, uint64, float64:
		return fmt.Sprint(v), true
	}
	return "", false
}

func compareValues(a, b string) int {
	ai, aerr := strconv.Atoi(strings.TrimSpace(a))
	bi, berr := strconv.Atoi(strings.TrimSpace(b))
	if aerr == nil && berr == nil {
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		}
		return 0
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
