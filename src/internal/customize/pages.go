package customize

import (
	"fmt"
	"regexp"

	"publist/src/internal/entry"
)

var digitRun = regexp.MustCompile(`\d+`)

// PageEndash rewrites pages as "<first>&ndash;<last>" using the first and last
// digit runs, so "45--52" and "pp. 45-52" both become "45&ndash;52" and a
// single page "7" becomes "7&ndash;7". A pages value without digits is left
// as is and ErrNoPageDigits is returned.
func PageEndash(e entry.Entry) (entry.Entry, error) {
	v, ok := e[entry.FieldPages]
	if !ok {
		return e, nil
	}
	var s string
	switch v := v.(type) {
	case string:
		s = v
	case int, int64, uint64, float64:
		// YAML and JSON input may carry a bare page number.
		s = fmt.Sprint(v)
	default:
		return e, nil
	}
	runs := digitRun.FindAllString(s, -1)
	if len(runs) == 0 {
		return e, ErrNoPageDigits
	}
	e[entry.FieldPages] = runs[0] + "&ndash;" + runs[len(runs)-1]
	return e, nil
}
