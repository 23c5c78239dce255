package filters

import (
	"fmt"
	"strconv"

	"publist/src/internal/dates"
	"publist/src/internal/entry"
)

// Year returns the publication year of e from its year field, falling back
// to a biblatex date field. Numeric values from YAML or JSON input count.
// It returns "" when neither holds a year.
func Year(e entry.Entry) string {
	for _, f := range []string{"year", "date"} {
		v, ok := e[f]
		if !ok || v == nil {
			continue
		}
		if y := dates.Year(fmt.Sprint(v)); y != 0 {
			return strconv.Itoa(y)
		}
	}
	return ""
}
