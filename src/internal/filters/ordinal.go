package filters

import (
	"fmt"
	"strconv"
	"strings"
)

// Ordinal turns an edition number into its English ordinal: "1" -> "1st",
// "12" -> "12th", "22" -> "22nd". A value that is not a whole number is cut
// at its first space and returned as is ("3rd revised" -> "3rd"). Numbers
// below one come back as the bare number.
func Ordinal(value any) string {
	s, ok := value.(string)
	if !ok {
		s = fmt.Sprint(value)
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return strings.SplitN(s, " ", 2)[0]
	}
	if n < 1 {
		return strconv.Itoa(n)
	}
	return s + ordinalSuffix(n)
}

func ordinalSuffix(n int) string {
	switch n % 100 {
	case 11, 12, 13:
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}
