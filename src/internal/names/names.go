package names

import (
	"strings"
	"unicode"
)

// Initials converts given names into spaced initials: "Jane Q" -> "J. Q.".
// Hyphenated names keep the hyphen: "Jean-Paul" -> "J.-P.".
func Initials(given string) string {
	var out []string
	for _, w := range strings.Fields(given) {
		var parts []string
		for _, p := range strings.Split(w, "-") {
			r := []rune(p)
			if len(r) == 0 || !unicode.IsLetter(r[0]) {
				continue
			}
			parts = append(parts, string(unicode.ToUpper(r[0]))+".")
		}
		if len(parts) > 0 {
			out = append(out, strings.Join(parts, "-"))
		}
	}
	return strings.Join(out, " ")
}

// Split splits a display name into (family, given). It accepts
// "Family, Given Names" as well as "Given Names Family".
func Split(name string) (family, given string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ""
	}
	if i := strings.Index(name, ","); i >= 0 {
		return strings.TrimSpace(name[:i]), strings.TrimSpace(name[i+1:])
	}
	parts := strings.Fields(name)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[len(parts)-1], strings.Join(parts[:len(parts)-1], " ")
}

// Abbreviate renders a name as initials followed by the family name:
// "Jane Quinn Doe" and "Doe, Jane Quinn" both give "J. Q. Doe". Names
// carrying markup (a highlighted author) are returned unchanged.
func Abbreviate(name string) string {
	if strings.ContainsAny(name, "<>") {
		return name
	}
	family, given := Split(name)
	if in := Initials(given); in != "" {
		return in + " " + family
	}
	return family
}
