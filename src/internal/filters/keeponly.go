package filters

import "publist/src/internal/entry"

// KeepOnly returns the entries whose field (ENTRYTYPE unless given) equals
// val when val is a string, or is one of val when val is a list. Only string
// field values match. Order is preserved. Any other shape of val yields nil.
func KeepOnly(value []entry.Entry, val any, field ...string) []entry.Entry {
	f := entry.FieldType
	if len(field) > 0 && field[0] != "" {
		f = field[0]
	}
	accept, ok := acceptor(val)
	if !ok {
		return nil
	}
	var out []entry.Entry
	for _, e := range value {
		if s, ok := e.String(f); ok && accept(s) {
			out = append(out, e)
		}
	}
	return out
}

func acceptor(val any) (func(string) bool, bool) {
	switch v := val.(type) {
	case string:
		return func(s string) bool { return s == v }, true
	case []string:
		return func(s string) bool { return contains(v, s) }, true
	case []any:
		set := make([]string, 0, len(v))
		for _, x := range v {
			if xs, ok := x.(string); ok {
				set = append(set, xs)
			}
		}
		return func(s string) bool { return contains(set, s) }, true
	}
	return nil, false
}

func contains(set []string, s string) bool {
	for _, x := range set {
		if x == s {
			return true
		}
	}
	return false
}
