package entry

import "strings"

// Reserved field names shared with the BibTeX reader.
const (
	FieldType   = "ENTRYTYPE"
	FieldID     = "ID"
	FieldAuthor = "author"
	FieldPages  = "pages"
	FieldBibTeX = "bibTex"
)

// Entry is one bibliographic record: field name -> value. Values are strings
// as read from the source, except author which becomes a []string once the
// record has been normalised. Normalisers mutate an Entry in place and return
// it; callers that share records across goroutines should Clone first.
type Entry map[string]any

// Type returns the lower-cased entry-type tag (article, book, ...).
func (e Entry) Type() string {
	s, _ := e.String(FieldType)
	return strings.ToLower(s)
}

// Key returns the citation key.
func (e Entry) Key() string {
	s, _ := e.String(FieldID)
	return s
}

// Has reports whether field is present, whatever its value.
func (e Entry) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// String returns the value of field when it holds a string.
func (e Entry) String(field string) (string, bool) {
	s, ok := e[field].(string)
	return s, ok
}

// Authors returns the normalised author list, or nil when author is absent
// or has not been split yet.
func (e Entry) Authors() []string {
	switch v := e[FieldAuthor].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, n := range v {
			if s, ok := n.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Clone returns a copy that can be mutated without touching e. Top-level
// lists are copied; other values are shared.
func (e Entry) Clone() Entry {
	if e == nil {
		return nil
	}
	out := make(Entry, len(e))
	for k, v := range e {
		switch vv := v.(type) {
		case []string:
			v = append([]string(nil), vv...)
		case []any:
			v = append([]any(nil), vv...)
		}
		out[k] = v
	}
	return out
}

// CloneAll clones every entry of a collection, keeping order.
func CloneAll(es []Entry) []Entry {
	out := make([]Entry, len(es))
	for i, e := range es {
		out[i] = e.Clone()
	}
	return out
}
