// Package filters holds the template functions used by publication-list
// templates: edition ordinals, entry-type filtering, author list joining and
// author highlighting.
package filters

import "text/template"

// FuncMap returns the filters under their template names. h backs the
// configurable "highlight" filter; "highlight_JNW" is fixed.
func FuncMap(h Highlighter) template.FuncMap {
	return template.FuncMap{
		"ordinal":       Ordinal,
		"keeponly":      KeepOnly,
		"author_join":   AuthorJoin,
		"highlight_JNW": HighlightJNW,
		"highlight":     h.Apply,
		"abbrev":        Abbreviate,
		"sortby":        SortBy,
		"plaintext":     PlainText,
		"year":          Year,
	}
}
