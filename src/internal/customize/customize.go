// Package customize normalises parsed BibTeX entries before they are handed
// to a template: empty fields are dropped, the author field becomes a list,
// page ranges get an HTML en dash, LaTeX escapes become Unicode and the
// remaining LaTeX markup becomes HTML.
package customize

import "publist/src/internal/entry"

// Step is one normalisation pass over a single entry.
type Step struct {
	Name string
	Run  func(entry.Entry) (entry.Entry, error)
}

// lift adapts a transform that cannot fail.
func lift(f func(entry.Entry) entry.Entry) func(entry.Entry) (entry.Entry, error) {
	return func(e entry.Entry) (entry.Entry, error) { return f(e), nil }
}

// Pipeline is the fixed step order. ClearEmpty runs first so later steps
// never see empty fields, and Authors runs before the string-only steps so
// they find a list in author.
var Pipeline = []Step{
	{Name: "clear_empty", Run: lift(ClearEmpty)},
	{Name: "author", Run: lift(Authors)},
	{Name: "page_endash", Run: PageEndash},
	{Name: "convert_to_unicode", Run: lift(ConvertToUnicode)},
	{Name: "clean_latex", Run: lift(CleanLatex)},
}

// Customize runs Pipeline over e, in place. A failing step stops the
// pipeline and is reported as a *StepError.
func Customize(e entry.Entry) (entry.Entry, error) {
	var err error
	for _, s := range Pipeline {
		if e, err = s.Run(e); err != nil {
			return e, &StepError{Step: s.Name, Entry: e.Key(), Err: err}
		}
	}
	return e, nil
}
