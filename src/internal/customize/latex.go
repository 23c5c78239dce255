package customize

import (
	"regexp"
	"strings"

	"publist/src/internal/entry"
)

type latexRule struct {
	re   *regexp.Regexp
	repl string
}

// Order matters: the specific commands must be rewritten before the catch-all
// strips any other \command{...} down to its argument.
var latexRules = []latexRule{
	{regexp.MustCompile(`\\textit\{([^}]*)\}`), `<i>${1}</i>`},
	{regexp.MustCompile(`\\emph\{([^}]*)\}`), `<i>${1}</i>`},
	{regexp.MustCompile(`\\textbf\{([^}]*)\}`), `<b>${1}</b>`},
	{regexp.MustCompile(`\\url\{([^}]*)\}`), `<a href="${1}">${1}</a>`},
	{regexp.MustCompile(`\\[^{]*\{([^}]*)\}`), `${1}`},
}

var braceDropper = strings.NewReplacer("{", "", "}", "")

// CleanLatex rewrites LaTeX markup in every string field except bibTex:
// \textit and \emph become <i>, \textbf becomes <b>, \url becomes a link,
// any other \command{x} becomes x, and leftover braces are dropped.
// Fields that are not strings (the author list) are left untouched.
func CleanLatex(e entry.Entry) entry.Entry {
	for k, v := range e {
		if k == entry.FieldBibTeX {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		e[k] = cleanLatexString(s)
	}
	return e
}

func cleanLatexString(s string) string {
	for _, r := range latexRules {
		s = r.re.ReplaceAllString(s, r.repl)
	}
	return braceDropper.Replace(s)
}
