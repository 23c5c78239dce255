package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"text/template"

	"publist/src/internal/entry"
	"publist/src/internal/filters"
)

const listTemplate = `<h1>{{.Title}}</h1>
<ul>{{range keeponly .Entries "article"}}
<li>{{author_join (highlight .author)}}. <i>{{.title}}</i>, {{ordinal .edition}} ed., pp. {{.pages}}.</li>{{end}}
</ul>`

func sampleContext() Context {
	return Context{
		Title: "Publications",
		Entries: []entry.Entry{
			{"ENTRYTYPE": "article", "title": "Parsing BibTeX", "edition": "2", "pages": "1&ndash;9",
				"author": []string{"Jonathan Washington", "Jane Doe"}},
			{"ENTRYTYPE": "book", "title": "Skipped"},
		},
	}
}

func TestRenderStringHTML(t *testing.T) {
	h := filters.Highlighter{Parts: []string{"Washington"}, Class: "me"}
	r := New(WithFuncs(filters.FuncMap(h)))
	var b strings.Builder
	if err := r.RenderString(&b, "list", listTemplate, sampleContext()); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := b.String()
	want := `<li><span class="me">Jonathan Washington</span> and Jane Doe. <i>Parsing BibTeX</i>, 2nd ed., pp. 1&ndash;9.</li>`
	if !strings.Contains(out, want) {
		t.Fatalf("output missing %q:\n%s", want, out)
	}
	if strings.Contains(out, "Skipped") {
		t.Fatalf("keeponly did not filter:\n%s", out)
	}
}

func TestRenderMarkdown(t *testing.T) {
	r := New(WithFormat(FormatMarkdown))
	var b strings.Builder
	if err := r.RenderString(&b, "list", listTemplate, sampleContext()); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := b.String()
	for _, want := range []string{"# Publications", "Jonathan Washington and Jane Doe", "*Parsing BibTeX*", "2nd ed."} {
		if !strings.Contains(out, want) {
			t.Fatalf("markdown missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<li>") {
		t.Fatalf("markdown still has HTML:\n%s", out)
	}
}

func TestRenderFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "page.tmpl")
	if err := os.WriteFile(p, []byte(`{{.Title}} ({{len .Entries}}) {{shout "x"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	r := New(WithFuncs(template.FuncMap{"shout": strings.ToUpper}))
	var b strings.Builder
	if err := r.RenderFile(&b, p, sampleContext()); err != nil {
		t.Fatalf("render: %v", err)
	}
	if b.String() != "Publications (2) X" {
		t.Fatalf("got %q", b.String())
	}
}

func TestRenderErrors(t *testing.T) {
	r := New()
	var b strings.Builder
	if err := r.RenderString(&b, "bad", "{{.Title", nil); err == nil || !strings.Contains(err.Error(), "parse template bad") {
		t.Fatalf("parse error: %v", err)
	}
	if err := r.RenderString(&b, "exec", `{{author_join .Entries}}`, sampleContext()); err == nil {
		t.Fatalf("expected execution error")
	}
	if err := r.RenderFile(&b, filepath.Join(t.TempDir(), "none.tmpl"), nil); err == nil {
		t.Fatalf("expected missing file error")
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatHTML, "HTML": FormatHTML, "md": FormatMarkdown, "markdown": FormatMarkdown} {
		if got, err := ParseFormat(in); err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("pdf"); err == nil {
		t.Fatalf("pdf must be rejected")
	}
}

func TestDefaultTemplate(t *testing.T) {
	ctx := Context{
		Title:     "Selected work",
		Generated: "2024-05-01",
		Entries: []entry.Entry{
			{"ENTRYTYPE": "article", "title": "Old", "year": "2019", "author": []string{"A"}, "journal": "J"},
			{"ENTRYTYPE": "article", "title": "New", "year": "2023", "author": []string{"Jonathan Washington", "B"}, "pages": "3&ndash;4"},
			{"ENTRYTYPE": "book", "title": "Tome", "edition": "3", "publisher": "P"},
			{"ENTRYTYPE": "inproceedings", "year": "2020", "author": []string{"C", "D"}},
		},
	}
	h := filters.Highlighter{Parts: []string{"Jonathan", "Washington"}, Class: "me"}
	var b strings.Builder
	if err := New(WithFuncs(filters.FuncMap(h))).RenderFile(&b, "", ctx); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := b.String()
	for _, want := range []string{
		"<h1>Selected work</h1>",
		`<li><span class="me">Jonathan Washington</span> and B. 2023. New, 3&ndash;4.</li>`,
		"<li><i>Tome</i>, 3rd edition. P.</li>",
		"Generated 2024-05-01",
		"<li>C and D. 2020. Untitled.</li>",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("default template missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "New") > strings.Index(out, "Old") {
		t.Fatalf("articles must be newest first:\n%s", out)
	}
	if strings.Contains(out, "<no value>") {
		t.Fatalf("missing fields must not print:\n%s", out)
	}

	b.Reset()
	books := Context{Entries: []entry.Entry{{"ENTRYTYPE": "book", "edition": "1"}}}
	if err := New().RenderFile(&b, "", books); err != nil {
		t.Fatalf("render books: %v", err)
	}
	if strings.Contains(b.String(), "Journal articles") || !strings.Contains(b.String(), "<li><i>Untitled</i>, 1st edition.</li>") {
		t.Fatalf("books only:\n%s", b.String())
	}
}
