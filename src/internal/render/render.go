// Package render executes publication-list templates over a normalised
// collection.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"publist/src/internal/entry"
	"publist/src/internal/filters"
)

// Format selects what Render writes.
type Format string

const (
	// FormatHTML writes template output unchanged.
	FormatHTML Format = "html"
	// FormatMarkdown converts the template output from HTML to Markdown.
	FormatMarkdown Format = "markdown"
)

// ParseFormat accepts html, markdown or md. Empty means html.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "html":
		return FormatHTML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// DefaultTemplate lists articles, conference papers and books, newest first.
//
//go:embed default.tmpl
var DefaultTemplate string

// Context is the data handed to a template.
type Context struct {
	Entries   []entry.Entry
	Title     string
	Generated string
}

// Renderer parses and executes templates with the filter functions installed.
type Renderer struct {
	funcs  template.FuncMap
	format Format
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFuncs adds or replaces template functions.
func WithFuncs(fm template.FuncMap) Option {
	return func(r *Renderer) {
		for k, v := range fm {
			r.funcs[k] = v
		}
	}
}

// WithFormat sets the output format.
func WithFormat(f Format) Option {
	return func(r *Renderer) { r.format = f }
}

// New returns a Renderer producing HTML with the default filters.
func New(opts ...Option) *Renderer {
	r := &Renderer{funcs: filters.FuncMap(filters.Highlighter{}), format: FormatHTML}
	for _, o := range opts {
		o(r)
	}
	return r
}

// RenderFile executes the template stored at path, or DefaultTemplate when
// path is empty.
func (r *Renderer) RenderFile(w io.Writer, path string, data any) error {
	if path == "" {
		return r.RenderString(w, "default", DefaultTemplate, data)
	}
	text, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return r.RenderString(w, filepath.Base(path), string(text), data)
}

// RenderString parses text as a template called name and executes it.
func (r *Renderer) RenderString(w io.Writer, name, text string, data any) error {
	tmpl, err := template.New(name).Funcs(r.funcs).Parse(text)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}
	out := buf.String()
	if r.format == FormatMarkdown {
		if out, err = htmlToMarkdown(out); err != nil {
			return fmt.Errorf("convert %s to markdown: %w", name, err)
		}
	}
	_, err = io.WriteString(w, out)
	return err
}

func htmlToMarkdown(html string) (string, error) {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle("atx"),
			),
			table.NewTablePlugin(),
		),
	)
	md, err := conv.ConvertString(html)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md) + "\n", nil
}
