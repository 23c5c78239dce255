// Package library loads publication collections from disk, runs them through
// the normalisation pipeline and dumps them back out.
package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"publist/src/internal/bibtex"
	"publist/src/internal/customize"
	"publist/src/internal/entry"
	"publist/src/internal/logging"
)

// Options tunes Load.
type Options struct {
	// Charset forces the encoding of .bib files; empty means detect.
	Charset string
	// RawField, when set, receives each BibTeX record's source text.
	RawField string
}

// UnsupportedFormatError is returned for a file extension or output format
// the library cannot handle.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q", e.Format)
}

// IsUnsupportedFormat reports whether err is an *UnsupportedFormatError.
func IsUnsupportedFormat(err error) bool {
	var ue *UnsupportedFormatError
	return errors.As(err, &ue)
}

// Load reads path, choosing the decoder from its extension: .bib, .yaml/.yml
// or .json.
func Load(path string, opts Options) ([]entry.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".bib":
		src, err := bibtex.Decode(data, opts.Charset)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		var popts []bibtex.Option
		if opts.RawField != "" {
			popts = append(popts, bibtex.WithRawField(opts.RawField))
		}
		es, err := bibtex.Parse(src, popts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return es, nil
	case ".yaml", ".yml":
		var es []entry.Entry
		if err := yaml.Unmarshal(data, &es); err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
		return foldTypes(es), nil
	case ".json":
		var es []entry.Entry
		if err := json.Unmarshal(data, &es); err != nil {
			return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
		}
		return foldTypes(es), nil
	}
	return nil, &UnsupportedFormatError{Format: ext}
}

// foldTypes lower-cases ENTRYTYPE the way the BibTeX reader does, so
// hand-written YAML or JSON with "Article" still matches keeponly "article".
func foldTypes(es []entry.Entry) []entry.Entry {
	for _, e := range es {
		if e.Has(entry.FieldType) {
			e[entry.FieldType] = e.Type()
		}
	}
	return es
}

// Normalize customizes a copy of every entry, in order; entries itself is
// not modified. With skipInvalid a failing entry is logged and left out;
// otherwise the first failure is returned.
func Normalize(entries []entry.Entry, skipInvalid bool, log *slog.Logger) ([]entry.Entry, error) {
	if log == nil {
		log = logging.Discard()
	}
	out := make([]entry.Entry, 0, len(entries))
	for _, e := range entry.CloneAll(entries) {
		ne, err := customize.Customize(e)
		if err != nil {
			if !skipInvalid {
				return nil, err
			}
			if customize.IsNoPageDigits(err) {
				log.Warn("skipping entry", "id", e.Key(), "pages", e[entry.FieldPages], "err", err)
			} else {
				log.Warn("skipping entry", "id", e.Key(), "err", err)
			}
			continue
		}
		out = append(out, ne)
	}
	log.Debug("normalized entries", "in", len(entries), "out", len(out))
	return out, nil
}

// Write dumps entries to w as "yaml" or "json".
func Write(w io.Writer, entries []entry.Entry, format string) error {
	if entries == nil {
		entries = []entry.Entry{}
	}
	switch strings.ToLower(format) {
	case "yaml", "yml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(entries)
	}
	return &UnsupportedFormatError{Format: format}
}
