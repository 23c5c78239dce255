package rendercmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"publist/src/cmd/pubs/cmdutil"
	"publist/src/internal/dates"
	"publist/src/internal/entry"
	"publist/src/internal/filters"
	"publist/src/internal/library"
	"publist/src/internal/render"
	"publist/src/internal/stringsx"
)

// New returns the render command: load, normalise and render a publication list.
func New() *cobra.Command {
	var input, tmpl, output, format, charset, title string
	var skipInvalid bool
	cmd := &cobra.Command{
		Use:          "render",
		Short:        "Render a BibTeX/YAML/JSON library through a publication-list template",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := cmdutil.Setup(cmd)
			if err != nil {
				return err
			}
			cfg.Input = stringsx.FirstNonEmpty(input, cfg.Input)
			cfg.Template = stringsx.FirstNonEmpty(tmpl, cfg.Template)
			cfg.Output = stringsx.FirstNonEmpty(output, cfg.Output)
			cfg.Format = stringsx.FirstNonEmpty(format, cfg.Format)
			cfg.Charset = stringsx.FirstNonEmpty(charset, cfg.Charset)
			cfg.Title = stringsx.FirstNonEmpty(title, cfg.Title)
			cfg.SkipInvalid = cmdutil.SkipInvalid(cmd, cfg, skipInvalid)
			if err := cfg.Validate(); err != nil {
				return err
			}
			f, _ := render.ParseFormat(cfg.Format)

			entries, err := cmdutil.LoadInput(cfg.Input, library.Options{Charset: cfg.Charset, RawField: entry.FieldBibTeX})
			if err != nil {
				return err
			}
			entries, err = library.Normalize(entries, cfg.SkipInvalid, log)
			if err != nil {
				return err
			}
			r := render.New(
				render.WithFuncs(filters.FuncMap(cfg.Highlighter())),
				render.WithFormat(f),
			)
			data := render.Context{
				Entries:   entries,
				Title:     cfg.Title,
				Generated: dates.Today(),
			}
			if cfg.Output == "" || cfg.Output == "-" {
				return r.RenderFile(cmd.OutOrStdout(), cfg.Template, data)
			}
			if err := writeFile(cfg.Output, func(w io.Writer) error {
				return r.RenderFile(w, cfg.Template, data)
			}); err != nil {
				return err
			}
			log.Info("rendered publication list", "output", cfg.Output, "entries", len(entries))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d entries)\n", cfg.Output, len(entries))
			return err
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "library file (.bib, .yaml, .json)")
	cmd.Flags().StringVarP(&tmpl, "template", "t", "", "text/template file (default: built-in list)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&format, "format", "", "output format: html or markdown")
	cmd.Flags().StringVar(&charset, "charset", "", "force the input charset (e.g. latin1)")
	cmd.Flags().StringVar(&title, "title", "", "page title passed to the template")
	cmd.Flags().BoolVar(&skipInvalid, "skip-invalid", false, "drop entries that fail normalisation instead of aborting")
	return cmd
}

// writeFile fills a temp file next to path and renames it into place. A
// failed render leaves an existing file at path untouched.
func writeFile(path string, fill func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".pubs-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := fill(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
