package normalizecmd

import (
	"github.com/spf13/cobra"

	"publist/src/cmd/pubs/cmdutil"
	"publist/src/internal/entry"
	"publist/src/internal/filters"
	"publist/src/internal/library"
	"publist/src/internal/stringsx"
)

// New returns the normalize command, which dumps the customized entries so a
// template author can see exactly what the filters receive.
func New() *cobra.Command {
	var input, types, field, outFormat, charset string
	var skipInvalid, raw bool
	cmd := &cobra.Command{
		Use:          "normalize",
		Short:        "Print normalised entries as YAML or JSON",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := cmdutil.Setup(cmd)
			if err != nil {
				return err
			}
			opts := library.Options{Charset: stringsx.FirstNonEmpty(charset, cfg.Charset)}
			if raw {
				opts.RawField = entry.FieldBibTeX
			}
			entries, err := cmdutil.LoadInput(stringsx.FirstNonEmpty(input, cfg.Input), opts)
			if err != nil {
				return err
			}
			entries, err = library.Normalize(entries, cmdutil.SkipInvalid(cmd, cfg, skipInvalid), log)
			if err != nil {
				return err
			}
			if ts := stringsx.SplitList(types); len(ts) > 0 {
				entries = filters.KeepOnly(entries, ts, field)
			}
			log.Debug("normalize output", "entries", len(entries), "format", outFormat)
			return library.Write(cmd.OutOrStdout(), entries, outFormat)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "library file (.bib, .yaml, .json)")
	cmd.Flags().StringVar(&types, "type", "", "comma-delimited values to keep (see --field)")
	cmd.Flags().StringVar(&field, "field", entry.FieldType, "field matched by --type")
	cmd.Flags().StringVar(&outFormat, "output-format", "yaml", "yaml or json")
	cmd.Flags().StringVar(&charset, "charset", "", "force the input charset (e.g. latin1)")
	cmd.Flags().BoolVar(&skipInvalid, "skip-invalid", false, "drop entries that fail normalisation instead of aborting")
	cmd.Flags().BoolVar(&raw, "raw", false, "keep each record's BibTeX source under bibTex")
	return cmd
}
