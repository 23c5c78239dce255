// Package cmdutil resolves the settings shared by every pubs subcommand.
package cmdutil

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"publist/src/internal/config"
	"publist/src/internal/entry"
	"publist/src/internal/library"
	"publist/src/internal/logging"
	"publist/src/internal/stringsx"
)

// Setup loads the config named by --config (falling back to
// config.DefaultPath) and builds a logger on the command's stderr at the
// --log-level flag or the configured level. Flags that the command does not
// carry are treated as unset.
func Setup(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	path := stringsx.FirstNonEmpty(flagValue(cmd, "config"), config.DefaultPath)
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, nil, err
	}
	cfg.LogLevel = stringsx.FirstNonEmpty(flagValue(cmd, "log-level"), cfg.LogLevel)
	log := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	log.Debug("config loaded", "path", path)
	return cfg, log, nil
}

func flagValue(cmd *cobra.Command, name string) string {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f.Value.String()
	}
	return ""
}

// LoadInput loads path through library.Load, naming the accepted extensions
// when the file type is not recognised.
func LoadInput(path string, opts library.Options) ([]entry.Entry, error) {
	es, err := library.Load(path, opts)
	if library.IsUnsupportedFormat(err) {
		return nil, fmt.Errorf("%s: %w (expected .bib, .yaml, .yml or .json)", path, err)
	}
	return es, err
}

// SkipInvalid lets an explicit --skip-invalid (true or false) override the
// configured value.
func SkipInvalid(cmd *cobra.Command, cfg config.Config, flag bool) bool {
	if cmd.Flags().Changed("skip-invalid") {
		return flag
	}
	return cfg.SkipInvalid
}
