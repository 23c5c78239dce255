package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"publist/src/cmd/pubs/normalizecmd"
	"publist/src/cmd/pubs/rendercmd"
	"publist/src/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pubs",
		Short: "Publication list generator (BibTeX -> normalised entries -> HTML/Markdown)",
	}
	root.PersistentFlags().String("config", config.DefaultPath, "settings file (YAML)")
	root.PersistentFlags().String("log-level", "", "debug, info, warn or error")
	// Attach subcommands
	root.AddCommand(rendercmd.New())
	root.AddCommand(normalizecmd.New())
	return root
}

func execute() error {
	return newRootCmd().Execute()
}

func main() {
	if err := execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
