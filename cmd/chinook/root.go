package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configFile string
	jsonMode   bool
	verbose    bool
}

var flags rootFlags

// NewRootCmd creates the top-level "chinook" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "chinook",
		Short: "Browse the Chinook music catalog from the terminal",
		Long: "Chinook fetches catalog and commerce records (artists, tracks,\n" +
			"customers, invoices) from a remote Chinook REST API and renders\n" +
			"detail views with computed totals.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configFile, "config", "", "config file (default: ./chinook.yaml)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log every API request")

	root.AddCommand(newCustomerCmd())
	root.AddCommand(newInvoiceCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newThemesCmd())

	return root
}

// newLogger builds the CLI logger: quiet by default, per-request debug lines
// with --verbose.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
