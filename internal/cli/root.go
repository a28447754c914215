// Package cli wires the ledger command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
}

// NewRootCommand creates the root command of the ledger binary.
// Running it without a subcommand serves the HTTP API.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	serve := NewServeCommand(opts)

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Dual-bucket balance ledger",
		Long: `Balance ledger keeping withdrawable and locked funds per user.

Balances are mutated only by the single backend authority recorded on
initialization. Reads are public.`,
		SilenceUsage: true,
		RunE:         serve.RunE,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "./configs", "directory holding app.env")

	cmd.AddCommand(serve)
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewKeygenCommand())
	cmd.AddCommand(NewSignCommand())

	return cmd
}
