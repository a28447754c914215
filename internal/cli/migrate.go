package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-petr/balance-ledger/pkg/configpkg"
	"github.com/go-petr/balance-ledger/pkg/dbpkg"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Apply or drop the database schema",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := configpkg.Load(rootOpts.ConfigPath)
			if err != nil {
				return err
			}

			db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
			if err != nil {
				return fmt.Errorf("cannot connect to database: %w", err)
			}
			defer db.Close()

			if down {
				if err := dbpkg.MigrateDown(cmd.Context(), db); err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), "schema dropped")

				return nil
			}

			if err := dbpkg.Migrate(cmd.Context(), db); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")

			return nil
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "drop the schema instead")

	return cmd
}
