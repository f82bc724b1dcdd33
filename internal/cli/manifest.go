package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/hiergen/internal/wire"
)

// ManifestCmd returns the manifest command
func ManifestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Inspect recorded generation runs",
		Long: `Inspect the ledger of recorded generation runs.

Runs are recorded when manifest.enabled is set in .hiergen/config.yaml or
generate/batch is called with --record.`,
	}

	cmd.AddCommand(manifestListCmd())
	cmd.AddCommand(manifestVerifyCmd())

	return cmd
}

func manifestListCmd() *cobra.Command {
	var nameBase string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.ManifestAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			_, err = adapter.List(cmd.Context(), nameBase, limit)
			return err
		},
	}

	cmd.Flags().StringVar(&nameBase, "name-base", "", "only runs with this name base")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum runs to list (0 for all)")

	return cmd
}

func manifestVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <run-id>",
		Short: "Check that a run's files are unchanged on disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.ManifestAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			_, err = adapter.Verify(cmd.Context(), args[0])
			return err
		},
	}
}
