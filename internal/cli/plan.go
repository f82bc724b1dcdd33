package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/hiergen/internal/wire"
)

// PlanCmd returns the plan command
func PlanCmd() *cobra.Command {
	var flags requestFlags

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the files generate would write",
		Long: `Print the files, classes and includes of a generation request as a tree,
marking files that already exist. Nothing is written.

Example:
  hiergen plan --name-base Foo --depth 3 --output gen`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.HierarchyAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			_, err = adapter.Plan(cmd.Context(), flags.request())
			return err
		},
	}

	flags.register(cmd)

	return cmd
}
