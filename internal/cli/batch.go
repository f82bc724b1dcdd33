package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/hiergen/internal/suite"
	"github.com/example/hiergen/internal/wire"
)

// BatchCmd returns the batch command
func BatchCmd() *cobra.Command {
	var record bool

	cmd := &cobra.Command{
		Use:   "batch <suite.hcl>",
		Short: "Generate every hierarchy of an HCL suite",
		Long: `Generate the hierarchies listed in an HCL suite file concurrently.

Suite format:
  output = "gen"

  hierarchy "shallow" {
    name_base = "Foo"
    depth     = 3
  }

  hierarchy "deep" {
    name_base = "Bar"
    depth     = 100
    output    = "gen/deep"
  }

Relative outputs are resolved against the suite file's directory. Entries
that would write the same files are rejected before anything is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := suite.Load(args[0])
			if err != nil {
				return err
			}

			if record {
				wire.Config().Manifest.Enabled = true
			}

			adapter, err := wire.HierarchyAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			labels := make([]string, len(s.Entries))
			for i, e := range s.Entries {
				labels[i] = e.Label
			}
			_, err = adapter.GenerateBatch(cmd.Context(), labels, s.Requests())
			return err
		},
	}

	cmd.Flags().BoolVar(&record, "record", false, "record the runs in the manifest (overrides manifest.enabled)")

	return cmd
}
