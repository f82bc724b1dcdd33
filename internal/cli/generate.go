package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/hiergen/internal/models"
	"github.com/example/hiergen/internal/wire"
)

// requestFlags binds the three generation parameters to a command.
type requestFlags struct {
	nameBase string
	depth    int
	output   string
}

func (f *requestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.nameBase, "name-base", "", "base for class naming, e.g. Foo (required)")
	cmd.Flags().IntVar(&f.depth, "depth", 0, "number of classes in the chain, root included (required)")
	cmd.Flags().StringVar(&f.output, "output", "", "directory the files are written to (required)")
	_ = cmd.MarkFlagRequired("name-base")
	_ = cmd.MarkFlagRequired("depth")
	_ = cmd.MarkFlagRequired("output")
}

func (f *requestFlags) request() models.GenerationRequest {
	return models.GenerationRequest{
		NameBase: f.nameBase,
		Depth:    f.depth,
		Output:   f.output,
	}
}

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	var flags requestFlags
	var record bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a MyRTTI and an Unreal class chain",
		Long: `Generate two parallel single-inheritance chains of the given depth.

Writes one MyRTTI header holding every class, then a header/source pair per
Unreal class. Files are overwritten; stale files from deeper runs are kept.

Examples:
  hiergen generate --name-base Foo --depth 3 --output gen
  hiergen generate --name-base Deep --depth 100 --output gen --record`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if record {
				wire.Config().Manifest.Enabled = true
			}

			adapter, err := wire.HierarchyAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			_, err = adapter.Generate(cmd.Context(), flags.request())
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&record, "record", false, "record the run in the manifest (overrides manifest.enabled)")

	return cmd
}
