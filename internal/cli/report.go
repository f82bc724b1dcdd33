package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/hiergen/internal/wire"
)

// ReportCmd returns the report command
func ReportCmd() *cobra.Command {
	var benchmark string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Chart google-benchmark results by cast kind",
		Long: `Read a google-benchmark JSON report and chart cpu_time per cast kind.

Run names must follow Fixture/<shape>_<direction>_<kind>, for example
InheritanceFixture/deep_fromBase_dynamic_cast. Other runs are skipped.

Example:
  ./benchmarks --benchmark_format=json > results.json
  hiergen report --benchmark results.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.ReportAdapterWithOutput(cmd.OutOrStdout()).Report(benchmark)
			return err
		},
	}

	cmd.Flags().StringVar(&benchmark, "benchmark", "", "path to the benchmark JSON file (required)")
	_ = cmd.MarkFlagRequired("benchmark")

	return cmd
}
