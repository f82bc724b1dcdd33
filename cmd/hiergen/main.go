package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/hiergen/internal/cli"
	"github.com/example/hiergen/internal/errors"
	"github.com/example/hiergen/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "hiergen",
		Short:   "hiergen - class hierarchy generator for cast benchmarks",
		Version: version.String(),
		Long: `hiergen writes linear class chains of a chosen depth in two object
models: a MyRTTI header and Unreal Engine header/source pairs. The generated
sources feed cast benchmarks that compare both models at varying depth.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cli.Initialize,
	}
	cli.AddGlobalFlags(rootCmd)

	// Generation
	rootCmd.AddCommand(cli.GenerateCmd())
	rootCmd.AddCommand(cli.PlanCmd())
	rootCmd.AddCommand(cli.BatchCmd())

	// Results and bookkeeping
	rootCmd.AddCommand(cli.ReportCmd())
	rootCmd.AddCommand(cli.ManifestCmd())
	rootCmd.AddCommand(cli.ConfigCmd())

	if err := cli.Execute(rootCmd); err != nil {
		fmt.Fprintln(os.Stderr, err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
