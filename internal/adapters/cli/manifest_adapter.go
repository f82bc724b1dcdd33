package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/hiergen/internal/errors"
	"github.com/example/hiergen/internal/ports/primary"
)

// ErrVerificationFailed is returned by Verify when any file drifted.
var ErrVerificationFailed = errors.New("generated files differ from the manifest")

// ManifestAdapter is a thin adapter that translates CLI operations to ManifestService calls.
type ManifestAdapter struct {
	service primary.ManifestService
	out     io.Writer
}

// NewManifestAdapter creates a new ManifestAdapter with the given service.
func NewManifestAdapter(service primary.ManifestService, out io.Writer) *ManifestAdapter {
	return &ManifestAdapter{
		service: service,
		out:     out,
	}
}

// List lists recorded runs.
func (a *ManifestAdapter) List(ctx context.Context, nameBase string, limit int) ([]*primary.Run, error) {
	runs, err := a.service.ListRuns(ctx, primary.ListRunsRequest{
		NameBase: nameBase,
		Limit:    limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list runs")
	}

	if len(runs) == 0 {
		fmt.Fprintln(a.out, "No runs recorded.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Enable the manifest and generate a hierarchy:")
		fmt.Fprintln(a.out, "  hiergen generate --name-base Foo --depth 3 --output gen --record")
		return runs, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME_BASE\tDEPTH\tFILES\tOUTPUT\tCREATED")
	fmt.Fprintln(w, "--\t---------\t-----\t-----\t------\t-------")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\n",
			run.ID,
			run.NameBase,
			run.Depth,
			run.FileCount,
			run.Output,
			run.CreatedAt,
		)
	}

	w.Flush()
	return runs, nil
}

// Verify compares the files of a run with the disk and prints one line per
// file. It returns ErrVerificationFailed when anything drifted.
func (a *ManifestAdapter) Verify(ctx context.Context, runID string) (*primary.Verification, error) {
	v, err := a.service.VerifyRun(ctx, runID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify run")
	}

	fmt.Fprintf(a.out, "Run %s: %s depth %d -> %s\n", v.Run.ID, v.Run.NameBase, v.Run.Depth, v.Run.Output)
	drifted := 0
	for _, f := range v.Files {
		if f.State != primary.FileOK {
			drifted++
		}
		fmt.Fprintf(a.out, "  %s %s\n", stateLabel(f.State), f.Path)
	}

	if drifted > 0 {
		return v, errors.Wrapf(ErrVerificationFailed, "%d of %d files", drifted, len(v.Files))
	}
	fmt.Fprintf(a.out, "%s all %d files match\n", color.New(color.FgGreen).Sprint("✓"), len(v.Files))
	return v, nil
}

func stateLabel(s primary.FileState) string {
	label := fmt.Sprintf("%-8s", s)
	switch s {
	case primary.FileOK:
		return color.New(color.FgGreen).Sprint(label)
	case primary.FileModified:
		return color.New(color.FgYellow).Sprint(label)
	default:
		return color.New(color.FgRed).Sprint(label)
	}
}
