// Package cli contains adapters that translate CLI operations into service
// calls and render the results.
package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ddddddO/gtree"
	"github.com/fatih/color"

	"github.com/example/hiergen/internal/errors"
	"github.com/example/hiergen/internal/models"
	"github.com/example/hiergen/internal/ports/primary"
)

// HierarchyAdapter is a thin adapter that translates CLI operations to HierarchyService calls.
type HierarchyAdapter struct {
	service primary.HierarchyService
	out     io.Writer
}

// NewHierarchyAdapter creates a new HierarchyAdapter with the given service.
func NewHierarchyAdapter(service primary.HierarchyService, out io.Writer) *HierarchyAdapter {
	return &HierarchyAdapter{
		service: service,
		out:     out,
	}
}

// Generate writes one hierarchy and lists the files written.
func (a *HierarchyAdapter) Generate(ctx context.Context, req models.GenerationRequest) (*primary.GenerateResponse, error) {
	resp, err := a.service.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	a.printResponse(resp)
	return resp, nil
}

// GenerateBatch writes every request of a suite and lists the files per entry.
// labels are printed alongside each entry and must match reqs by index.
func (a *HierarchyAdapter) GenerateBatch(ctx context.Context, labels []string, reqs []models.GenerationRequest) ([]*primary.GenerateResponse, error) {
	resps, err := a.service.GenerateBatch(ctx, reqs)
	if err != nil {
		return nil, err
	}

	total := 0
	for i, resp := range resps {
		fmt.Fprintf(a.out, "[%s]\n", labels[i])
		a.printResponse(resp)
		total += len(resp.Files)
	}
	fmt.Fprintf(a.out, "%s %d hierarchies, %d files\n", color.New(color.FgGreen).Sprint("✓"), len(resps), total)
	return resps, nil
}

func (a *HierarchyAdapter) printResponse(resp *primary.GenerateResponse) {
	check := color.New(color.FgGreen).Sprint("✓")
	fmt.Fprintf(a.out, "%s %s depth %d -> %s\n", check, resp.Request.NameBase, resp.Request.Depth, resp.Request.Output)
	for _, f := range resp.Files {
		fmt.Fprintf(a.out, "  %-7s %s\n", f.Model, f.Path)
	}
	if resp.RunID != "" {
		fmt.Fprintf(a.out, "  run: %s\n", resp.RunID)
	}
}

// Plan prints the files a request would write as a tree rooted at the output
// directory. Nothing is written.
func (a *HierarchyAdapter) Plan(ctx context.Context, req models.GenerationRequest) (*primary.HierarchyPlan, error) {
	plan, err := a.service.PlanHierarchy(ctx, req)
	if err != nil {
		return nil, err
	}

	root := gtree.NewRoot(filepath.Clean(req.Output))
	modelNodes := make(map[string]*gtree.Node)
	for _, f := range plan.Files {
		modelNode, ok := modelNodes[f.Model]
		if !ok {
			modelNode = root.Add(f.Model)
			modelNodes[f.Model] = modelNode
		}

		fileNode := modelNode.Add(fmt.Sprintf("%s %s", filepath.Base(f.Path), statusLabel(f.Status)))
		for _, class := range f.Classes {
			fileNode.Add(class)
		}
		if f.Include != "" {
			fileNode.Add("#include " + f.Include)
		}
	}

	if err := gtree.OutputFromRoot(a.out, root); err != nil {
		return nil, errors.Wrap(err, "failed to render plan")
	}

	creates, overwrites := 0, 0
	for _, f := range plan.Files {
		if f.Status == primary.OpOverwrite {
			overwrites++
		} else {
			creates++
		}
	}
	fmt.Fprintf(a.out, "\n%d to create, %d to overwrite\n", creates, overwrites)

	return plan, nil
}

func statusLabel(s primary.OpStatus) string {
	label := "[" + strings.ToLower(string(s)) + "]"
	if s == primary.OpOverwrite {
		return color.New(color.FgYellow).Sprint(label)
	}
	return color.New(color.FgGreen).Sprint(label)
}
