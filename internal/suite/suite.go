// Package suite loads batch generation suites written in HCL.
//
// A suite file holds one hierarchy block per request:
//
//	output = "gen"
//
//	hierarchy "shallow" {
//	  name_base = "Foo"
//	  depth     = 3
//	}
//
//	hierarchy "deep" {
//	  name_base = "Bar"
//	  depth     = 50
//	  output    = "gen/deep"
//	}
//
// A block without output uses the top-level output. Relative outputs are
// resolved against the directory holding the suite file.
package suite

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/example/hiergen/internal/errors"
	"github.com/example/hiergen/internal/logging"
	"github.com/example/hiergen/internal/models"
)

// Suite is a decoded suite file.
type Suite struct {
	Path    string
	Entries []Entry
}

// Entry is one labelled hierarchy block.
type Entry struct {
	Label   string
	Request models.GenerationRequest
}

// Requests returns the requests of all entries in file order.
func (s *Suite) Requests() []models.GenerationRequest {
	reqs := make([]models.GenerationRequest, len(s.Entries))
	for i, e := range s.Entries {
		reqs[i] = e.Request
	}
	return reqs
}

// suiteFile is the top-level structure of a suite file for decoding.
type suiteFile struct {
	Output      *string           `hcl:"output,optional"`
	Hierarchies []*hierarchyBlock `hcl:"hierarchy,block"`
}

type hierarchyBlock struct {
	Label    string  `hcl:",label"`
	NameBase string  `hcl:"name_base"`
	Depth    int     `hcl:"depth"`
	Output   *string `hcl:"output,optional"`
}

// Load reads and decodes the suite file at path.
func Load(path string) (*Suite, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read suite %s", path)
	}
	return Parse(src, path)
}

// Parse decodes suite source. filename is used for diagnostics and as the
// base for relative outputs.
func Parse(src []byte, filename string) (*Suite, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to parse suite %s", filename)
	}

	var root suiteFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to decode suite %s", filename)
	}

	if len(root.Hierarchies) == 0 {
		return nil, errors.WithHint(
			errors.Newf("suite %s has no hierarchy blocks", filename),
			`add at least one hierarchy "<label>" { name_base = ..., depth = ... } block`,
		)
	}

	baseDir := filepath.Dir(filename)
	defaultOutput := ""
	if root.Output != nil {
		defaultOutput = *root.Output
	}

	s := &Suite{Path: filename}
	seen := make(map[string]bool, len(root.Hierarchies))
	for _, h := range root.Hierarchies {
		if seen[h.Label] {
			return nil, errors.Newf("suite %s: duplicate hierarchy label %q", filename, h.Label)
		}
		seen[h.Label] = true

		output := defaultOutput
		if h.Output != nil {
			output = *h.Output
		}
		if output == "" {
			return nil, errors.WithHint(
				errors.Newf("suite %s: hierarchy %q has no output", filename, h.Label),
				"set output in the block or at the top of the suite",
			)
		}

		s.Entries = append(s.Entries, Entry{
			Label: h.Label,
			Request: models.GenerationRequest{
				NameBase: h.NameBase,
				Depth:    h.Depth,
				Output:   resolve(baseDir, output),
			},
		})
	}

	logging.Logger.Debugw("Loaded suite", "path", filename, "entries", len(s.Entries))
	return s, nil
}

func resolve(baseDir, output string) string {
	if filepath.IsAbs(output) {
		return filepath.Clean(output)
	}
	return filepath.Join(baseDir, output)
}
