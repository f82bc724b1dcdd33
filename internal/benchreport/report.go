package benchreport

import (
	"encoding/json"
	"io"
	"os"
	"sort"

	"github.com/example/hiergen/internal/errors"
	"github.com/example/hiergen/internal/logging"
)

// Document is the subset of a google-benchmark JSON report that is read.
type Document struct {
	Benchmarks []Record `json:"benchmarks"`
}

// Record is one entry of Document.Benchmarks.
type Record struct {
	Name     string  `json:"name"`
	RunName  string  `json:"run_name"`
	RunType  string  `json:"run_type"`
	CPUTime  float64 `json:"cpu_time"`
	RealTime float64 `json:"real_time"`
	TimeUnit string  `json:"time_unit"`
}

const runTypeAggregate = "aggregate"

// Read decodes a report.
func Read(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode benchmark report")
	}
	return &doc, nil
}

// Load decodes the report at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open benchmark report %s", path)
	}
	defer f.Close()

	doc, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "in %s", path)
	}
	return doc, nil
}

// Summary holds cpu_time per cast kind and category.
type Summary struct {
	// TimeUnit is taken from the first benchmark.
	TimeUnit string
	// Categories are sorted.
	Categories []string
	// Kinds are in order of first appearance.
	Kinds []string
	// Skipped counts records whose run name could not be parsed.
	Skipped int

	values map[string]map[string]float64
}

// Value returns the cpu_time of kind in category.
func (s *Summary) Value(kind, category string) (float64, bool) {
	v, ok := s.values[kind][category]
	return v, ok
}

// Summarize groups cpu_time by kind and category. When a kind and category
// repeat, the last record wins. Aggregate rows (mean, median, stddev) are
// ignored.
func Summarize(doc *Document) (*Summary, error) {
	if len(doc.Benchmarks) == 0 {
		return nil, errors.WithHint(
			errors.New("benchmark report has no benchmarks"),
			"run the benchmark binary with --benchmark_format=json",
		)
	}

	s := &Summary{
		TimeUnit: doc.Benchmarks[0].TimeUnit,
		values:   make(map[string]map[string]float64),
	}
	categories := make(map[string]bool)

	for _, rec := range doc.Benchmarks {
		if rec.RunType == runTypeAggregate {
			continue
		}
		name, err := ParseRunName(rec.RunName)
		if err != nil {
			logging.Logger.Debugw("Skipping benchmark", "run_name", rec.RunName, "error", err)
			s.Skipped++
			continue
		}

		byCategory, ok := s.values[name.Kind]
		if !ok {
			byCategory = make(map[string]float64)
			s.values[name.Kind] = byCategory
			s.Kinds = append(s.Kinds, name.Kind)
		}
		byCategory[name.Category()] = rec.CPUTime
		categories[name.Category()] = true
	}

	for c := range categories {
		s.Categories = append(s.Categories, c)
	}
	sort.Strings(s.Categories)

	if len(s.Kinds) == 0 {
		return nil, errors.Newf("none of the %d benchmarks has a recognizable run name", len(doc.Benchmarks))
	}
	return s, nil
}
