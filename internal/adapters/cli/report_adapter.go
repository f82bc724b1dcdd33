package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/pterm/pterm"

	"github.com/example/hiergen/internal/benchreport"
	"github.com/example/hiergen/internal/errors"
)

// ReportAdapter renders benchmark summaries for the terminal.
type ReportAdapter struct {
	out io.Writer
}

// NewReportAdapter creates a new ReportAdapter.
func NewReportAdapter(out io.Writer) *ReportAdapter {
	return &ReportAdapter{out: out}
}

// Report loads the benchmark JSON at path and prints a bar chart and a table
// of cpu_time per category and cast kind.
func (a *ReportAdapter) Report(path string) (*benchreport.Summary, error) {
	doc, err := benchreport.Load(path)
	if err != nil {
		return nil, err
	}
	s, err := benchreport.Summarize(doc)
	if err != nil {
		return nil, err
	}

	if err := a.render(s); err != nil {
		return nil, err
	}
	return s, nil
}

// barResolution is the smallest length the longest bar is scaled to, so
// sub-unit timings keep distinct, non-zero bars.
const barResolution = 1000

// barScale returns the power of ten that lifts longest to at least barResolution.
func barScale(longest float64) float64 {
	scale := 1.0
	for longest > 0 && longest*scale < barResolution {
		scale *= 10
	}
	return scale
}

type barValue struct {
	label string
	value float64
}

func (a *ReportAdapter) render(s *benchreport.Summary) error {
	var values []barValue
	longest := 0.0
	table := pterm.TableData{append([]string{"category"}, s.Kinds...)}

	for _, category := range s.Categories {
		row := []string{category}
		for _, kind := range s.Kinds {
			v, ok := s.Value(kind, category)
			if !ok {
				row = append(row, "-")
				continue
			}
			row = append(row, fmt.Sprintf("%.2f", v))
			values = append(values, barValue{
				label: fmt.Sprintf("%s %s (%.2f)", category, kind, v),
				value: v,
			})
			longest = math.Max(longest, v)
		}
		table = append(table, row)
	}

	// Bar lengths are relative; the real value is part of the label.
	scale := barScale(longest)
	bars := make(pterm.Bars, len(values))
	for i, bv := range values {
		bars[i] = pterm.Bar{
			Label: bv.label,
			Value: int(math.Round(bv.value * scale)),
		}
	}

	chart, err := pterm.DefaultBarChart.WithBars(bars).WithHorizontal().Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render chart")
	}
	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(table).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render table")
	}

	fmt.Fprintf(a.out, "cpu_time (%s)\n\n", s.TimeUnit)
	fmt.Fprintln(a.out, chart)
	fmt.Fprintln(a.out, rendered)
	if s.Skipped > 0 {
		fmt.Fprintf(a.out, "%d benchmarks skipped: run name not Fixture/<shape>_<direction>_<kind>\n", s.Skipped)
	}
	return nil
}
