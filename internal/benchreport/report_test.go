package benchreport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `{
  "context": {"date": "2026-01-01T00:00:00+00:00", "num_cpus": 8},
  "benchmarks": [
    {"name": "InheritanceFixture/deep_fromBase_dynamic_cast", "run_name": "InheritanceFixture/deep_fromBase_dynamic_cast", "run_type": "iteration", "cpu_time": 40.5, "real_time": 41.0, "time_unit": "ns"},
    {"name": "InheritanceFixture/deep_fromBase_myrtti", "run_name": "InheritanceFixture/deep_fromBase_myrtti", "run_type": "iteration", "cpu_time": 3.25, "real_time": 3.3, "time_unit": "ns"},
    {"name": "InheritanceFixture/wide_toBase_dynamic_cast", "run_name": "InheritanceFixture/wide_toBase_dynamic_cast", "run_type": "iteration", "cpu_time": 12, "real_time": 12, "time_unit": "ns"},
    {"name": "InheritanceFixture/deep_fromBase_dynamic_cast_mean", "run_name": "InheritanceFixture/deep_fromBase_dynamic_cast", "run_type": "aggregate", "aggregate_name": "mean", "cpu_time": 999, "real_time": 999, "time_unit": "ns"},
    {"name": "BM_Baseline", "run_name": "BM_Baseline", "run_type": "iteration", "cpu_time": 1, "real_time": 1, "time_unit": "ns"}
  ]
}`

func TestSummarize(t *testing.T) {
	doc, err := Read(strings.NewReader(sampleReport))
	require.NoError(t, err)
	require.Len(t, doc.Benchmarks, 5)

	s, err := Summarize(doc)
	require.NoError(t, err)

	assert.Equal(t, "ns", s.TimeUnit)
	assert.Equal(t, []string{"deep, fromBase", "wide, toBase"}, s.Categories)
	assert.Equal(t, []string{"dynamic_cast", "myrtti"}, s.Kinds)
	assert.Equal(t, 1, s.Skipped)

	v, ok := s.Value("dynamic_cast", "deep, fromBase")
	require.True(t, ok)
	assert.Equal(t, 40.5, v, "aggregate rows must not overwrite iterations")

	_, ok = s.Value("myrtti", "wide, toBase")
	assert.False(t, ok)
}

func TestSummarize_LastRecordWins(t *testing.T) {
	s, err := Summarize(&Document{Benchmarks: []Record{
		{RunName: "F/deep_fromBase_myrtti", CPUTime: 1, TimeUnit: "us"},
		{RunName: "F/deep_fromBase_myrtti", CPUTime: 2, TimeUnit: "us"},
	}})
	require.NoError(t, err)

	v, _ := s.Value("myrtti", "deep, fromBase")
	assert.Equal(t, 2.0, v)
	assert.Equal(t, "us", s.TimeUnit)
}

func TestSummarize_Errors(t *testing.T) {
	_, err := Summarize(&Document{})
	assert.ErrorContains(t, err, "no benchmarks")

	_, err = Summarize(&Document{Benchmarks: []Record{{RunName: "BM_Only", CPUTime: 1}}})
	assert.ErrorContains(t, err, "none of the 1 benchmarks")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleReport), 0644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, doc.Benchmarks, 5)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "failed to decode benchmark report")
}
