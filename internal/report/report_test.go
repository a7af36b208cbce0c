// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/ivpatents/pkg/types"
)

func sampleRows() []types.AssigneeCount {
	return []types.AssigneeCount{
		{Name: "Stanford Univ.", Assignee: "Stanford University", Patents: 12},
		{Name: "NY Univ.", Assignee: "New York University", Patents: 7},
		{Name: "Cal. Inst. of Tech.", Assignee: "California Institute of Technology", Patents: 3},
	}
}

func TestLabelTruncatesLongNames(t *testing.T) {
	assert.Equal(t, "Rice Univ.", Label("Rice Univ."))

	long := strings.Repeat("Board of Regents ", 5)
	got := Label(long)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len(got), maxLabelWidth)
}

func TestNewBarChartEmpty(t *testing.T) {
	_, err := NewBarChart(nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestNewBarChartLabels(t *testing.T) {
	p, err := NewBarChart(sampleRows())
	require.NoError(t, err)
	assert.Equal(t, yAxisLabel, p.Y.Label.Text)
	assert.Equal(t, xAxisLabel, p.X.Label.Text)
}

func TestSaveBarChartFormats(t *testing.T) {
	for _, ext := range []string{".svg", ".pdf", ".png"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "plots", "univ"+ext)
			require.NoError(t, SaveBarChart(sampleRows(), path))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Greater(t, info.Size(), int64(0))
		})
	}
}

func TestSaveBarChartSVGContainsLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "univ.svg")
	require.NoError(t, SaveBarChart(sampleRows(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Contains(t, string(data), "Number of IV patents")
}

func TestSaveBarChartUnsupportedFormat(t *testing.T) {
	err := SaveBarChart(sampleRows(), filepath.Join(t.TempDir(), "univ.xyz"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}

func TestPrintSummaryShowsHead(t *testing.T) {
	rows := append(sampleRows(),
		types.AssigneeCount{Name: "Rice Univ.", Patents: 2},
		types.AssigneeCount{Name: "Duke Univ.", Patents: 2},
		types.AssigneeCount{Name: "Yale Univ.", Patents: 1},
	)
	var buf bytes.Buffer
	PrintSummary(&buf, rows)

	out := buf.String()
	assert.Contains(t, out, "University")
	assert.Contains(t, out, "num_patents")
	assert.Contains(t, out, "Stanford Univ.")
	assert.Contains(t, out, "12")
	assert.Contains(t, out, "Duke Univ.")
	assert.NotContains(t, out, "Yale Univ.")
	assert.Contains(t, out, " -- ")
}

func TestSummaryYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "summary.yaml")
	want := Summary{
		TotalPatents:      40,
		WithAssignee:      30,
		UniversityPatents: 22,
		Assignees:         sampleRows(),
	}
	require.NoError(t, WriteSummaryYAML(want, path))

	got, err := ReadSummaryYAML(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "num_patents: 12")
}
