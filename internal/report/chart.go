// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders the assignee summary: a bar chart file, a
// terminal table, and a YAML export.
package report

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/pdiddy/ivpatents/pkg/types"
)

// Chart geometry and labels.
const (
	chartWidth  = 5.5 * vg.Inch
	chartHeight = 3.5 * vg.Inch
	barWidth    = 14 // points

	labelRotationDeg = 55
	maxLabelWidth    = 36 // terminal cells

	xAxisLabel = "Original patent assignee"
	yAxisLabel = "Number of IV patents"
)

// ErrNoData is returned when there is nothing to chart.
var ErrNoData = errors.New("no assignees to chart")

// chartFormats are the file extensions gonum/plot can write.
var chartFormats = map[string]bool{
	".pdf": true, ".svg": true, ".eps": true,
	".png": true, ".jpg": true, ".jpeg": true, ".tif": true, ".tiff": true,
}

// Label shortens a display name to fit under a chart bar.
func Label(name string) string {
	return runewidth.Truncate(name, maxLabelWidth, "...")
}

// NewBarChart builds the assignee bar chart for rows in the given order.
func NewBarChart(rows []types.AssigneeCount) (*plot.Plot, error) {
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	values := make(plotter.Values, len(rows))
	labels := make([]string, len(rows))
	for i, r := range rows {
		values[i] = float64(r.Patents)
		labels[i] = Label(r.Name)
	}

	p := plot.New()
	p.X.Label.Text = xAxisLabel
	p.Y.Label.Text = yAxisLabel
	p.Y.Min = 0

	bars, err := plotter.NewBarChart(values, vg.Points(barWidth))
	if err != nil {
		return nil, fmt.Errorf("building bar chart: %w", err)
	}
	bars.Color = color.Black
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(labels...)

	p.X.Tick.Label.Rotation = labelRotationDeg * math.Pi / 180
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter

	return p, nil
}

// SaveBarChart renders rows as a bar chart to path. The extension of path
// selects the output format (pdf, svg, eps, png, jpg, tif).
func SaveBarChart(rows []types.AssigneeCount, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !chartFormats[ext] {
		return fmt.Errorf("unsupported chart format %q", ext)
	}

	p, err := NewBarChart(rows)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("saving chart %s: %w", path, err)
	}
	return nil
}
