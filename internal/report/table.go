// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pdiddy/ivpatents/pkg/types"
)

// headRows is how many summary rows PrintSummary shows.
const headRows = 5

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	countStyle  = cellStyle.Align(lipgloss.Right)
)

// SummaryTable renders rows as a bordered two-column table.
func SummaryTable(rows []types.AssigneeCount) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("University", "num_patents").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return countStyle
			default:
				return cellStyle
			}
		})
	for _, r := range rows {
		t.Row(r.Name, strconv.Itoa(r.Patents))
	}
	return t.Render()
}

// PrintSummary writes the first rows of the summary to w, followed by a
// separator line.
func PrintSummary(w io.Writer, rows []types.AssigneeCount) {
	if len(rows) > headRows {
		rows = rows[:headRows]
	}
	fmt.Fprintln(w, SummaryTable(rows))
	fmt.Fprintln(w, " -- ")
}
