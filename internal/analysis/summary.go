// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analysis

import (
	"sort"
	"strings"

	"github.com/pdiddy/ivpatents/pkg/types"
)

// Abbreviation rewrites Old to New in display names.
type Abbreviation struct {
	Old string
	New string
}

// Abbreviations shorten assignee names for display. They apply in order,
// so "New York University" becomes "NY Univ.".
var Abbreviations = []Abbreviation{
	{"New York", "NY"},
	{"Institute", "Inst."},
	{"California", "Cal."},
	{"Polytechnic", "Polytech."},
	{"University", "Univ."},
	{"Technology", "Tech."},
	{"Research Foundation of", ""},
	{"New Jersey", "NJ"},
}

// Abbreviate applies Abbreviations to name and trims the spaces a removed
// prefix leaves behind.
func Abbreviate(name string) string {
	for _, a := range Abbreviations {
		name = strings.ReplaceAll(name, a.Old, a.New)
	}
	return strings.TrimSpace(name)
}

// Summarize groups patents by original assignee and counts them. Rows are
// sorted by count, largest first; equal counts keep the order in which the
// assignee was first seen. Name carries the abbreviated display form.
func Summarize(patents []types.Patent) []types.AssigneeCount {
	index := make(map[string]int)
	var rows []types.AssigneeCount
	for _, p := range patents {
		i, ok := index[p.AssigneeOriginal]
		if !ok {
			i = len(rows)
			index[p.AssigneeOriginal] = i
			rows = append(rows, types.AssigneeCount{Assignee: p.AssigneeOriginal})
		}
		rows[i].Patents++
	}

	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].Patents > rows[b].Patents
	})
	for i := range rows {
		rows[i].Name = Abbreviate(rows[i].Assignee)
	}
	return rows
}

// Top returns the first n rows, or all rows when n <= 0 or n exceeds len(rows).
func Top(rows []types.AssigneeCount, n int) []types.AssigneeCount {
	if n <= 0 || n >= len(rows) {
		return rows
	}
	return rows[:n]
}
