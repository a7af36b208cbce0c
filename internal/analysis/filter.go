// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analysis filters the patent table down to university assignees
// and aggregates it into per-assignee counts.
package analysis

import (
	"regexp"
	"strings"

	"github.com/pdiddy/ivpatents/pkg/types"
)

// ExcludedInstitutions lists assignee substrings of non-US institutions
// that hold US patents. A match removes the patent from the university
// subset even when the name also matches UniversityPattern.
var ExcludedInstitutions = []string{
	"Tel Aviv",
	"Hebrew University",
	"Singapore",
	"Hong Kong",
	"Pohang University",
	"Tohoku University",
	"Hiroshima University",
}

// UniversityPattern matches assignee names that indicate a university.
var UniversityPattern = regexp.MustCompile(
	`University|California Institute of Technology|New Jersey Institute of Technology`)

// TrackedEntities are the assignees whose patent counts are reported as
// diagnostics before the university analysis.
var TrackedEntities = []string{
	"Linus Torvalds",
	"US Secretary of Navy",
	"Elwha LLC",
	"Raytheon",
	"Lockheed Martin",
}

// WithAssignee returns the patents that have an original assignee.
func WithAssignee(patents []types.Patent) []types.Patent {
	var out []types.Patent
	for _, p := range patents {
		if p.HasAssignee() {
			out = append(out, p)
		}
	}
	return out
}

// IsExcluded reports whether assignee names an excluded institution.
func IsExcluded(assignee string) bool {
	for _, name := range ExcludedInstitutions {
		if strings.Contains(assignee, name) {
			return true
		}
	}
	return false
}

// IsUniversity reports whether assignee is a university outside the
// exclusion list.
func IsUniversity(assignee string) bool {
	if assignee == "" || IsExcluded(assignee) {
		return false
	}
	return UniversityPattern.MatchString(assignee)
}

// UniversityPatents returns the university-assigned patents, in table order.
func UniversityPatents(patents []types.Patent) []types.Patent {
	var out []types.Patent
	for _, p := range patents {
		if IsUniversity(p.AssigneeOriginal) {
			out = append(out, p)
		}
	}
	return out
}

// EntityCount is the number of patents whose assignee contains Name.
type EntityCount struct {
	Name    string
	Patents int
}

// EntityCounts counts, for each name, the patents whose assignee contains it.
// Results follow the order of names.
func EntityCounts(patents []types.Patent, names []string) []EntityCount {
	counts := make([]EntityCount, len(names))
	for i, name := range names {
		counts[i].Name = name
		for _, p := range patents {
			if strings.Contains(p.AssigneeOriginal, name) {
				counts[i].Patents++
			}
		}
	}
	return counts
}
