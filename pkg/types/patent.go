// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Patent holds the metadata extracted for one patent identifier.
// Records are produced one per accepted input row and never modified after
// they are written to the output table.
type Patent struct {
	// ID is the patent identifier as given in the input dataset (e.g. "US7654321B2").
	ID string `json:"patent_id" yaml:"patent_id"`

	// Title is the title carried over from the input dataset.
	Title string `json:"patent_title" yaml:"patent_title"`

	// AssigneeOriginal is the original assignee; empty when the page lists none.
	AssigneeOriginal string `json:"assignee_original" yaml:"assignee_original"`

	// Inventor lists inventors joined by commas.
	Inventor string `json:"inventor,omitempty" yaml:"inventor,omitempty"`

	PriorityDate    string `json:"priority_date,omitempty" yaml:"priority_date,omitempty"`
	FilingDate      string `json:"filing_date" yaml:"filing_date"`
	PublicationDate string `json:"publication_date" yaml:"publication_date"`
	GrantDate       string `json:"grant_date" yaml:"grant_date"`
}

// HasAssignee reports whether an original assignee was recorded.
func (p Patent) HasAssignee() bool {
	return p.AssigneeOriginal != ""
}

// AssigneeCount is one row of the assignee summary table.
type AssigneeCount struct {
	// Name is the display name after abbreviations are applied.
	Name string `json:"name" yaml:"name"`

	// Assignee is the assignee name as recorded on the patent pages.
	Assignee string `json:"assignee" yaml:"assignee"`

	// Patents is the number of patents held by the assignee.
	Patents int `json:"num_patents" yaml:"num_patents"`
}
