// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/ivpatents/pkg/types"
)

// Summary is the YAML export of one analysis run.
type Summary struct {
	TotalPatents      int                   `yaml:"total_patents"`
	WithAssignee      int                   `yaml:"with_assignee"`
	UniversityPatents int                   `yaml:"university_patents"`
	Assignees         []types.AssigneeCount `yaml:"assignees"`
}

// WriteSummaryYAML writes s to path.
func WriteSummaryYAML(s Summary, path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadSummaryYAML reads a summary written by WriteSummaryYAML.
func ReadSummaryYAML(path string) (Summary, error) {
	var s Summary
	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing summary %s: %w", path, err)
	}
	return s, nil
}
