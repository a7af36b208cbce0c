// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with page requests.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// Layout holds the resolved directory layout of a project.
type Layout struct {
	// RootDir is the project root; DataDir and PlotsDir default to children of it.
	RootDir string `json:"root_dir" yaml:"root_dir"`

	// DataDir holds the input dataset and every derived table.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// PlotsDir holds charts and the summary export.
	PlotsDir string `json:"plots_dir" yaml:"plots_dir"`
}

// FetchConfig holds settings for the fetch stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// InputPath is the comma-separated dataset with Reference, Title and Country columns.
	InputPath string `json:"input" yaml:"input"`

	// OutputPath is the tab-separated patent table. Once it exists the fetch
	// stage treats it as complete.
	OutputPath string `json:"output" yaml:"output"`
}

// AnalysisConfig holds settings for the analysis stage.
type AnalysisConfig struct {
	// TablePath is the patent table produced by the fetch stage.
	TablePath string `json:"table" yaml:"table"`

	// UniversitiesPath receives the university subset of the table.
	UniversitiesPath string `json:"universities" yaml:"universities"`

	// ChartPath is the bar chart file; its extension selects the format.
	ChartPath string `json:"chart" yaml:"chart"`

	// SummaryPath receives the full summary table as YAML.
	SummaryPath string `json:"summary" yaml:"summary"`

	// TopN is the number of assignees drawn in the chart (default 10).
	TopN int `json:"top_n" yaml:"top_n"`
}

// IndexConfig holds settings for the SQLite patent index.
type IndexConfig struct {
	// Path is the SQLite database file.
	Path string `json:"path" yaml:"path"`

	// TablePath is the patent table loaded into the index.
	TablePath string `json:"table" yaml:"table"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level"`

	// File, when set, receives a copy of every log record with rotation.
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// PipelineConfig groups all stage configurations for a run.
type PipelineConfig struct {
	Layout   Layout         `json:"layout" yaml:"layout"`
	Fetch    FetchConfig    `json:"fetch" yaml:"fetch"`
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis"`
	Index    IndexConfig    `json:"index" yaml:"index"`
	Log      LogConfig      `json:"log" yaml:"log"`
}
