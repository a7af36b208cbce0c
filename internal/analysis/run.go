// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analysis

import (
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/ivpatents/internal/dataset"
	"github.com/pdiddy/ivpatents/internal/logging"
	"github.com/pdiddy/ivpatents/internal/report"
	"github.com/pdiddy/ivpatents/pkg/types"
)

// defaultTopN is the number of assignees charted when none is configured.
const defaultTopN = 10

// Run loads the patent table, reports assignee coverage and tracked entity
// counts, writes the university subset, and renders the summary chart and
// YAML export. Progress lines go to w.
func Run(cfg types.AnalysisConfig, log *logging.Logger, w io.Writer) (report.Summary, error) {
	var summary report.Summary

	patents, err := dataset.ReadTableFile(cfg.TablePath)
	if err != nil {
		return summary, err
	}
	summary.TotalPatents = len(patents)

	patents = WithAssignee(patents)
	summary.WithAssignee = len(patents)
	fmt.Fprintf(w, "%d/%d patents have original assignee\n", summary.WithAssignee, summary.TotalPatents)

	fmt.Fprintf(w, "getting statistics for %d patents\n", len(patents))
	for _, c := range EntityCounts(patents, TrackedEntities) {
		fmt.Fprintf(w, "%d from %s\n", c.Patents, c.Name)
	}

	univ := UniversityPatents(patents)
	summary.UniversityPatents = len(univ)
	fmt.Fprintf(w, "total of %d university patents\n", len(univ))

	if cfg.UniversitiesPath != "" {
		fmt.Fprintf(w, "writing university patents to: %s\n", cfg.UniversitiesPath)
		if err := dataset.WriteTableFile(cfg.UniversitiesPath, univ); err != nil {
			return summary, fmt.Errorf("writing university patents: %w", err)
		}
	}

	summary.Assignees = Summarize(univ)
	report.PrintSummary(w, summary.Assignees)

	if cfg.SummaryPath != "" {
		if err := report.WriteSummaryYAML(summary, cfg.SummaryPath); err != nil {
			return summary, fmt.Errorf("writing summary: %w", err)
		}
		log.Info("wrote summary", "path", cfg.SummaryPath, "assignees", len(summary.Assignees))
	}

	if cfg.ChartPath != "" {
		topN := cfg.TopN
		if topN <= 0 {
			topN = defaultTopN
		}
		err := report.SaveBarChart(Top(summary.Assignees, topN), cfg.ChartPath)
		switch {
		case errors.Is(err, report.ErrNoData):
			log.Warn("no university patents, chart not written", "path", cfg.ChartPath)
		case err != nil:
			return summary, err
		default:
			fmt.Fprintf(w, "wrote chart: %s\n", cfg.ChartPath)
		}
	}

	return summary, nil
}
