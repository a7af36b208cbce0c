// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/ivpatents/internal/analysis"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Summarize university assignees of the fetched patents",
	Long: `Analyze loads the patent table written by fetch, reports how many
patents carry an original assignee and how many belong to a few tracked
entities, then keeps university assignees (excluding known non-US
institutions). The university subset is written to its own table, the
per-assignee counts are printed and exported as YAML, and the top
assignees are drawn as a bar chart.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("universities", "", "university table, relative to the data directory")
	analyzeCmd.Flags().String("chart", "", "chart file, relative to the plots directory; extension selects pdf, svg, eps or png")
	analyzeCmd.Flags().String("summary", "", "summary YAML, relative to the plots directory")
	analyzeCmd.Flags().Int("top-n", 0, "number of assignees in the chart (default 10)")
	bindFlags(analyzeCmd.Flags(), map[string]string{
		keyUniversities: "universities",
		keyChart:        "chart",
		keySummary:      "summary",
		keyTopN:         "top-n",
	})

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if _, err := analysis.Run(pipeline.Analysis, logger.With("stage", "analyze"), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	return nil
}
