// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch patent metadata, then analyze university assignees",
	Long: `Run executes the fetch stage followed by the analyze stage. When the
patent table already exists, fetch is skipped and only the analysis runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runFetch(cmd, args); err != nil {
			return err
		}
		return runAnalyze(cmd, args)
	},
}

func init() {
	runCmd.Flags().AddFlagSet(fetchCmd.Flags())
	runCmd.Flags().AddFlagSet(analyzeCmd.Flags())

	rootCmd.AddCommand(runCmd)
}
