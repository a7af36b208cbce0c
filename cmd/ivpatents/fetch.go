// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/pdiddy/ivpatents/internal/acquire"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch Google Patents metadata for every US patent in the dataset",
	Long: `Fetch reads the input dataset, keeps rows whose Country is US, and
requests each patent's Google Patents page. The original assignee, filing,
publication and grant dates are written to the patent table, one line per
patent in input order.

Pages that answer with an HTTP error status are skipped, as are rows that
cannot be written as UTF-8. Any other failure stops the run without leaving
a table behind. If the table already exists nothing is fetched.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	fetchCmd.Flags().String("user-agent", "", "User-Agent header for page requests")
	bindFlags(fetchCmd.Flags(), map[string]string{
		keyTimeout:   "timeout",
		keyUserAgent: "user-agent",
	})

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := pipeline.Fetch
	client := &http.Client{
		Timeout: cfg.Timeout,
	}

	result, err := acquire.ProcessBatch(cmd.Context(), client, cfg, logger.With("stage", "fetch"), cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	if result.HasFailures() {
		logger.Warn("rows dropped", "fetch_failed", result.FetchFailed, "skipped", result.Skipped)
	}
	return nil
}
