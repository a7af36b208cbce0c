// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/ivpatents/internal/dataset"
	"github.com/pdiddy/ivpatents/internal/report"
	"github.com/pdiddy/ivpatents/internal/store"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Manage the SQLite index of fetched patents (load, top, find)",
	Long: `Index keeps the patent table in a local SQLite database so assignee
counts can be queried without re-reading the table.`,
}

var indexLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the patent table into the index, replacing its contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(pipeline.Index.Path)
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := s.LoadFile(cmd.Context(), pipeline.Index.TablePath)
		if err != nil {
			return err
		}
		c, err := s.Counts(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "indexed %d patents (%d with assignee, %d university) into %s\n",
			n, c.WithAssignee, c.University, pipeline.Index.Path)
		return nil
	},
}

var indexTopCmd = &cobra.Command{
	Use:   "top",
	Short: "List the assignees with the most patents",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		all, _ := cmd.Flags().GetBool("all")
		asJSON, _ := cmd.Flags().GetBool("json")

		s, err := store.Open(pipeline.Index.Path)
		if err != nil {
			return err
		}
		defer s.Close()

		rows, err := s.TopAssignees(cmd.Context(), limit, !all)
		if err != nil {
			return err
		}
		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rows)
		}
		fmt.Fprintln(cmd.OutOrStdout(), report.SummaryTable(rows))
		return nil
	},
}

var indexFindCmd = &cobra.Command{
	Use:   "find [assignee]",
	Short: "List indexed patents whose assignee contains the given text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(pipeline.Index.Path)
		if err != nil {
			return err
		}
		defer s.Close()

		patents, err := s.PatentsByAssignee(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return dataset.WriteTable(cmd.OutOrStdout(), patents)
	},
}

func init() {
	indexCmd.PersistentFlags().String("index", "", "SQLite index, relative to the data directory")
	bindFlags(indexCmd.PersistentFlags(), map[string]string{keyIndex: "index"})

	indexTopCmd.Flags().Int("limit", defaultTopN, "maximum number of assignees (0 for all)")
	indexTopCmd.Flags().Bool("all", false, "count every assignee, not only universities")
	indexTopCmd.Flags().Bool("json", false, "output results as JSON")

	indexCmd.AddCommand(indexLoadCmd, indexTopCmd, indexFindCmd)
	rootCmd.AddCommand(indexCmd)
}
