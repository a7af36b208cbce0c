// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package acquire fetches Google Patents pages for a dataset of patent
// identifiers and writes the extracted metadata to a tab-separated table.
package acquire

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pdiddy/ivpatents/internal/dataset"
	"github.com/pdiddy/ivpatents/internal/extract"
	"github.com/pdiddy/ivpatents/internal/logging"
	"github.com/pdiddy/ivpatents/pkg/types"
)

// BatchResult holds the outcome of a batch fetch run.
type BatchResult struct {
	// AlreadyDone is set when the output table existed before the run and
	// nothing was fetched.
	AlreadyDone bool

	Written     int
	FetchFailed int
	// Skipped counts rows dropped because the assembled line was not valid UTF-8.
	Skipped int

	Elapsed time.Duration
}

// Total returns the number of input rows processed.
func (r BatchResult) Total() int {
	return r.Written + r.FetchFailed + r.Skipped
}

// HasFailures reports whether any row was dropped.
func (r BatchResult) HasFailures() bool {
	return r.FetchFailed > 0 || r.Skipped > 0
}

// Exists reports whether the output table at path is already present.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("checking %s: %w", path, err)
}

// ProcessBatch fetches every US patent listed in cfg.InputPath and writes
// one line per successfully fetched patent to cfg.OutputPath, in input order.
//
// If cfg.OutputPath already exists the run is a no-op: no request is issued
// and the file is left untouched. The table is assembled in a temp file and
// renamed into place only after the last row, so an aborted run never leaves
// a file that a later run would mistake for a complete one.
//
// Rows whose page request ends in a non-2xx status, and rows whose line is
// not valid UTF-8, are skipped and counted. Any other error aborts the batch.
func ProcessBatch(ctx context.Context, client *http.Client, cfg types.FetchConfig, log *logging.Logger, w io.Writer) (BatchResult, error) {
	var result BatchResult

	done, err := Exists(cfg.OutputPath)
	if err != nil {
		return result, err
	}
	if done {
		fmt.Fprintf(w, "output exists, skipping fetch: %s\n", cfg.OutputPath)
		result.AlreadyDone = true
		return result, nil
	}

	rows, err := dataset.ReadInputFile(cfg.InputPath)
	if err != nil {
		return result, err
	}
	rows = dataset.USRows(rows)
	log.Info("loaded input", "path", cfg.InputPath, "us_rows", len(rows))

	if err := os.MkdirAll(filepath.Dir(cfg.OutputPath), 0o755); err != nil {
		return result, fmt.Errorf("creating directory for %s: %w", cfg.OutputPath, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(cfg.OutputPath), ".fetch-*.tmp")
	if err != nil {
		return result, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	start := time.Now()
	loopErr := processRows(ctx, client, cfg, rows, tmp, log, w, &result)
	closeErr := tmp.Close()
	result.Elapsed = time.Since(start)

	if loopErr != nil {
		os.Remove(tmpPath)
		return result, loopErr
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return result, fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Rename(tmpPath, cfg.OutputPath); err != nil {
		os.Remove(tmpPath)
		return result, fmt.Errorf("renaming temp file: %w", err)
	}

	fmt.Fprintf(w, "patent parsing took %.2f minutes\n", result.Elapsed.Minutes())
	fmt.Fprintf(w, "Skipped total of %d lines\n", result.Skipped)
	fmt.Fprintf(w, "\nBatch summary: %d written, %d fetch failures, %d skipped (total: %d)\n",
		result.Written, result.FetchFailed, result.Skipped, result.Total())
	return result, nil
}

func processRows(ctx context.Context, client *http.Client, cfg types.FetchConfig, rows []dataset.InputRow, out io.Writer, log *logging.Logger, w io.Writer, result *BatchResult) error {
	if _, err := io.WriteString(out, dataset.Header()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintf(w, "fetching: %s\n", PageURL(row.Reference))
		page, err := FetchPage(ctx, client, row.Reference, cfg.HTTPConfig)
		if err != nil {
			if errors.Is(err, ErrHTTPStatus) {
				log.Warn("page fetch failed", "patent_id", row.Reference, "err", err)
				result.FetchFailed++
				continue
			}
			return fmt.Errorf("fetching %s: %w", row.Reference, err)
		}

		fields, err := extract.ParseBytes(page)
		if err != nil {
			return fmt.Errorf("extracting %s: %w", row.Reference, err)
		}

		line := dataset.FormatLine(fields.Patent(row.Reference, row.Title))
		if !utf8.ValidString(line) {
			fmt.Fprintf(w, "skipping: %s", line)
			log.Warn("line is not valid UTF-8", "patent_id", row.Reference)
			result.Skipped++
			continue
		}

		if _, err := io.WriteString(out, line); err != nil {
			return fmt.Errorf("writing %s: %w", row.Reference, err)
		}
		fmt.Fprintln(w, strings.TrimSpace(line))
		result.Written++
	}
	return nil
}
