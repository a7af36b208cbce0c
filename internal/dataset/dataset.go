// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset reads the input patent dataset and reads and writes the
// tab-separated patent tables derived from it.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Input column names.
const (
	ColReference = "Reference"
	ColTitle     = "Title"
	ColCountry   = "Country"
)

// CountryUS is the only country code the pipeline processes.
const CountryUS = "US"

// ErrMissingColumn is returned when a required column is absent from a header.
var ErrMissingColumn = errors.New("missing column")

// InputRow is one row of the input dataset. Columns other than Reference,
// Title and Country are ignored.
type InputRow struct {
	Reference string
	Title     string
	Country   string
}

// ReadInput parses a comma-separated dataset with a header row.
func ReadInput(r io.Reader) ([]InputRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("reading header: empty input")
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}
	idx, err := columnIndex(header, ColReference, ColTitle, ColCountry)
	if err != nil {
		return nil, err
	}

	var rows []InputRow
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading input line %d: %w", line, err)
		}
		rows = append(rows, InputRow{
			Reference: field(rec, idx[ColReference]),
			Title:     field(rec, idx[ColTitle]),
			Country:   field(rec, idx[ColCountry]),
		})
	}
	return rows, nil
}

// ReadInputFile opens path and parses it with ReadInput.
func ReadInputFile(path string) ([]InputRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input %s: %w", path, err)
	}
	defer f.Close()

	rows, err := ReadInput(f)
	if err != nil {
		return nil, fmt.Errorf("parsing input %s: %w", path, err)
	}
	return rows, nil
}

// USRows returns the rows whose Country is US, preserving input order.
func USRows(rows []InputRow) []InputRow {
	var out []InputRow
	for _, r := range rows {
		if r.Country == CountryUS {
			out = append(out, r)
		}
	}
	return out
}

// columnIndex maps each required column name to its position in header.
func columnIndex(header []string, required ...string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
	}
	return idx, nil
}

func field(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}
	return ""
}
