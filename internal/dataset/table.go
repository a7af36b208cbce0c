// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/ivpatents/pkg/types"
)

// Columns is the header of every patent table, in file order.
var Columns = []string{
	"patent_id",
	"patent_title",
	"assigneeOriginal",
	"filingDate",
	"publicationDate",
	"grantDate",
}

// cellReplacer keeps a value on one line within one cell.
var cellReplacer = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

// Header returns the table header line, newline terminated.
func Header() string {
	return strings.Join(Columns, "\t") + "\n"
}

// Values returns p's cells in Columns order.
func Values(p types.Patent) []string {
	return []string{
		p.ID,
		p.Title,
		p.AssigneeOriginal,
		p.FilingDate,
		p.PublicationDate,
		p.GrantDate,
	}
}

// FormatLine renders p as one newline-terminated table line.
func FormatLine(p types.Patent) string {
	vals := Values(p)
	for i, v := range vals {
		vals[i] = cellReplacer.Replace(v)
	}
	return strings.Join(vals, "\t") + "\n"
}

// ReadTable parses a patent table written by the fetch stage. Columns are
// located by header name; a row with a different number of cells than the
// header is an error.
func ReadTable(r io.Reader) ([]types.Patent, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("reading header: %w", err)
		}
		return nil, fmt.Errorf("reading header: empty table")
	}
	header := strings.Split(strings.TrimRight(sc.Text(), "\r"), "\t")
	idx, err := columnIndex(header, Columns...)
	if err != nil {
		return nil, err
	}

	var patents []types.Patent
	for line := 2; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			continue
		}
		cells := strings.Split(text, "\t")
		if len(cells) != len(header) {
			return nil, fmt.Errorf("table line %d: expected %d fields, saw %d", line, len(header), len(cells))
		}
		patents = append(patents, types.Patent{
			ID:               cells[idx["patent_id"]],
			Title:            cells[idx["patent_title"]],
			AssigneeOriginal: strings.TrimSpace(cells[idx["assigneeOriginal"]]),
			FilingDate:       cells[idx["filingDate"]],
			PublicationDate:  cells[idx["publicationDate"]],
			GrantDate:        cells[idx["grantDate"]],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}
	return patents, nil
}

// ReadTableFile opens path and parses it with ReadTable.
func ReadTableFile(path string) ([]types.Patent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening table %s: %w", path, err)
	}
	defer f.Close()

	patents, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("parsing table %s: %w", path, err)
	}
	return patents, nil
}

// WriteTable writes patents as a tab-separated table with a header row.
// Cells containing quotes are quoted, so the result is readable by any
// TSV-aware tool.
func WriteTable(w io.Writer, patents []types.Patent) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, p := range patents {
		if err := cw.Write(Values(p)); err != nil {
			return fmt.Errorf("writing %s: %w", p.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTableFile writes patents to path through a temp file renamed into place.
func WriteTableFile(path string, patents []types.Patent) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".table-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	writeErr := WriteTable(tmp, patents)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return writeErr
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
