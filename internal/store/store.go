// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store keeps the fetched patent table in a SQLite index so the
// assignee counts can be queried without re-reading the table.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/ivpatents/internal/analysis"
	"github.com/pdiddy/ivpatents/internal/dataset"
	"github.com/pdiddy/ivpatents/pkg/types"
)

// Store manages the patent index database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database at path and creates the schema
// if it does not exist.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS patents (
			seq INTEGER PRIMARY KEY,
			patent_id TEXT NOT NULL,
			title TEXT,
			assignee TEXT,
			filing_date TEXT,
			publication_date TEXT,
			grant_date TEXT,
			university INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_patents_assignee ON patents(assignee)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Load replaces the index contents with patents, in order, in a single
// transaction. It returns the number of rows stored.
func (s *Store) Load(ctx context.Context, patents []types.Patent) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM patents`); err != nil {
		return 0, fmt.Errorf("clearing patents: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO patents
		(seq, patent_id, title, assignee, filing_date, publication_date, grant_date, university)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range patents {
		univ := 0
		if analysis.IsUniversity(p.AssigneeOriginal) {
			univ = 1
		}
		if _, err := stmt.ExecContext(ctx, i+1, p.ID, p.Title, p.AssigneeOriginal,
			p.FilingDate, p.PublicationDate, p.GrantDate, univ); err != nil {
			return 0, fmt.Errorf("inserting %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return len(patents), nil
}

// LoadFile reads the patent table at path and loads it with Load.
func (s *Store) LoadFile(ctx context.Context, path string) (int, error) {
	patents, err := dataset.ReadTableFile(path)
	if err != nil {
		return 0, err
	}
	return s.Load(ctx, patents)
}

// Counts holds row totals of the index.
type Counts struct {
	Total        int
	WithAssignee int
	University   int
}

// Counts returns the row totals of the index.
func (s *Store) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	err := s.db.QueryRowContext(ctx, `SELECT
		COUNT(*),
		COALESCE(SUM(assignee != ''), 0),
		COALESCE(SUM(university), 0)
		FROM patents`).Scan(&c.Total, &c.WithAssignee, &c.University)
	if err != nil {
		return c, fmt.Errorf("counting patents: %w", err)
	}
	return c, nil
}

// TopAssignees returns up to n assignees by patent count, largest first,
// ties in the order the assignee first appears in the table. When
// universityOnly is set only university patents are counted. n <= 0
// returns every assignee.
func (s *Store) TopAssignees(ctx context.Context, n int, universityOnly bool) ([]types.AssigneeCount, error) {
	if n <= 0 {
		n = -1
	}
	query := `SELECT assignee, COUNT(*) AS num, MIN(seq) AS first
		FROM patents
		WHERE assignee != ''`
	if universityOnly {
		query += ` AND university = 1`
	}
	query += ` GROUP BY assignee ORDER BY num DESC, first ASC LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("querying assignees: %w", err)
	}
	defer rows.Close()

	var out []types.AssigneeCount
	for rows.Next() {
		var (
			c     types.AssigneeCount
			first int
		)
		if err := rows.Scan(&c.Assignee, &c.Patents, &first); err != nil {
			return nil, fmt.Errorf("scanning assignee: %w", err)
		}
		c.Name = analysis.Abbreviate(c.Assignee)
		out = append(out, c)
	}
	return out, rows.Err()
}

// PatentsByAssignee returns the patents whose assignee contains substr,
// in table order.
func (s *Store) PatentsByAssignee(ctx context.Context, substr string) ([]types.Patent, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT patent_id, title, assignee, filing_date, publication_date, grant_date
		FROM patents WHERE instr(assignee, ?) > 0 ORDER BY seq`, substr)
	if err != nil {
		return nil, fmt.Errorf("querying patents: %w", err)
	}
	defer rows.Close()

	var out []types.Patent
	for rows.Next() {
		var p types.Patent
		if err := rows.Scan(&p.ID, &p.Title, &p.AssigneeOriginal, &p.FilingDate, &p.PublicationDate, &p.GrantDate); err != nil {
			return nil, fmt.Errorf("scanning patent: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
