// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a SQLite journal of converted files so a user can
// see what a past batch wrote and with which format code.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/office-convert/pkg/types"
)

const defaultLimit = 20

// Store manages the conversion journal database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the journal at path and creates the schema if it
// does not exist.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
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
		`CREATE TABLE IF NOT EXISTS conversions (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			batch TEXT NOT NULL,
			family TEXT NOT NULL,
			backend TEXT NOT NULL,
			source TEXT NOT NULL,
			output TEXT NOT NULL,
			code INTEGER NOT NULL,
			ext TEXT NOT NULL,
			status TEXT NOT NULL,
			error TEXT,
			converted_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_batch ON conversions(batch)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_source ON conversions(source)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record appends one conversion to the journal.
func (s *Store) Record(c types.Conversion) error {
	_, err := s.db.Exec(
		`INSERT INTO conversions (batch, family, backend, source, output, code, ext, status, error, converted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Batch, c.Family, c.Backend, c.Source, c.Output, c.Code, c.Ext,
		string(c.Status), nullString(c.Error), c.ConvertedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording %s: %w", c.Source, err)
	}
	return nil
}

// QueryOptions narrows a journal query. Zero values match everything.
type QueryOptions struct {
	Batch  string
	Source string
	Status types.ConversionStatus
	Limit  int
}

// Recent returns journal entries, newest first.
func (s *Store) Recent(ctx context.Context, opts QueryOptions) ([]types.Conversion, error) {
	query := `SELECT batch, family, backend, source, output, code, ext, status, error, converted_at
		FROM conversions WHERE 1=1`
	var args []any
	if opts.Batch != "" {
		query += ` AND batch = ?`
		args = append(args, opts.Batch)
	}
	if opts.Source != "" {
		query += ` AND source = ?`
		args = append(args, opts.Source)
	}
	if opts.Status != "" {
		query += ` AND status = ?`
		args = append(args, string(opts.Status))
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	query += ` ORDER BY rowid DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var out []types.Conversion
	for rows.Next() {
		var (
			c         types.Conversion
			status    string
			errMsg    sql.NullString
			converted string
		)
		if err := rows.Scan(&c.Batch, &c.Family, &c.Backend, &c.Source, &c.Output,
			&c.Code, &c.Ext, &status, &errMsg, &converted); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		c.Status = types.ConversionStatus(status)
		c.Error = errMsg.String
		t, err := time.Parse(time.RFC3339Nano, converted)
		if err != nil {
			return nil, fmt.Errorf("parsing converted_at of %s: %w", c.Source, err)
		}
		c.ConvertedAt = t
		out = append(out, c)
	}
	return out, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
