// Package testutil provides test utilities for sqlite-browse tests.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// CreateDB creates a temporary database file and applies the given SQL
// statements to it. The file lives in t.TempDir and needs no cleanup.
func CreateDB(t *testing.T, statements ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	defer db.Close()

	// sql.Open is lazy; ping so the file exists even with no statements.
	if err := db.Ping(); err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}

	for _, stmt := range statements {
		MustExec(t, db, stmt)
	}
	return path
}

// EmptyDB creates a new empty database for testing.
func EmptyDB(t *testing.T) string {
	t.Helper()
	return CreateDB(t)
}

// MustExec executes SQL or fails the test.
func MustExec(t *testing.T, db *sql.DB, query string, args ...any) {
	t.Helper()
	if _, err := db.Exec(query, args...); err != nil {
		t.Fatalf("MustExec failed: %v\nQuery: %s", err, query)
	}
}

// MustQueryRow executes a query and scans the first row into dest.
func MustQueryRow(t *testing.T, db *sql.DB, query string, dest ...any) {
	t.Helper()
	if err := db.QueryRow(query).Scan(dest...); err != nil {
		t.Fatalf("MustQueryRow failed: %v\nQuery: %s", err, query)
	}
}
