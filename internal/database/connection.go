// Package database provides read-only access to a SQLite database file.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const busyTimeoutMs = 5000

// Connection wraps a read-only database connection.
type Connection struct {
	DB   *sql.DB
	Path string
	mu   sync.Mutex
}

// Open opens the database file read-only. A missing or unreadable file is
// reported here, before any UI is drawn.
func Open(path string) (*Connection, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro&_busy_timeout=%d", path, busyTimeoutMs)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", path, err)
	}

	// Single connection; SQLite serializes access itself
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	return &Connection{
		DB:   db,
		Path: path,
	}, nil
}

// Close closes the database connection.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// Query runs a query that returns rows.
func (c *Connection) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.DB.QueryContext(ctx, query, args...)
}

// QueryRow runs a query that returns at most one row.
func (c *Connection) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.DB.QueryRowContext(ctx, query, args...)
}
