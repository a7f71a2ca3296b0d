package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Source exposes the read-only introspection queries the browser needs.
type Source struct {
	conn *Connection
}

// NewSource creates a Source over an open connection.
func NewSource(conn *Connection) *Source {
	return &Source{conn: conn}
}

// ListTables returns all user tables in declaration order.
func (s *Source) ListTables(ctx context.Context) ([]string, error) {
	const query = `
		SELECT name FROM sqlite_master
		WHERE type = 'table'
		AND name NOT LIKE 'sqlite_%'
	`
	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		return nil, &QueryError{Query: "sqlite_master", Err: err}
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// TableColumns returns the column names of a table in declaration order.
func (s *Source) TableColumns(ctx context.Context, table string) ([]string, error) {
	rows, err := s.conn.Query(ctx, fmt.Sprintf("PRAGMA table_info(%s)", quoteIdentifier(table)))
	if err != nil {
		return nil, &QueryError{Query: table, Err: err}
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var (
			cid, notNull, pk int
			name, typ        string
			dflt             sql.NullString
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan column info: %w", err)
		}
		columns = append(columns, name)
	}
	return columns, rows.Err()
}

// TableSchema returns the literal CREATE statement for a table, opaque to
// the caller.
func (s *Source) TableSchema(ctx context.Context, table string) (string, error) {
	var schema sql.NullString
	err := s.conn.QueryRow(ctx, `
		SELECT sql FROM sqlite_master
		WHERE type = 'table' AND name = ?
	`, table).Scan(&schema)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", &QueryError{Query: table, Err: fmt.Errorf("table not found")}
		}
		return "", &QueryError{Query: table, Err: err}
	}
	return schema.String, nil
}

// Rows fetches all rows of a table as typed cell values. columnExpr is the
// projection, normally "*".
func (s *Source) Rows(ctx context.Context, columnExpr, table string) ([][]Value, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", columnExpr, quoteIdentifier(table))

	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		return nil, &QueryError{Query: query, Err: err}
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	result := make([][]Value, 0)
	for rows.Next() {
		raw := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make([]Value, len(columns))
		for i, v := range raw {
			value, err := valueOf(v)
			if err != nil {
				return nil, fmt.Errorf("table %s, column %s: %w", table, columns[i], err)
			}
			row[i] = value
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// quoteIdentifier safely quotes a SQL identifier.
func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
