package database

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/johan-st/sqlite-browse/internal/testutil"
)

func openSource(t *testing.T, path string) *Source {
	t.Helper()
	conn, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return NewSource(conn)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.db"))
	if err == nil {
		t.Fatal("expected error opening a missing database file")
	}
}

func TestListTablesDeclarationOrder(t *testing.T) {
	path := testutil.CreateDB(t,
		"CREATE TABLE zebra (id INTEGER)",
		"CREATE TABLE apple (id INTEGER)",
		"CREATE TABLE mango (id INTEGER)",
	)
	src := openSource(t, path)

	tables, err := src.ListTables(context.Background())
	if err != nil {
		t.Fatalf("ListTables failed: %v", err)
	}
	want := []string{"zebra", "apple", "mango"}
	if !reflect.DeepEqual(tables, want) {
		t.Errorf("ListTables() = %v, want declaration order %v", tables, want)
	}
}

func TestListTablesSkipsInternal(t *testing.T) {
	path := testutil.CreateDB(t,
		"CREATE TABLE t (id INTEGER PRIMARY KEY AUTOINCREMENT, v TEXT)",
		"INSERT INTO t (v) VALUES ('x')",
	)
	src := openSource(t, path)

	tables, err := src.ListTables(context.Background())
	if err != nil {
		t.Fatalf("ListTables failed: %v", err)
	}
	// AUTOINCREMENT creates sqlite_sequence; it must not leak through
	if !reflect.DeepEqual(tables, []string{"t"}) {
		t.Errorf("ListTables() = %v, want [t]", tables)
	}
}

func TestTableColumns(t *testing.T) {
	path := testutil.CreateDB(t,
		"CREATE TABLE people (id INTEGER PRIMARY KEY, name TEXT NOT NULL, age INTEGER DEFAULT 0)",
	)
	src := openSource(t, path)

	columns, err := src.TableColumns(context.Background(), "people")
	if err != nil {
		t.Fatalf("TableColumns failed: %v", err)
	}
	want := []string{"id", "name", "age"}
	if !reflect.DeepEqual(columns, want) {
		t.Errorf("TableColumns() = %v, want %v", columns, want)
	}
}

func TestTableSchema(t *testing.T) {
	path := testutil.CreateDB(t,
		"CREATE TABLE notes (id INTEGER, body TEXT)",
	)
	src := openSource(t, path)

	schema, err := src.TableSchema(context.Background(), "notes")
	if err != nil {
		t.Fatalf("TableSchema failed: %v", err)
	}
	if schema != "CREATE TABLE notes (id INTEGER, body TEXT)" {
		t.Errorf("TableSchema() = %q", schema)
	}
}

func TestTableSchemaNotFound(t *testing.T) {
	src := openSource(t, testutil.EmptyDB(t))

	_, err := src.TableSchema(context.Background(), "ghost")
	if err == nil {
		t.Fatal("expected error for unknown table")
	}
	var qerr *QueryError
	if !errors.As(err, &qerr) {
		t.Errorf("error %T is not a *QueryError", err)
	}
}

func TestRowsTypedCells(t *testing.T) {
	path := testutil.CreateDB(t,
		"CREATE TABLE mixed (i INTEGER, r REAL, t TEXT, b BLOB, n TEXT)",
		"INSERT INTO mixed VALUES (42, 1.5, 'hi', X'CAFE', NULL)",
	)
	src := openSource(t, path)

	rows, err := src.Rows(context.Background(), "*", "mixed")
	if err != nil {
		t.Fatalf("Rows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	row := rows[0]
	wantKinds := []Kind{KindInteger, KindReal, KindText, KindBlob, KindNull}
	wantText := []string{"42", "1.5", "hi", "cafe", "null"}
	for i, cell := range row {
		if cell.Kind() != wantKinds[i] {
			t.Errorf("cell %d kind = %v, want %v", i, cell.Kind(), wantKinds[i])
		}
		if cell.String() != wantText[i] {
			t.Errorf("cell %d = %q, want %q", i, cell.String(), wantText[i])
		}
	}
}

func TestRowsEmptyTable(t *testing.T) {
	path := testutil.CreateDB(t, "CREATE TABLE empty (id INTEGER)")
	src := openSource(t, path)

	rows, err := src.Rows(context.Background(), "*", "empty")
	if err != nil {
		t.Fatalf("Rows failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

func TestRowsMissingTable(t *testing.T) {
	src := openSource(t, testutil.EmptyDB(t))

	_, err := src.Rows(context.Background(), "*", "ghost")
	if err == nil {
		t.Fatal("expected error for missing table")
	}
	var qerr *QueryError
	if !errors.As(err, &qerr) {
		t.Errorf("error %T is not a *QueryError", err)
	}
}

func TestRowsQuotedTableName(t *testing.T) {
	path := testutil.CreateDB(t,
		`CREATE TABLE "odd name" (id INTEGER)`,
		`INSERT INTO "odd name" VALUES (7)`,
	)
	src := openSource(t, path)

	rows, err := src.Rows(context.Background(), "*", "odd name")
	if err != nil {
		t.Fatalf("Rows failed: %v", err)
	}
	if len(rows) != 1 || rows[0][0].String() != "7" {
		t.Errorf("unexpected rows: %v", rows)
	}
}
