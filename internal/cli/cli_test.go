package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/johan-st/sqlite-browse/internal/testutil"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTablesCommand(t *testing.T) {
	path := testutil.CreateDB(t,
		"CREATE TABLE users (id INTEGER)",
		"CREATE TABLE logs (id INTEGER)",
	)

	out, err := runCommand(t, "tables", path)
	if err != nil {
		t.Fatalf("tables failed: %v", err)
	}
	if out != "users\nlogs\n" {
		t.Errorf("tables output = %q", out)
	}
}

func TestTablesCommandMissingFile(t *testing.T) {
	if _, err := runCommand(t, "tables", "/nonexistent/db.sqlite"); err == nil {
		t.Fatal("expected error for missing database file")
	}
}

func TestSchemaCommandSingleTable(t *testing.T) {
	path := testutil.CreateDB(t,
		"CREATE TABLE notes (id INTEGER, body TEXT)",
	)

	out, err := runCommand(t, "schema", path, "notes")
	if err != nil {
		t.Fatalf("schema failed: %v", err)
	}
	if out != "CREATE TABLE notes (id INTEGER, body TEXT);\n" {
		t.Errorf("schema output = %q", out)
	}
}

func TestSchemaCommandAllTables(t *testing.T) {
	path := testutil.CreateDB(t,
		"CREATE TABLE a (x INTEGER)",
		"CREATE TABLE b (y INTEGER)",
	)

	out, err := runCommand(t, "schema", path)
	if err != nil {
		t.Fatalf("schema failed: %v", err)
	}
	if !strings.Contains(out, "CREATE TABLE a (x INTEGER);") ||
		!strings.Contains(out, "CREATE TABLE b (y INTEGER);") {
		t.Errorf("schema output = %q", out)
	}
}

func TestSchemaCommandUnknownTable(t *testing.T) {
	path := testutil.EmptyDB(t)
	if _, err := runCommand(t, "schema", path, "ghost"); err == nil {
		t.Fatal("expected error for unknown table")
	}
}

func TestRowsCommand(t *testing.T) {
	path := testutil.CreateDB(t,
		"CREATE TABLE pets (id INTEGER, name TEXT, weight REAL)",
		"INSERT INTO pets VALUES (1, 'rex', 12.5)",
		"INSERT INTO pets VALUES (2, NULL, 3)",
	)

	out, err := runCommand(t, "rows", path, "pets")
	if err != nil {
		t.Fatalf("rows failed: %v", err)
	}
	want := "id\tname\tweight\n1\trex\t12.5\n2\tnull\t3\n"
	if out != want {
		t.Errorf("rows output = %q, want %q", out, want)
	}
}

func TestRowsCommandRequiresTable(t *testing.T) {
	path := testutil.EmptyDB(t)
	if _, err := runCommand(t, "rows", path); err == nil {
		t.Fatal("expected arg error without a table name")
	}
}
