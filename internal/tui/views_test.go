package tui

import (
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/johan-st/sqlite-browse/internal/database"
)

func TestThemeFor(t *testing.T) {
	for _, name := range PaletteNames() {
		if got := ThemeFor(name).Name; got != name {
			t.Errorf("ThemeFor(%q).Name = %q", name, got)
		}
	}
	if got := ThemeFor("mauve").Name; got != "teal" {
		t.Errorf("unknown palette should fall back to teal, got %q", got)
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 8, "hello w…"},
		{"hello", 3, "hel"},
		{"hello", 0, ""},
	}
	for _, tt := range tests {
		if got := truncateString(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}

func TestColumnWidths(t *testing.T) {
	columns := []string{"id", "name"}
	rows := [][]database.Value{
		{database.Integer(1), database.Text("ada")},
		{database.Integer(12345), database.Text("x")},
	}
	got := columnWidths(columns, rows)
	want := []int{5, 4} // longest of header/cells, min 2
	if !reflect.DeepEqual(got, want) {
		t.Errorf("columnWidths() = %v, want %v", got, want)
	}
}

func TestPad(t *testing.T) {
	if got := pad("ab", 5); got != "ab   " {
		t.Errorf("pad short = %q", got)
	}
	if got := pad("abcdef", 4); len(got) == 0 || lipgloss.Width(got) > 4 {
		t.Errorf("pad long = %q, wider than 4", got)
	}
}

func TestPadLines(t *testing.T) {
	got := padLines("a\nb", 4)
	if lines := strings.Split(got, "\n"); len(lines) != 4 {
		t.Errorf("padLines grew to %d lines, want 4", len(lines))
	}
	got = padLines("a\nb\nc", 2)
	if got != "a\nb" {
		t.Errorf("padLines clip = %q", got)
	}
}
