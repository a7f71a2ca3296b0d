// Package browser holds the navigation state of the database browser: which
// view is active, where the cursor is, what is highlighted, and when table
// content is (re)loaded from the database.
package browser

import (
	"context"
	"math"

	"github.com/johan-st/sqlite-browse/internal/database"
)

// Mode is the active view.
type Mode int

const (
	// ModeOverview lists one synthetic aggregate row per table.
	ModeOverview Mode = iota
	// ModeDetail lists the raw rows of the selected table.
	ModeDetail
)

// widthFactor pads the highlighted column beyond its longest cell.
const widthFactor = 1.1

// Table is one table's displayable content. The whole set is replaced on
// every view transition; only the schema text survives, fetched once at load.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]database.Value
	Schema  string
}

// Source is the database the engine loads table content from.
type Source interface {
	ListTables(ctx context.Context) ([]string, error)
	TableColumns(ctx context.Context, table string) ([]string, error)
	TableSchema(ctx context.Context, table string) (string, error)
	Rows(ctx context.Context, columnExpr, table string) ([][]database.Value, error)
}

// Engine owns all UI-relevant navigation state. It is not safe for
// concurrent use; callers mutate it from a single event loop.
type Engine struct {
	src Source

	tables       []Table
	mode         Mode
	cursor       int
	selected     int // index of the drilled-in table
	highlight    bool
	activeColumn int
	schemaOpen   bool
	scrollPos    int
	scrollMax    int
}

// New creates an engine over a data source. Call Load before first use.
func New(src Source) *Engine {
	return &Engine{src: src}
}

// currentLen is the length of whichever list the cursor moves over.
func (e *Engine) currentLen() int {
	if e.mode == ModeDetail {
		if e.selected < len(e.tables) {
			return len(e.tables[e.selected].Rows)
		}
		return 0
	}
	return len(e.tables)
}

// Next moves the cursor down one item, wrapping at the end.
func (e *Engine) Next() {
	e.cursor = wrapNext(e.cursor, e.currentLen())
	e.scrollPos = e.cursor * ItemHeight
}

// Previous moves the cursor up one item, wrapping at the top.
func (e *Engine) Previous() {
	e.cursor = wrapPrev(e.cursor, e.currentLen())
	e.scrollPos = e.cursor * ItemHeight
}

// DrillIn switches from the overview into the table under the cursor. Every
// table's content is refreshed to full rows before any state changes; on
// fetch failure the engine is left exactly as it was.
func (e *Engine) DrillIn(ctx context.Context) error {
	if e.mode != ModeOverview || len(e.tables) == 0 {
		return nil
	}

	selected := e.cursor
	refreshed, err := e.refreshAll(ctx, ModeDetail)
	if err != nil {
		return err
	}

	e.tables = refreshed
	e.mode = ModeDetail
	e.selected = selected
	e.cursor = 0
	e.highlight = false
	e.activeColumn = 0
	e.schemaOpen = false
	e.scrollPos = 0
	e.scrollMax = scrollBound(len(refreshed[selected].Rows))
	return nil
}

// DrillOut returns from the table detail to the overview, restoring
// aggregate content for every table. Same all-or-nothing contract as
// DrillIn.
func (e *Engine) DrillOut(ctx context.Context) error {
	if e.mode != ModeDetail {
		return nil
	}

	selected := min(e.cursor, len(e.tables)-1)
	refreshed, err := e.refreshAll(ctx, ModeOverview)
	if err != nil {
		return err
	}

	e.tables = refreshed
	e.mode = ModeOverview
	e.selected = selected
	e.cursor = 0
	e.highlight = false
	e.activeColumn = 0
	e.scrollPos = 0
	e.scrollMax = scrollBound(len(refreshed))
	return nil
}

// ToggleSchema shows or hides the schema popup. Only meaningful in the
// overview; in detail view it is a no-op.
func (e *Engine) ToggleSchema() {
	if e.mode == ModeOverview {
		e.schemaOpen = !e.schemaOpen
	}
}

// ToggleColumnHighlight enables or disables the column highlight. Disabling
// leaves the active column index untouched.
func (e *Engine) ToggleColumnHighlight() {
	e.highlight = !e.highlight
}

// NextColumn cycles the highlighted column forward.
func (e *Engine) NextColumn() {
	if !e.highlight {
		return
	}
	n := e.selectedColumnCount()
	if n == 0 {
		return
	}
	e.activeColumn = (e.activeColumn + 1) % n
}

// PreviousColumn cycles the highlighted column backward.
func (e *Engine) PreviousColumn() {
	if !e.highlight {
		return
	}
	n := e.selectedColumnCount()
	if n == 0 {
		return
	}
	if e.activeColumn == 0 {
		e.activeColumn = n - 1
	} else {
		e.activeColumn--
	}
}

func (e *Engine) selectedColumnCount() int {
	if e.selected < len(e.tables) {
		return len(e.tables[e.selected].Columns)
	}
	return 0
}

// ActiveColumnWidth is the width hint for the highlighted column: the
// longest cell or header text, padded by 10% and rounded up. Zero when
// there is nothing to measure.
func (e *Engine) ActiveColumnWidth() int {
	if e.selected >= len(e.tables) {
		return 0
	}
	t := e.tables[e.selected]
	if e.activeColumn >= len(t.Columns) {
		return 0
	}

	longest := len(t.Columns[e.activeColumn])
	for _, row := range t.Rows {
		if e.activeColumn < len(row) {
			if n := len(row[e.activeColumn].String()); n > longest {
				longest = n
			}
		}
	}
	return int(math.Ceil(float64(longest) * widthFactor))
}

// Window returns the pagination window of the selected table's rows that
// contains the cursor, and the cursor's index within it. In overview mode
// the window concept does not apply; callers render aggregates directly.
func (e *Engine) Window() ([][]database.Value, int) {
	if e.selected >= len(e.tables) {
		return nil, 0
	}
	rows := e.tables[e.selected].Rows
	start := Page(e.cursor) * PageSize
	if start >= len(rows) {
		return nil, 0
	}
	end := min(start+PageSize, len(rows))
	return rows[start:end], WindowIndex(e.cursor)
}

// Tables returns the current table descriptors.
func (e *Engine) Tables() []Table { return e.tables }

// Mode returns the active view mode.
func (e *Engine) Mode() Mode { return e.mode }

// Cursor returns the selection index within the current list.
func (e *Engine) Cursor() int { return e.cursor }

// SelectedTableID returns the index of the drilled-in table (or the last
// one drilled into).
func (e *Engine) SelectedTableID() int { return e.selected }

// SelectedTable returns the drilled-in table's descriptor.
func (e *Engine) SelectedTable() (Table, bool) {
	if e.selected < len(e.tables) {
		return e.tables[e.selected], true
	}
	return Table{}, false
}

// SchemaVisible reports whether the schema popup is open.
func (e *Engine) SchemaVisible() bool { return e.schemaOpen }

// SchemaText returns the schema of the table under the cursor, for the
// popup. The text is whatever the database returned, opaque to the engine.
func (e *Engine) SchemaText() string {
	if e.cursor < len(e.tables) {
		return e.tables[e.cursor].Schema
	}
	return ""
}

// ColumnHighlightEnabled reports whether the column highlight is active.
func (e *Engine) ColumnHighlightEnabled() bool { return e.highlight }

// ActiveColumn returns the highlighted column index.
func (e *Engine) ActiveColumn() int { return e.activeColumn }

// ScrollPosition returns the proportional scrollbar position.
func (e *Engine) ScrollPosition() int { return e.scrollPos }

// ScrollBound returns the maximum scrollbar position for the current list.
func (e *Engine) ScrollBound() int { return e.scrollMax }
