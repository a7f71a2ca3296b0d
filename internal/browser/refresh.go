package browser

import (
	"context"
	"fmt"

	"github.com/johan-st/sqlite-browse/internal/database"
	"golang.org/x/sync/errgroup"
)

// overviewHeader is the fixed header of the aggregate view.
var overviewHeader = []string{"#", "Table", "Columns", "Rows"}

// Load performs the initial bulk fetch: the table list, then every table's
// overview content and schema text, concurrently. Nothing is installed
// unless every fetch succeeds.
func (e *Engine) Load(ctx context.Context) error {
	names, err := e.src.ListTables(ctx)
	if err != nil {
		return fmt.Errorf("listing tables: %w", err)
	}

	tables := make([]Table, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			t, err := e.fetchTable(gctx, i, name, ModeOverview)
			if err != nil {
				return err
			}
			schema, err := e.src.TableSchema(gctx, name)
			if err != nil {
				return err
			}
			t.Schema = schema
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	e.tables = tables
	e.scrollMax = scrollBound(len(tables))
	return nil
}

// refreshAll re-fetches every known table's content for the target mode.
// Fetches fan out concurrently and are joined before anything is returned;
// the first failure cancels the rest and discards all results. Declaration
// order is preserved regardless of completion order.
//
// Refreshing tables other than the selected one on a drill-in fetches data
// that is never displayed. Kept: the load it puts on the database is
// observable behavior.
func (e *Engine) refreshAll(ctx context.Context, mode Mode) ([]Table, error) {
	tables := make([]Table, len(e.tables))
	g, gctx := errgroup.WithContext(ctx)
	for i, old := range e.tables {
		g.Go(func() error {
			t, err := e.fetchTable(gctx, i, old.Name, mode)
			if err != nil {
				return err
			}
			t.Schema = old.Schema
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

// fetchTable loads one table's columns and rows for the given mode. In
// overview mode the content is synthetic: the fixed header and a single
// aggregate row, not the table's real rows.
func (e *Engine) fetchTable(ctx context.Context, ordinal int, name string, mode Mode) (Table, error) {
	if mode == ModeDetail {
		columns, err := e.src.TableColumns(ctx, name)
		if err != nil {
			return Table{}, err
		}
		rows, err := e.src.Rows(ctx, "*", name)
		if err != nil {
			return Table{}, err
		}
		return Table{Name: name, Columns: columns, Rows: rows}, nil
	}

	columns, err := e.src.TableColumns(ctx, name)
	if err != nil {
		return Table{}, err
	}
	rows, err := e.src.Rows(ctx, "*", name)
	if err != nil {
		return Table{}, err
	}

	aggregate := []database.Value{
		database.Integer(int64(ordinal + 1)),
		database.Text(name),
		database.Integer(int64(len(columns))),
		database.Integer(int64(len(rows))),
	}
	return Table{
		Name:    name,
		Columns: append([]string(nil), overviewHeader...),
		Rows:    [][]database.Value{aggregate},
	}, nil
}
