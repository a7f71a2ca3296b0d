// Package tui renders the browser state and maps terminal input to
// navigation operations. All state lives in the browser engine; this
// package only reads it between events.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/johan-st/sqlite-browse/internal/browser"
	"github.com/johan-st/sqlite-browse/internal/database"
)

// ThemeReloadedMsg is sent when the config watcher picks up a new palette.
type ThemeReloadedMsg struct {
	Theme Theme
}

// App is the bubbletea model wrapping the navigation engine.
type App struct {
	engine *browser.Engine
	keys   KeyMap
	theme  Theme
	st     styles

	width, height int

	// transitionErr is the last failed refresh; prior state is intact.
	transitionErr error

	// fatal is set when a value outside the supported storage classes is
	// encountered. The program quits and main reports it.
	fatal error
}

// NewApp creates the TUI over a loaded engine.
func NewApp(engine *browser.Engine, theme Theme, width, height int) *App {
	return &App{
		engine: engine,
		keys:   DefaultKeyMap(),
		theme:  theme,
		st:     newStyles(theme),
		width:  width,
		height: height,
	}
}

// Err returns the fatal error that terminated the session, if any.
func (a *App) Err() error {
	return a.fatal
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case ThemeReloadedMsg:
		a.theme = msg.Theme
		a.st = newStyles(msg.Theme)
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		a.engine.Next()

	case key.Matches(msg, a.keys.Up):
		a.engine.Previous()

	case key.Matches(msg, a.keys.DrillIn):
		a.transition(a.engine.DrillIn)

	case key.Matches(msg, a.keys.DrillOut):
		a.transition(a.engine.DrillOut)

	case key.Matches(msg, a.keys.Schema):
		a.engine.ToggleSchema()

	case key.Matches(msg, a.keys.Highlight):
		a.engine.ToggleColumnHighlight()

	case key.Matches(msg, a.keys.PrevColumn):
		a.engine.PreviousColumn()

	case key.Matches(msg, a.keys.NextColumn):
		a.engine.NextColumn()
	}

	if a.fatal != nil {
		return a, tea.Quit
	}
	return a, nil
}

// transition runs a view transition synchronously. The frame drawn after
// this event therefore never sees a partially refreshed table set; a slow
// database stalls the whole transition instead.
func (a *App) transition(fn func(context.Context) error) {
	err := fn(context.Background())
	switch {
	case err == nil:
		a.transitionErr = nil
	case errors.Is(err, database.ErrUnsupportedType):
		a.fatal = err
	default:
		a.transitionErr = err
	}
}
