// Package cli provides the command-line interface for sqlite-browse.
package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/johan-st/sqlite-browse/internal/browser"
	"github.com/johan-st/sqlite-browse/internal/config"
	"github.com/johan-st/sqlite-browse/internal/database"
	"github.com/johan-st/sqlite-browse/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version information (set at build time).
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

var (
	cfgFile     string
	paletteFlag string
)

// NewRootCmd creates and returns the root command. Running it with only a
// database path starts the interactive browser.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sqlite-browse <database-file>",
		Short: "Read-only terminal browser for SQLite database files",
		Long: `sqlite-browse opens a SQLite database file read-only and lets you
walk its tables: an aggregate overview of every table, row-level detail
views, schema popups and column highlighting. Nothing is ever written.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(args[0])
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().StringVarP(&paletteFlag, "palette", "p", "", "color palette (teal, indigo, red, amber)")

	rootCmd.AddCommand(newTablesCmd())
	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(newRowsCmd())

	return rootCmd
}

// loadConfig resolves the effective config from file and flags.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if paletteFlag != "" {
		cfg.Theme.Palette = paletteFlag
	}
	return cfg, nil
}

// openSource opens the database read-only and wraps it as a Source.
func openSource(path string) (*database.Source, func(), error) {
	conn, err := database.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return database.NewSource(conn), func() { conn.Close() }, nil
}

// runTUI starts the interactive browser on the given database file.
func runTUI(path string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	src, closeDB, err := openSource(path)
	if err != nil {
		return err
	}
	defer closeDB()

	engine := browser.New(src)
	if err := engine.Load(context.Background()); err != nil {
		return fmt.Errorf("failed to load database content: %w", err)
	}

	// Get terminal size
	width, height := 80, 24
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil {
			width, height = w, h
		}
	}

	app := tui.NewApp(engine, tui.ThemeFor(cfg.Palette()), width, height)
	p := tea.NewProgram(app, tea.WithAltScreen())

	// Hot-reload the palette when the config file changes
	if cfg.Path() != "" {
		watcher, err := config.NewWatcher(cfg)
		if err != nil {
			log.Printf("Warning: failed to create config watcher: %v", err)
		} else {
			watcher.OnReload(func(c *config.Config) {
				p.Send(tui.ThemeReloadedMsg{Theme: tui.ThemeFor(c.Palette())})
			})
			if err := watcher.Start(); err != nil {
				log.Printf("Warning: failed to start config watcher: %v", err)
			} else {
				defer watcher.Stop()
			}
		}
	}

	if _, err := p.Run(); err != nil {
		return err
	}
	return app.Err()
}
