package tui

import "github.com/charmbracelet/lipgloss"

// Slate base colors shared by every palette
var (
	bufferBg  = lipgloss.Color("#020617")
	altRowBg  = lipgloss.Color("#0f172a")
	textColor = lipgloss.Color("#e2e8f0")
)

// Theme holds the palette-dependent colors of the browser.
type Theme struct {
	Name         string
	HeaderBg     lipgloss.Color
	SelectedFg   lipgloss.Color
	FooterBorder lipgloss.Color
	HighlightBg  lipgloss.Color
}

// Palettes, darkest-to-lightest accents per hue
var themes = map[string]Theme{
	"teal": {
		Name:         "teal",
		HeaderBg:     lipgloss.Color("#134e4a"),
		SelectedFg:   lipgloss.Color("#0d9488"),
		FooterBorder: lipgloss.Color("#2dd4bf"),
		HighlightBg:  lipgloss.Color("#115e59"),
	},
	"indigo": {
		Name:         "indigo",
		HeaderBg:     lipgloss.Color("#312e81"),
		SelectedFg:   lipgloss.Color("#4f46e5"),
		FooterBorder: lipgloss.Color("#818cf8"),
		HighlightBg:  lipgloss.Color("#3730a3"),
	},
	"red": {
		Name:         "red",
		HeaderBg:     lipgloss.Color("#7f1d1d"),
		SelectedFg:   lipgloss.Color("#dc2626"),
		FooterBorder: lipgloss.Color("#f87171"),
		HighlightBg:  lipgloss.Color("#991b1b"),
	},
	"amber": {
		Name:         "amber",
		HeaderBg:     lipgloss.Color("#78350f"),
		SelectedFg:   lipgloss.Color("#d97706"),
		FooterBorder: lipgloss.Color("#fbbf24"),
		HighlightBg:  lipgloss.Color("#92400e"),
	},
}

// ThemeFor returns the theme for a palette name, falling back to teal.
func ThemeFor(palette string) Theme {
	if t, ok := themes[palette]; ok {
		return t
	}
	return themes["teal"]
}

// PaletteNames lists the available palettes.
func PaletteNames() []string {
	return []string{"teal", "indigo", "red", "amber"}
}

// styles bundles the lipgloss styles derived from a theme.
type styles struct {
	header      lipgloss.Style
	normalRow   lipgloss.Style
	altRow      lipgloss.Style
	selectedRow lipgloss.Style
	highlighted lipgloss.Style
	footer      lipgloss.Style
	status      lipgloss.Style
	dim         lipgloss.Style
	errText     lipgloss.Style
	popup       lipgloss.Style
	popupTitle  lipgloss.Style
	scrollbar   lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor).
			Background(t.HeaderBg),
		normalRow: lipgloss.NewStyle().
			Foreground(textColor).
			Background(bufferBg),
		altRow: lipgloss.NewStyle().
			Foreground(textColor).
			Background(altRowBg),
		selectedRow: lipgloss.NewStyle().
			Reverse(true).
			Foreground(t.SelectedFg),
		highlighted: lipgloss.NewStyle().
			Foreground(textColor).
			Background(t.HighlightBg),
		footer: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(t.FooterBorder).
			Foreground(textColor).
			Align(lipgloss.Center),
		status: lipgloss.NewStyle().
			Background(altRowBg).
			Foreground(textColor).
			Padding(0, 1),
		dim: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")),
		errText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true),
		popup: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#EF4444")).
			Foreground(lipgloss.Color("#F59E0B")).
			Padding(0, 1),
		popupTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")),
		scrollbar: lipgloss.NewStyle().
			Foreground(t.FooterBorder),
	}
}
