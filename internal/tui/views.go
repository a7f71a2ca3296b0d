package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/johan-st/sqlite-browse/internal/browser"
	"github.com/johan-st/sqlite-browse/internal/database"
)

const footerHeight = 3 // bordered info bar

// View implements tea.Model.
func (a *App) View() string {
	if a.width < 40 || a.height < 8 {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
			a.st.errText.Render("Terminal too small\nMin: 40x8"))
	}

	if a.engine.SchemaVisible() {
		return a.renderSchemaPopup()
	}

	bodyHeight := a.height - footerHeight - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	table := a.renderTable(bodyHeight, a.width-2)
	scrollbar := a.renderScrollbar(bodyHeight)
	body := lipgloss.JoinHorizontal(lipgloss.Top, table, scrollbar)

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(a.st.footer.Width(a.width - 2).Render(a.infoText()))
	b.WriteString("\n")
	b.WriteString(a.renderStatusBar())
	return b.String()
}

// renderTable draws the current list: aggregate rows in the overview, the
// pagination window of the selected table in detail view.
func (a *App) renderTable(height, width int) string {
	tables := a.engine.Tables()
	if len(tables) == 0 {
		return padLines(a.st.dim.Render(" No tables"), height)
	}

	sel, ok := a.engine.SelectedTable()
	if !ok {
		return padLines("", height)
	}
	columns := sel.Columns

	var (
		rows     [][]database.Value
		startIdx int
		selIdx   int
	)
	if a.engine.Mode() == browser.ModeOverview {
		rows = make([][]database.Value, 0, len(tables))
		for _, t := range tables {
			if len(t.Rows) > 0 {
				rows = append(rows, t.Rows[0])
			}
		}
		selIdx = a.engine.Cursor()
	} else {
		rows, selIdx = a.engine.Window()
		startIdx = browser.Page(a.engine.Cursor()) * browser.PageSize
	}

	widths := columnWidths(columns, rows)
	if a.engine.ColumnHighlightEnabled() {
		active := a.engine.ActiveColumn()
		if active < len(widths) {
			if hint := a.engine.ActiveColumnWidth(); hint > widths[active] {
				widths[active] = hint
			}
		}
	}

	var b strings.Builder
	b.WriteString(a.renderHeaderRow(columns, widths))
	b.WriteString("\n")

	// Keep the selection inside the visible lines
	visible := height - 1
	if visible < 1 {
		visible = 1
	}
	offset := 0
	if selIdx >= visible {
		offset = selIdx - visible + 1
	}
	end := min(offset+visible, len(rows))

	for i := offset; i < end; i++ {
		b.WriteString(a.renderDataRow(rows[i], widths, startIdx+i, i == selIdx))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return padLines(truncateLines(b.String(), width), height)
}

func (a *App) renderHeaderRow(columns []string, widths []int) string {
	cells := make([]string, len(columns))
	highlight := a.engine.ColumnHighlightEnabled()
	active := a.engine.ActiveColumn()
	for i, col := range columns {
		cell := pad(col, widths[i])
		if highlight && i == active {
			cell = a.st.highlighted.Render(cell)
		} else {
			cell = a.st.header.Render(cell)
		}
		cells[i] = cell
	}
	return strings.Join(cells, " ")
}

func (a *App) renderDataRow(row []database.Value, widths []int, absIdx int, selected bool) string {
	rowStyle := a.st.normalRow
	if absIdx%2 != 0 {
		rowStyle = a.st.altRow
	}
	if selected {
		rowStyle = a.st.selectedRow
	}

	highlight := a.engine.ColumnHighlightEnabled()
	active := a.engine.ActiveColumn()

	cells := make([]string, len(widths))
	for i := range widths {
		text := ""
		if i < len(row) {
			text = row[i].String()
		}
		cell := pad(text, widths[i])
		if highlight && i == active && !selected {
			cells[i] = a.st.highlighted.Render(cell)
		} else {
			cells[i] = rowStyle.Render(cell)
		}
	}
	return strings.Join(cells, " ")
}

// renderScrollbar draws the proportional position indicator. It reflects
// the cursor's position over the whole list, not the rendered window.
func (a *App) renderScrollbar(height int) string {
	bound := a.engine.ScrollBound()
	pos := a.engine.ScrollPosition()

	thumb := 0
	if bound > 0 && height > 1 {
		thumb = pos * (height - 1) / bound
		if thumb > height-1 {
			thumb = height - 1
		}
	}

	var b strings.Builder
	for i := 0; i < height; i++ {
		if i == thumb {
			b.WriteString(a.st.scrollbar.Render("█"))
		} else {
			b.WriteString(a.st.scrollbar.Render("│"))
		}
		if i < height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// infoText is the footer key legend for the current view.
func (a *App) infoText() string {
	var b strings.Builder
	b.WriteString("(Esc) quit | (↑) move up | (↓) move down | (⇧ S) toggle column select")
	if a.engine.Mode() == browser.ModeOverview {
		b.WriteString(" | (Space) toggle schema (→) table view")
	} else {
		b.WriteString(" | (←) main view")
	}
	if a.engine.ColumnHighlightEnabled() {
		b.WriteString(" | (⇧ ←) previous column | (⇧ →) next column")
	}
	return b.String()
}

func (a *App) renderStatusBar() string {
	left := "sqlite-browse"

	var right string
	if a.transitionErr != nil {
		right = a.st.errText.Render(a.transitionErr.Error())
	} else if a.engine.Mode() == browser.ModeOverview {
		right = fmt.Sprintf("%s tables", humanize.Comma(int64(len(a.engine.Tables()))))
	} else if sel, ok := a.engine.SelectedTable(); ok {
		right = fmt.Sprintf("%s | row %s/%s",
			sel.Name,
			humanize.Comma(int64(a.engine.Cursor()+1)),
			humanize.Comma(int64(len(sel.Rows))))
	}

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return a.st.status.Width(a.width).Render(left + strings.Repeat(" ", gap) + right)
}

// renderSchemaPopup shows the table-definition statement of the table under
// the cursor. The text is displayed as returned by the database.
func (a *App) renderSchemaPopup() string {
	content := a.engine.SchemaText()
	if content == "" {
		content = a.st.dim.Render("No schema")
	}

	popup := a.st.popup.
		Width(a.width / 2).
		Height(a.height / 2).
		Render(a.st.popupTitle.Render("SCHEMA") + "\n\n" + content)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, popup)
}

// columnWidths sizes each column to its longest header or cell text.
func columnWidths(columns []string, rows [][]database.Value) []int {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = len(col)
	}
	for _, row := range rows {
		for i := range widths {
			if i < len(row) {
				if n := len(row[i].String()); n > widths[i] {
					widths[i] = n
				}
			}
		}
	}
	for i := range widths {
		if widths[i] < 2 {
			widths[i] = 2
		}
	}
	return widths
}

func pad(s string, width int) string {
	if len(s) > width {
		s = truncateString(s, width)
	}
	if n := width - lipgloss.Width(s); n > 0 {
		s += strings.Repeat(" ", n)
	}
	return s
}

// truncateString truncates a string to maxLen, adding ellipsis if needed.
func truncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-1] + "…"
}

// truncateLines clips every line of a block to the given display width.
func truncateLines(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = lipgloss.NewStyle().MaxWidth(width).Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// padLines pads a block to exactly height lines.
func padLines(s string, height int) string {
	lines := strings.Split(s, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
