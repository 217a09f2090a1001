package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders rows of cells inside a rounded border
type Table struct {
	title      string
	footer     string
	headers    []string
	rows       []TableRow
	widths     []int
	hideHeader bool
	minWidth   int
}

// TableRow represents a single row in the table
type TableRow struct {
	cells  []string
	active bool
}

// NewTable creates a new table with the given headers
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	return &Table{
		headers: headers,
		widths:  widths,
	}
}

// SetTitle sets a title that spans all columns at the top of the table
func (t *Table) SetTitle(title string) {
	t.title = title
}

// SetFooter sets a muted note shown below the rows
func (t *Table) SetFooter(footer string) {
	t.footer = footer
}

// HideHeader hides the column header row
func (t *Table) HideHeader() {
	t.hideHeader = true
}

// SetMinWidth sets a minimum width for the table content
func (t *Table) SetMinWidth(width int) {
	t.minWidth = width
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	t.addRow(cells, false)
}

// AddActiveRow adds a highlighted row to the table
func (t *Table) AddActiveRow(cells ...string) {
	t.addRow(cells, true)
}

// addRow pads or truncates cells to the header count and widens columns as needed
func (t *Table) addRow(cells []string, active bool) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i >= len(cells) {
			break
		}
		row[i] = cells[i]
		// lipgloss.Width ignores ANSI codes of pre-styled cells
		if w := lipgloss.Width(cells[i]); w > t.widths[i] {
			t.widths[i] = w
		}
	}
	t.rows = append(t.rows, TableRow{cells: row, active: active})
}

// RowCount returns the number of data rows (excluding header)
func (t *Table) RowCount() int {
	return len(t.rows)
}

// Render returns the rendered table as a string
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	initStyles()

	totalWidth := 0
	for _, w := range t.widths {
		totalWidth += w + 2
	}

	// Pad the last column up to the minimum width
	if t.minWidth > 0 && totalWidth < t.minWidth {
		t.widths[len(t.widths)-1] += t.minWidth - totalWidth
		totalWidth = t.minWidth
	}

	var lines []string

	if t.title != "" {
		titleStyle := StyleTitle.
			Width(totalWidth).
			Align(lipgloss.Center)
		lines = append(lines, titleStyle.Render(t.title), t.rule(totalWidth))
	}

	if !t.hideHeader {
		var header strings.Builder
		for i, h := range t.headers {
			header.WriteString(StyleTableHeader.Width(t.widths[i] + 2).Render(h))
		}
		lines = append(lines, header.String(), t.rule(totalWidth))
	}

	for _, row := range t.rows {
		var line strings.Builder
		for i, cell := range row.cells {
			style := StyleTableCell.Width(t.widths[i] + 2)
			if row.active {
				style = style.Inherit(StyleTableRowActive)
			}
			line.WriteString(style.Render(cell))
		}
		lines = append(lines, line.String())
	}

	if t.footer != "" {
		lines = append(lines, t.rule(totalWidth), StyleMuted.Width(totalWidth).Render(t.footer))
	}

	return StyleTableBorder.Render(strings.Join(lines, "\n"))
}

func (t *Table) rule(width int) string {
	return StyleMuted.Render(strings.Repeat("─", width))
}
