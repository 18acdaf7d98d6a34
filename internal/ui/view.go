package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/tmenu/internal/catalog"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const (
	defaultWidth = 60
	minWidth     = 12
	helpRows     = 1
	searchRows   = 3 // border + input line + border
	boxBorders   = 2
	markerText   = "> "
	listTitle    = "Applications"
	searchTitle  = "Search"
	noEntriesMsg = "(no applications)"
)

// View implements tea.Model. The screen is split into a help band, a bordered
// search band and a bordered list band.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	width := m.layoutWidth()
	inner := width - boxBorders
	sections := []string{
		m.helpLine(width),
		renderBox(searchTitle, "", []string{m.searchLine()}, width, 1, m.mode == ModeEditing),
		renderBox(listTitle, m.listCounter(), m.listLines(inner), width, m.listHeight(), m.mode == ModeBrowsing),
	}
	return strings.Join(sections, "\n")
}

func (m *Model) layoutWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	if m.width < minWidth {
		return minWidth
	}
	return m.width
}

func (m *Model) helpLine(width int) string {
	m.help.Width = width
	return fitWidth(m.help.ShortHelpView(m.keys.ShortHelp(m.mode)), width)
}

func (m *Model) listCounter() string {
	return fmt.Sprintf(" %d/%d ", len(m.list.Items), m.total)
}

// maxVisibleItems returns the number of list rows that fit, or -1 when the
// height is unknown and every row is drawn.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	remain := m.height - helpRows - searchRows - boxBorders
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) listHeight() int {
	if rows := m.maxVisibleItems(); rows > 0 {
		return rows
	}
	if n := len(m.list.Items); n > 0 {
		return n
	}
	return 1
}

func (m *Model) listLines(width int) []string {
	if len(m.list.Items) == 0 {
		msg := noEntriesMsg
		if m.list.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", m.list.Filter)
		}
		return []string{render(styles.Info, fitPlain(msg, width))}
	}
	start, end := m.list.Window(m.maxVisibleItems())
	lines := make([]string, 0, end-start)
	for idx := start; idx < end; idx++ {
		lines = append(lines, buildItemLine(m.list.Items[idx], idx == m.list.Cursor, width))
	}
	return lines
}

// buildItemLine renders one entry padded to width so the highlight of the
// selected row spans the whole box.
func buildItemLine(entry catalog.Entry, selected bool, width int) string {
	avail := width - runewidth.StringWidth(markerText)
	if avail < 1 {
		avail = 1
	}
	label := runewidth.FillRight(runewidth.Truncate(entry.Label(), avail, "…"), avail)
	if selected {
		return render(styles.Marker, markerText) + render(styles.SelectedItem, label)
	}
	pad := strings.Repeat(" ", len(markerText))
	if entry.Description == "" || !strings.HasPrefix(label, entry.Name) {
		return pad + render(styles.Item, label)
	}
	return pad + render(styles.Item, entry.Name) + render(styles.ItemDescription, label[len(entry.Name):])
}

// renderBox draws a rounded box of exactly totalWidth columns around body,
// with title and an optional trailing note set into the top border. Body rows
// may carry ANSI styling.
func renderBox(title, note string, body []string, totalWidth, innerH int, active bool) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)

	innerW := totalWidth - boxBorders
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}
	borderStyle := styles.Border
	if active && styles.ActiveBorder != nil {
		borderStyle = styles.ActiveBorder
	}

	titleSeg := " " + title + " "
	dashes := totalWidth - 4 - runewidth.StringWidth(titleSeg) - runewidth.StringWidth(note)
	if dashes < 0 {
		note = ""
		dashes = totalWidth - 4 - runewidth.StringWidth(titleSeg)
	}
	if dashes < 0 {
		titleSeg = ""
		dashes = totalWidth - 4
	}
	if dashes < 0 {
		dashes = 0
	}
	top := render(borderStyle, tlc+hz) +
		render(styles.Title, titleSeg) +
		render(borderStyle, strings.Repeat(hz, dashes)) +
		render(styles.Info, note) +
		render(borderStyle, hz+trc)
	bottom := render(borderStyle, blc+strings.Repeat(hz, innerW)+brc)

	rows := make([]string, 0, innerH+2)
	rows = append(rows, top)
	side := render(borderStyle, vt)
	for i := 0; i < innerH; i++ {
		content := ""
		if i < len(body) {
			content = body[i]
		}
		rows = append(rows, side+fitWidth(content, innerW)+side)
	}
	rows = append(rows, bottom)
	return strings.Join(rows, "\n")
}

// fitWidth truncates or pads an ANSI-styled string to exactly width columns.
func fitWidth(content string, width int) string {
	w := lipgloss.Width(content)
	if w > width {
		content = truncate.StringWithTail(content, uint(width), "…")
		w = lipgloss.Width(content)
	}
	if w < width {
		content += strings.Repeat(" ", width-w)
	}
	return content
}

func fitPlain(text string, width int) string {
	return runewidth.Truncate(text, width, "…")
}
