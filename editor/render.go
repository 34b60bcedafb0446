package editor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const (
	rowDecorator     = "~"
	maxStatusNameLen = 20
	noName           = "[No Name]"
	invalidCell      = "?"
)

// View renders the text area, the status bar and the message bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	rows, cols := m.ScreenRows(), m.ScreenCols()
	out := make([]string, 0, rows+reservedRows)
	for i := 0; i < rows; i++ {
		out = append(out, m.renderRow(i, rows, cols))
	}
	if m.height > 0 {
		out = append(out, m.renderStatusBar(cols))
	}
	if m.height > 1 {
		out = append(out, m.renderMessageBar(cols))
	}
	return strings.Join(out, "\n")
}

func (m Model) renderRow(screenRow, rows, cols int) string {
	docRow := m.doc.RowOffset + screenRow
	cursorCol := -1
	if docRow == m.cursor.Y {
		cursorCol = m.cursor.RX - m.doc.ColOffset
		if cursorCol >= cols {
			cursorCol = -1
		}
	}

	row := m.doc.Row(docRow)
	if row == nil {
		line, style := rowDecorator, m.cfg.Style.Decorator
		if m.doc.NumRows() == 0 && !m.cfg.HideWelcome {
			switch screenRow {
			case rows / 3:
				line, style = centerText(m.cfg.Title, cols), m.cfg.Style.Welcome
			case rows/3 + 1:
				if m.cfg.Version != "" {
					line, style = centerText("version "+m.cfg.Version, cols), m.cfg.Style.Welcome
				}
			}
		}
		return m.renderCells(byteCells([]byte(truncateCells(line, cols))), cursorCol, style.Render)
	}

	render := row.Render()
	start := min(max(m.doc.ColOffset, 0), len(render))
	end := min(start+cols, len(render))
	return m.renderCells(byteCells(render[start:end]), cursorCol, m.cfg.Style.Text.Render)
}

// renderCells styles cells and overlays the cursor at column cursorCol.
// A negative cursorCol draws no cursor.
func (m Model) renderCells(cells []string, cursorCol int, render func(...string) string) string {
	if cursorCol < 0 || m.prompt != nil {
		return render(strings.Join(cells, ""))
	}
	for len(cells) <= cursorCol {
		cells = append(cells, " ")
	}
	var sb strings.Builder
	if cursorCol > 0 {
		sb.WriteString(render(strings.Join(cells[:cursorCol], "")))
	}
	sb.WriteString(m.cfg.Style.Cursor.Render(cells[cursorCol]))
	if cursorCol+1 < len(cells) {
		sb.WriteString(render(strings.Join(cells[cursorCol+1:], "")))
	}
	return sb.String()
}

// byteCells maps b to one screen cell per byte, matching the byte columns
// the cursor and viewport are measured in.
//
// A complete UTF-8 rune is drawn in its first cell and the rest of its bytes
// become padding, so the row keeps its width. Bytes of a rune cut by the
// viewport edge, invalid sequences and control bytes are drawn as '?'.
func byteCells(b []byte) []string {
	cells := make([]string, 0, len(b))
	for len(b) > 0 {
		c := b[0]
		if c < utf8.RuneSelf {
			if c < 0x20 || c == 0x7f {
				cells = append(cells, invalidCell)
			} else {
				cells = append(cells, string(c))
			}
			b = b[1:]
			continue
		}

		r, size := utf8.DecodeRune(b)
		w := runewidth.RuneWidth(r)
		if r == utf8.RuneError || w < 1 || w > size {
			cells = append(cells, invalidCell)
			b = b[1:]
			continue
		}
		// A wide rune covers w-1 cells after its own; the remaining bytes pad.
		cells = append(cells, string(r))
		for i := 1; i < size; i++ {
			if i < w {
				cells = append(cells, "")
			} else {
				cells = append(cells, " ")
			}
		}
		b = b[size:]
	}
	return cells
}

func centerText(text string, cols int) string {
	text = truncateCells(text, cols)
	padding := (cols - runewidth.StringWidth(text)) / 2
	if padding <= 0 {
		return text
	}
	return rowDecorator + strings.Repeat(" ", padding-1) + text
}

func (m Model) renderStatusBar(cols int) string {
	name := noName
	if m.doc.HasFilename() {
		name = runewidth.Truncate(m.doc.Filename(), maxStatusNameLen, "")
	}
	modified := ""
	if m.doc.IsDirty() {
		modified = "(modified)"
	}
	left := truncateCells(fmt.Sprintf("%s - %d lines %s", name, m.doc.NumRows(), modified), cols)
	right := fmt.Sprintf("%d/%d", m.cursor.Y+1, m.doc.NumRows())

	var sb strings.Builder
	sb.WriteString(left)
	width := runewidth.StringWidth(left)
	rightWidth := runewidth.StringWidth(right)
	for width < cols {
		if cols-width == rightWidth {
			sb.WriteString(right)
			break
		}
		sb.WriteByte(' ')
		width++
	}
	return m.cfg.Style.StatusBar.Render(sb.String())
}

func (m Model) renderMessageBar(cols int) string {
	if m.prompt != nil {
		return m.cfg.Style.Message.Render(truncateCells(m.prompt.Message(), cols))
	}
	text, ok := m.StatusMessage()
	if !ok {
		return ""
	}
	if m.status.warn {
		const mark = "(!) "
		if cols <= len(mark) {
			return m.cfg.Style.Warning.Render(truncateCells(mark, cols))
		}
		return m.cfg.Style.Warning.Render("(!)") + " " +
			m.cfg.Style.Message.Render(truncateCells(text, cols-len(mark)))
	}
	return m.cfg.Style.Message.Render(truncateCells(text, cols))
}

func truncateCells(s string, cols int) string {
	if cols <= 0 {
		return ""
	}
	return runewidth.Truncate(s, cols, "")
}
