package buffer

// ViewportState is a snapshot of the document camera.
type ViewportState struct {
	RowOffset int
	ColOffset int
	// VisibleRows and VisibleCols are the text area size in cells.
	VisibleRows int
	VisibleCols int
}

// CursorXToRenderX translates logical column x of row into a render column.
func CursorXToRenderX(row *Row, x int) int {
	if row == nil {
		return 0
	}
	x = clampInt(x, 0, row.Len())
	rx := 0
	for _, c := range row.text[:x] {
		if c == '\t' {
			rx += (TabStop - 1) - (rx % TabStop)
		}
		rx++
	}
	return rx
}

// Scroll recomputes c.RX and moves the viewport by the minimal amount that
// keeps the cursor inside a screenRows x screenCols text area.
func (d *Document) Scroll(c *Cursor, screenRows, screenCols int) {
	c.RX = 0
	if row := d.Row(c.Y); row != nil {
		c.RX = CursorXToRenderX(row, c.X)
	}

	if c.RX < d.ColOffset {
		d.ColOffset = c.RX
	}
	if screenCols > 0 && c.RX >= d.ColOffset+screenCols {
		d.ColOffset = c.RX - screenCols + 1
	}
	if c.Y < d.RowOffset {
		d.RowOffset = c.Y
	}
	if screenRows > 0 && c.Y >= d.RowOffset+screenRows {
		d.RowOffset = c.Y - screenRows + 1
	}
}

// ViewportState returns the current offsets together with the given text area size.
func (d *Document) ViewportState(screenRows, screenCols int) ViewportState {
	return ViewportState{
		RowOffset:   d.RowOffset,
		ColOffset:   d.ColOffset,
		VisibleRows: screenRows,
		VisibleCols: screenCols,
	}
}
