package buffer

// ClampCursor pulls c into the document: Y into [0, NumRows] and X into
// [0, length of row Y]. On the virtual row past the end X is 0.
func (d *Document) ClampCursor(c *Cursor) {
	c.Y = clampInt(c.Y, 0, len(d.rows))
	rowLen := 0
	if row := d.Row(c.Y); row != nil {
		rowLen = row.Len()
	}
	c.X = clampInt(c.X, 0, rowLen)
}

// InsertCharAtCursor inserts c at the cursor and advances it by one column.
//
// On the virtual row past the end a new empty row is appended first.
func (d *Document) InsertCharAtCursor(c *Cursor, ch byte) {
	d.ClampCursor(c)
	if c.Y == len(d.rows) {
		d.AppendRow(nil)
	}
	d.InsertChar(d.rows[c.Y], c.X, ch)
	c.X++
}

// InsertNewline splits the current row at the cursor and moves the cursor to
// the start of the following row.
func (d *Document) InsertNewline(c *Cursor) {
	d.ClampCursor(c)
	row := d.Row(c.Y)
	if row == nil || c.X == 0 {
		// Column 0: the current line is pushed down untouched.
		d.InsertRow(c.Y, nil)
	} else {
		d.InsertRow(c.Y+1, row.Text()[c.X:])
		row.truncate(c.X)
	}
	c.X = 0
	c.Y++
}

// DeleteCharAtCursor applies backspace semantics at the cursor.
//
// At column 0 the current row is joined onto the end of the previous one.
// Nothing happens on the virtual row or at the start of the document.
func (d *Document) DeleteCharAtCursor(c *Cursor) {
	d.ClampCursor(c)
	if c.Y == len(d.rows) || (c.X == 0 && c.Y == 0) {
		return
	}

	row := d.rows[c.Y]
	if c.X > 0 {
		d.DeleteChar(row, c.X-1)
		c.X--
		return
	}

	prev := d.rows[c.Y-1]
	c.X = prev.Len()
	d.AppendBytes(prev, row.Text())
	d.DeleteRow(c.Y)
	c.Y--
}
