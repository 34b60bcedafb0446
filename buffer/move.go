package buffer

// MoveCursor applies a navigation key to c.
//
// screenRows and screenCols are the text area dimensions; they drive page
// moves and the end key. The cursor is clamped into the document first, and
// after every move X is clamped to the length of the destination row (0 on
// the virtual row past the end).
func (d *Document) MoveCursor(c *Cursor, key MoveKey, screenRows, screenCols int) {
	d.ClampCursor(c)
	switch key {
	case MovePageUp, MovePageDown:
		step := MoveUp
		if key == MovePageUp {
			c.Y = clampInt(d.RowOffset, 0, len(d.rows))
		} else {
			step = MoveDown
			c.Y = clampInt(d.RowOffset+screenRows-1, 0, len(d.rows))
		}
		for i := 0; i < screenRows; i++ {
			d.moveOnce(c, step, screenCols)
		}
	default:
		d.moveOnce(c, key, screenCols)
	}
}

func (d *Document) moveOnce(c *Cursor, key MoveKey, screenCols int) {
	row := d.Row(c.Y)

	switch key {
	case MoveLeft:
		if c.X > 0 {
			c.X--
		} else if c.Y > 0 {
			c.Y--
			c.X = d.rows[c.Y].Len()
		}
	case MoveRight:
		if row != nil && c.X < row.Len() {
			c.X++
		} else if row != nil && c.X == row.Len() {
			c.Y++
			c.X = 0
		}
	case MoveUp:
		if c.Y > 0 {
			c.Y--
		}
	case MoveDown:
		if c.Y < len(d.rows) {
			c.Y++
		}
	case MoveHome:
		c.X = 0
	case MoveEnd:
		// Jumps to the right edge of the viewport; the clamp below pulls it
		// back onto shorter rows.
		c.X = screenCols - 1
	}

	d.ClampCursor(c)
}
