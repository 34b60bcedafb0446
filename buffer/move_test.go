package buffer

import "testing"

func TestMoveCursor_HorizontalWraps(t *testing.T) {
	d := NewFromLines("ab", "cde")

	c := &Cursor{X: 0, Y: 1}
	d.MoveCursor(c, MoveLeft, 10, 10)
	if c.X != 2 || c.Y != 0 {
		t.Fatalf("left at col 0: cursor=(%d,%d), want (2,0)", c.X, c.Y)
	}

	d.MoveCursor(c, MoveRight, 10, 10)
	if c.X != 0 || c.Y != 1 {
		t.Fatalf("right at eol: cursor=(%d,%d), want (0,1)", c.X, c.Y)
	}

	c = &Cursor{}
	d.MoveCursor(c, MoveLeft, 10, 10)
	if c.X != 0 || c.Y != 0 {
		t.Fatalf("left at doc start: cursor=(%d,%d), want (0,0)", c.X, c.Y)
	}
}

func TestMoveCursor_VerticalClampsColumn(t *testing.T) {
	d := NewFromLines("a long line", "ab", "another long line")
	c := &Cursor{X: 9, Y: 0}

	d.MoveCursor(c, MoveDown, 10, 80)
	if c.X != 2 || c.Y != 1 {
		t.Fatalf("down to short line: cursor=(%d,%d), want (2,1)", c.X, c.Y)
	}

	d.MoveCursor(c, MoveDown, 10, 80)
	d.MoveCursor(c, MoveDown, 10, 80)
	if c.X != 0 || c.Y != 3 {
		t.Fatalf("down to virtual row: cursor=(%d,%d), want (0,3)", c.X, c.Y)
	}

	d.MoveCursor(c, MoveDown, 10, 80)
	if c.Y != 3 {
		t.Fatalf("down past virtual row: got row %d, want 3", c.Y)
	}

	d.MoveCursor(c, MoveUp, 10, 80)
	if c.X != 0 || c.Y != 2 {
		t.Fatalf("up: cursor=(%d,%d), want (0,2)", c.X, c.Y)
	}
}

func TestMoveCursor_HomeEnd(t *testing.T) {
	d := NewFromLines("short", "a line longer than the screen")
	c := &Cursor{X: 3}

	d.MoveCursor(c, MoveEnd, 10, 80)
	if c.X != 5 {
		t.Fatalf("end on short row: got %d, want 5", c.X)
	}
	d.MoveCursor(c, MoveHome, 10, 80)
	if c.X != 0 {
		t.Fatalf("home: got %d, want 0", c.X)
	}

	c.Y = 1
	d.MoveCursor(c, MoveEnd, 10, 10)
	if c.X != 9 {
		t.Fatalf("end on long row jumps to screen edge: got %d, want 9", c.X)
	}
}

func TestMoveCursor_Paging(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "line"
	}
	d := NewFromLines(lines...)
	c := &Cursor{}

	d.MoveCursor(c, MovePageDown, 10, 80)
	if c.Y != 19 {
		t.Fatalf("page down: got row %d, want 19", c.Y)
	}
	d.Scroll(c, 10, 80)
	if d.RowOffset != 10 {
		t.Fatalf("row offset: got %d, want 10", d.RowOffset)
	}

	d.MoveCursor(c, MovePageUp, 10, 80)
	if c.Y != 0 {
		t.Fatalf("page up: got row %d, want 0", c.Y)
	}

	c.Y = 45
	d.Scroll(c, 10, 80)
	d.MoveCursor(c, MovePageDown, 10, 80)
	if c.Y != 50 {
		t.Fatalf("page down near end: got row %d, want 50", c.Y)
	}
}

func TestMoveCursor_EmptyDocument(t *testing.T) {
	d := New()
	c := &Cursor{}
	for _, k := range []MoveKey{MoveLeft, MoveRight, MoveUp, MoveDown, MovePageUp, MovePageDown, MoveHome, MoveEnd} {
		d.MoveCursor(c, k, 5, 5)
		if c.X != 0 || c.Y != 0 {
			t.Fatalf("%s on empty document: cursor=(%d,%d)", k, c.X, c.Y)
		}
	}
}
