package buffer

import (
	"fmt"
	"testing"
)

func assertLines(t *testing.T, d *Document, want ...string) {
	t.Helper()
	if got := fmt.Sprintf("%q", d.Lines()); got != fmt.Sprintf("%q", want) {
		t.Fatalf("lines: got %s, want %q", got, want)
	}
}

func TestInsertNewline_SplitsAtCursor(t *testing.T) {
	const text = "hello world"
	for col := 1; col <= len(text); col++ {
		d := NewFromLines("before", text, "after")
		c := &Cursor{X: col, Y: 1}

		d.InsertNewline(c)

		assertLines(t, d, "before", text[:col], text[col:], "after")
		if c.X != 0 || c.Y != 2 {
			t.Fatalf("col %d: cursor=(%d,%d), want (0,2)", col, c.X, c.Y)
		}
		if !d.IsDirty() {
			t.Fatalf("col %d: expected dirty", col)
		}
	}
}

func TestInsertNewline_AtColumnZeroPushesLineDown(t *testing.T) {
	d := NewFromLines("abc")
	c := &Cursor{}

	d.InsertNewline(c)

	assertLines(t, d, "", "abc")
	if c.X != 0 || c.Y != 1 {
		t.Fatalf("cursor=(%d,%d), want (0,1)", c.X, c.Y)
	}
}

func TestInsertNewline_OnVirtualRow(t *testing.T) {
	d := NewFromLines("abc")
	c := &Cursor{Y: 1}

	d.InsertNewline(c)

	assertLines(t, d, "abc", "")
	if c.Y != 2 {
		t.Fatalf("cursor row: got %d, want 2", c.Y)
	}
}

func TestDeleteCharAtCursor_DeletesLeft(t *testing.T) {
	d := NewFromLines("abc")
	c := &Cursor{X: 2}

	d.DeleteCharAtCursor(c)

	assertLines(t, d, "ac")
	if c.X != 1 || c.Y != 0 {
		t.Fatalf("cursor=(%d,%d), want (1,0)", c.X, c.Y)
	}
}

func TestDeleteCharAtCursor_JoinsBackward(t *testing.T) {
	d := NewFromLines("one", "two", "three")
	c := &Cursor{X: 0, Y: 2}

	d.DeleteCharAtCursor(c)

	assertLines(t, d, "one", "twothree")
	if c.X != 3 || c.Y != 1 {
		t.Fatalf("cursor=(%d,%d), want (3,1)", c.X, c.Y)
	}
	if d.NumRows() != 2 {
		t.Fatalf("rows: got %d, want 2", d.NumRows())
	}
}

func TestDeleteCharAtCursor_Noops(t *testing.T) {
	cases := []struct {
		name   string
		cursor Cursor
	}{
		{name: "document start", cursor: Cursor{X: 0, Y: 0}},
		{name: "virtual row", cursor: Cursor{X: 0, Y: 2}},
	}
	for _, tc := range cases {
		d := NewFromLines("ab", "cd")
		c := tc.cursor

		d.DeleteCharAtCursor(&c)

		assertLines(t, d, "ab", "cd")
		if c != tc.cursor {
			t.Fatalf("%s: cursor moved to %+v", tc.name, c)
		}
		if d.IsDirty() {
			t.Fatalf("%s: expected clean document", tc.name)
		}
	}
}

func TestInsertCharAtCursor(t *testing.T) {
	d := New()
	c := &Cursor{}

	for _, ch := range []byte("ab") {
		d.InsertCharAtCursor(c, ch)
	}
	c.X = 1
	d.InsertCharAtCursor(c, 'X')

	assertLines(t, d, "aXb")
	if c.X != 2 || c.Y != 0 {
		t.Fatalf("cursor=(%d,%d), want (2,0)", c.X, c.Y)
	}
}

func TestInsertCharAtCursor_AppendsRowPastEnd(t *testing.T) {
	d := NewFromLines("first")
	c := &Cursor{Y: 1}

	d.InsertCharAtCursor(c, 'z')

	assertLines(t, d, "first", "z")
	if c.X != 1 || c.Y != 1 {
		t.Fatalf("cursor=(%d,%d), want (1,1)", c.X, c.Y)
	}
}

func TestCursorOperations_ClampOutOfRangeCursors(t *testing.T) {
	cases := []struct {
		name   string
		lines  []string
		cursor Cursor
		op     func(d *Document, c *Cursor)
		want   []string
		wantC  Cursor
	}{
		{
			name:   "insert above document",
			lines:  []string{"ab"},
			cursor: Cursor{X: 1, Y: -1},
			op:     func(d *Document, c *Cursor) { d.InsertCharAtCursor(c, 'x') },
			want:   []string{"axb"},
			wantC:  Cursor{X: 2, Y: 0},
		},
		{
			name:   "insert far below document",
			lines:  []string{"ab"},
			cursor: Cursor{X: 7, Y: 9},
			op:     func(d *Document, c *Cursor) { d.InsertCharAtCursor(c, 'x') },
			want:   []string{"ab", "x"},
			wantC:  Cursor{X: 1, Y: 1},
		},
		{
			name:   "backspace past end of empty row",
			lines:  []string{""},
			cursor: Cursor{X: 3, Y: 0},
			op: func(d *Document, c *Cursor) {
				d.DeleteCharAtCursor(c)
				d.DeleteCharAtCursor(c)
			},
			want:  []string{""},
			wantC: Cursor{X: 0, Y: 0},
		},
		{
			name:   "backspace with negative column",
			lines:  []string{"ab", "cd"},
			cursor: Cursor{X: -4, Y: 1},
			op:     func(d *Document, c *Cursor) { d.DeleteCharAtCursor(c) },
			want:   []string{"abcd"},
			wantC:  Cursor{X: 2, Y: 0},
		},
		{
			name:   "newline past end of row",
			lines:  []string{"ab"},
			cursor: Cursor{X: 10, Y: 0},
			op:     func(d *Document, c *Cursor) { d.InsertNewline(c) },
			want:   []string{"ab", ""},
			wantC:  Cursor{X: 0, Y: 1},
		},
		{
			name:   "left far below document",
			lines:  []string{"abc"},
			cursor: Cursor{X: 0, Y: 5},
			op:     func(d *Document, c *Cursor) { d.MoveCursor(c, MoveLeft, 10, 10) },
			want:   []string{"abc"},
			wantC:  Cursor{X: 3, Y: 0},
		},
		{
			name:   "up with negative row",
			lines:  []string{"abc", "d"},
			cursor: Cursor{X: 2, Y: -3},
			op:     func(d *Document, c *Cursor) { d.MoveCursor(c, MoveUp, 10, 10) },
			want:   []string{"abc", "d"},
			wantC:  Cursor{X: 2, Y: 0},
		},
	}
	for _, tc := range cases {
		d := NewFromLines(tc.lines...)
		c := tc.cursor

		tc.op(d, &c)

		if got := fmt.Sprintf("%q", d.Lines()); got != fmt.Sprintf("%q", tc.want) {
			t.Fatalf("%s: lines %s, want %q", tc.name, got, tc.want)
		}
		if c.X != tc.wantC.X || c.Y != tc.wantC.Y {
			t.Fatalf("%s: cursor=(%d,%d), want (%d,%d)", tc.name, c.X, c.Y, tc.wantC.X, tc.wantC.Y)
		}
	}
}

func TestClampCursor(t *testing.T) {
	d := NewFromLines("abc", "")
	cases := []struct {
		in, want Cursor
	}{
		{in: Cursor{X: -1, Y: -1}, want: Cursor{X: 0, Y: 0}},
		{in: Cursor{X: 9, Y: 0}, want: Cursor{X: 3, Y: 0}},
		{in: Cursor{X: 9, Y: 1}, want: Cursor{X: 0, Y: 1}},
		{in: Cursor{X: 4, Y: 9}, want: Cursor{X: 0, Y: 2}},
	}
	for _, tc := range cases {
		c := tc.in
		d.ClampCursor(&c)
		if c.X != tc.want.X || c.Y != tc.want.Y {
			t.Fatalf("ClampCursor(%+v): got (%d,%d), want (%d,%d)", tc.in, c.X, c.Y, tc.want.X, tc.want.Y)
		}
	}
}
