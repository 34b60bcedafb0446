package buffer

import "strings"

// Document is the ordered set of rows being edited plus its viewport and
// save state.
type Document struct {
	rows     []*Row
	filename string
	dirty    int

	// RowOffset and ColOffset are the top-left corner of the viewport, as a
	// row index and a render column.
	RowOffset int
	ColOffset int
}

// New returns an empty document with no associated file.
func New() *Document {
	return &Document{}
}

// NewFromLines returns a clean document holding the given lines.
func NewFromLines(lines ...string) *Document {
	d := New()
	for _, l := range lines {
		d.rows = append(d.rows, newRow([]byte(l)))
	}
	return d
}

func (d *Document) NumRows() int { return len(d.rows) }

// Row returns row at, or nil when at is outside [0, NumRows).
func (d *Document) Row(at int) *Row {
	if at < 0 || at >= len(d.rows) {
		return nil
	}
	return d.rows[at]
}

// Lines returns the text of every row.
func (d *Document) Lines() []string {
	out := make([]string, 0, len(d.rows))
	for _, r := range d.rows {
		out = append(out, r.String())
	}
	return out
}

// Text returns the rows joined by '\n' without a trailing newline.
func (d *Document) Text() string {
	return strings.Join(d.Lines(), "\n")
}

func (d *Document) Filename() string { return d.filename }

func (d *Document) HasFilename() bool { return d.filename != "" }

// SetFilename sets the file Save writes to.
func (d *Document) SetFilename(name string) { d.filename = name }

// Dirty returns the number of mutations since the last load or save.
func (d *Document) Dirty() int { return d.dirty }

func (d *Document) IsDirty() bool { return d.dirty > 0 }

// InsertRow inserts a row holding a copy of b at index at, clamped into
// [0, NumRows].
func (d *Document) InsertRow(at int, b []byte) {
	at = clampInt(at, 0, len(d.rows))
	d.rows = append(d.rows, nil)
	copy(d.rows[at+1:], d.rows[at:])
	d.rows[at] = newRow(b)
	d.dirty++
}

// AppendRow inserts a row at the end of the document.
func (d *Document) AppendRow(b []byte) {
	d.InsertRow(len(d.rows), b)
}

// DeleteRow removes row at. Out-of-range indices are ignored.
func (d *Document) DeleteRow(at int) {
	if at < 0 || at >= len(d.rows) {
		return
	}
	copy(d.rows[at:], d.rows[at+1:])
	d.rows[len(d.rows)-1] = nil
	d.rows = d.rows[:len(d.rows)-1]
	d.dirty++
}

// InsertChar inserts c into row at column at. Columns past the end of the row
// append.
func (d *Document) InsertChar(row *Row, at int, c byte) {
	if row == nil {
		return
	}
	row.insertChar(at, c)
	d.dirty++
}

// DeleteChar removes the byte at column at of row. Out-of-range columns are
// ignored.
func (d *Document) DeleteChar(row *Row, at int) {
	if row == nil {
		return
	}
	if row.deleteChar(at) {
		d.dirty++
	}
}

// AppendBytes concatenates b onto the end of row.
func (d *Document) AppendBytes(row *Row, b []byte) {
	if row == nil {
		return
	}
	row.appendBytes(b)
	d.dirty++
}
