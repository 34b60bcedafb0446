package buffer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// FilePermissions is the mode used when Save creates a file.
const FilePermissions = 0644

// ErrNoFilename is returned by Save when the document has no associated file.
var ErrNoFilename = errors.New("buffer: no filename")

// LoadFile opens path, records it as the document's filename and appends its
// lines via Load.
func (d *Document) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	d.filename = path
	if err := d.Load(f); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

// Load appends every line of r as a row, stripping trailing '\r' and '\n'.
//
// A read error aborts the load; rows appended before the error are kept.
// On success the dirty counter is reset.
func (d *Document) Load(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			d.AppendRow(trimEOL(line))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
	}
	d.dirty = 0
	return nil
}

func trimEOL(line []byte) []byte {
	n := len(line)
	for n > 0 && (line[n-1] == '\r' || line[n-1] == '\n') {
		n--
	}
	return line[:n]
}

// Serialize returns every row followed by a single '\n', and the buffer length.
func (d *Document) Serialize() ([]byte, int) {
	size := 0
	for _, r := range d.rows {
		size += r.Len() + 1
	}
	var buf bytes.Buffer
	buf.Grow(size)
	for _, r := range d.rows {
		buf.Write(r.Text())
		buf.WriteByte('\n')
	}
	return buf.Bytes(), buf.Len()
}

// Save writes the serialized document to its filename, truncating the file to
// the exact serialized length. It returns the number of bytes written.
//
// The dirty counter is reset only after a complete write.
func (d *Document) Save() (int, error) {
	if d.filename == "" {
		return 0, ErrNoFilename
	}

	buf, size := d.Serialize()
	f, err := os.OpenFile(d.filename, os.O_RDWR|os.O_CREATE, FilePermissions)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", d.filename, err)
	}
	n, err := d.writeTo(f, buf, size)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close %s: %w", d.filename, cerr)
	}
	if err != nil {
		return n, err
	}

	d.dirty = 0
	return n, nil
}

func (d *Document) writeTo(f *os.File, buf []byte, size int) (int, error) {
	if err := f.Truncate(int64(size)); err != nil {
		return 0, fmt.Errorf("truncate %s: %w", d.filename, err)
	}
	n, err := f.Write(buf)
	if err != nil {
		return n, fmt.Errorf("write %s: %w", d.filename, err)
	}
	if n != size {
		return n, fmt.Errorf("write %s: %w", d.filename, io.ErrShortWrite)
	}
	return n, nil
}
