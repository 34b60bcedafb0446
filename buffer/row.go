package buffer

// TabStop is the width of a tab stop in render columns.
const TabStop = 8

// Row is one line of text without its trailing newline.
//
// render is derived from text and is rebuilt after every mutation of text.
type Row struct {
	text   []byte
	render []byte
}

func newRow(b []byte) *Row {
	r := &Row{text: append([]byte(nil), b...)}
	r.updateRender()
	return r
}

// Text returns the raw bytes of the row. The slice must not be modified.
func (r *Row) Text() []byte { return r.text }

// Render returns the tab-expanded bytes of the row. The slice must not be modified.
func (r *Row) Render() []byte { return r.render }

func (r *Row) Len() int { return len(r.text) }

func (r *Row) RenderLen() int { return len(r.render) }

func (r *Row) String() string { return string(r.text) }

func (r *Row) insertChar(at int, c byte) {
	if at < 0 || at > len(r.text) {
		at = len(r.text)
	}
	r.text = append(r.text, 0)
	copy(r.text[at+1:], r.text[at:])
	r.text[at] = c
	r.updateRender()
}

func (r *Row) deleteChar(at int) bool {
	if at < 0 || at >= len(r.text) {
		return false
	}
	r.text = append(r.text[:at], r.text[at+1:]...)
	r.updateRender()
	return true
}

func (r *Row) appendBytes(b []byte) {
	r.text = append(r.text, b...)
	r.updateRender()
}

func (r *Row) truncate(at int) {
	at = clampInt(at, 0, len(r.text))
	r.text = r.text[:at]
	r.updateRender()
}

func (r *Row) updateRender() {
	tabs := 0
	for _, c := range r.text {
		if c == '\t' {
			tabs++
		}
	}

	render := make([]byte, 0, len(r.text)+tabs*(TabStop-1))
	for _, c := range r.text {
		if c != '\t' {
			render = append(render, c)
			continue
		}
		render = append(render, ' ')
		for len(render)%TabStop != 0 {
			render = append(render, ' ')
		}
	}
	r.render = render
}
