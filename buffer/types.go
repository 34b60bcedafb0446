package buffer

// Cursor points into the document by logical column (X) and row (Y).
//
// RX is the render column of the cursor; it is derived by Document.Scroll.
// Y may equal Document.NumRows, denoting the virtual empty line past the end.
type Cursor struct {
	X, Y int
	RX   int
}

// MoveKey identifies a navigation key understood by Document.MoveCursor.
type MoveKey int

const (
	MoveLeft MoveKey = iota
	MoveRight
	MoveUp
	MoveDown
	MovePageUp
	MovePageDown
	MoveHome
	MoveEnd
)

func (k MoveKey) String() string {
	switch k {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MovePageUp:
		return "pgup"
	case MovePageDown:
		return "pgdown"
	case MoveHome:
		return "home"
	case MoveEnd:
		return "end"
	default:
		return "unknown"
	}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
