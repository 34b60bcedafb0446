// Package tty checks that atto runs on an interactive terminal.
package tty

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin or stdout is not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// Size is a terminal size in cells.
type Size struct {
	Width, Height int
}

// Probe verifies that in and out are terminals and returns the size of out.
func Probe(in, out *os.File) (Size, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return Size{}, fmt.Errorf("enable raw mode on %s: %w", in.Name(), ErrNotTerminal)
	}
	if !term.IsTerminal(int(out.Fd())) {
		return Size{}, fmt.Errorf("draw on %s: %w", out.Name(), ErrNotTerminal)
	}
	w, h, err := term.GetSize(int(out.Fd()))
	if err != nil {
		return Size{}, fmt.Errorf("get window size: %w", err)
	}
	if w == 0 {
		return Size{}, fmt.Errorf("get window size: zero width")
	}
	return Size{Width: w, Height: h}, nil
}
