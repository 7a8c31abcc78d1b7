// Package terminal reports the size of the attached terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Size is a terminal size in character cells
type Size struct {
	Width  int
	Height int
}

// SizeOf returns the size of the terminal behind fd.
// Falls back to the defaults if fd is not a terminal.
func SizeOf(fd int) Size {
	if !term.IsTerminal(fd) {
		return Size{Width: DefaultWidth, Height: DefaultHeight}
	}
	width, height, err := term.GetSize(fd)
	if err != nil || width <= 0 || height <= 0 {
		return Size{Width: DefaultWidth, Height: DefaultHeight}
	}
	return Size{Width: width, Height: height}
}

// GetSize returns the current stdout terminal size.
func GetSize() Size {
	return SizeOf(int(os.Stdout.Fd()))
}

// IsTerminal reports whether stdout is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Columns returns how many blocks of blockWidth cells fit across the terminal,
// at least one.
func (s Size) Columns(blockWidth int) int {
	if blockWidth <= 0 {
		return 1
	}
	n := s.Width / blockWidth
	if n < 1 {
		return 1
	}
	return n
}
