package tui

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ErrSubsystemInit is returned when the terminal cannot host the game.
var ErrSubsystemInit = errors.New("subsystem initialization failed")

// Minimum terminal size the play field is scaled onto.
const (
	MinWidth  = 40
	MinHeight = 12
)

// CheckTerminal verifies that f is a terminal of at least the minimum size and
// returns its size.
func CheckTerminal(f *os.File) (width, height int, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, fmt.Errorf("%w: %s is not a terminal", ErrSubsystemInit, f.Name())
	}
	width, height, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: read terminal size: %w", ErrSubsystemInit, err)
	}
	if width < MinWidth || height < MinHeight {
		return 0, 0, fmt.Errorf("%w: terminal is %dx%d, need at least %dx%d",
			ErrSubsystemInit, width, height, MinWidth, MinHeight)
	}
	return width, height, nil
}
