package terminal

import (
	"errors"
	"io"
	"os"
	"sync"

	"github.com/atomicstack/tmenu/internal/logging/events"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// Guard owns the obligation to put the terminal back the way it was found.
// Release runs the restore action at most once, so it can be deferred and
// also called explicitly on the success path.
type Guard struct {
	once    sync.Once
	restore func() error
	err     error
}

// NewGuard wraps restore. A nil restore produces a guard that does nothing.
func NewGuard(restore func() error) *Guard {
	return &Guard{restore: restore}
}

// Release restores the terminal on the first call and returns the error of
// that attempt on every call.
func (g *Guard) Release() error {
	if g == nil {
		return nil
	}
	g.once.Do(func() {
		if g.restore != nil {
			g.err = g.restore()
		}
		events.Terminal.Restore(g.err)
	})
	return g.err
}

// resetSequence leaves the alternate screen, stops mouse reporting and shows
// the cursor again.
const resetSequence = ansi.ResetAltScreenSaveCursorMode +
	ansi.ResetButtonEventMouseMode +
	ansi.ResetSgrExtMouseMode +
	ansi.ShowCursor

// Capture snapshots the mode of in and returns a guard that writes the reset
// sequence to out and restores that mode. When in is not a terminal the guard
// is a no-op.
func Capture(in *os.File, out io.Writer) *Guard {
	if in == nil {
		events.Terminal.Capture(false)
		return NewGuard(nil)
	}
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		events.Terminal.Capture(false)
		return NewGuard(nil)
	}
	state, err := term.GetState(fd)
	if err != nil {
		events.Terminal.Capture(false)
		return NewGuard(nil)
	}
	events.Terminal.Capture(true)
	return NewGuard(func() error {
		var errs []error
		if out != nil {
			if _, err := io.WriteString(out, resetSequence); err != nil {
				errs = append(errs, err)
			}
		}
		if err := term.Restore(fd, state); err != nil {
			errs = append(errs, err)
		}
		return errors.Join(errs...)
	})
}
