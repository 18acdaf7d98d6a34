package launcher

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/atomicstack/tmenu/internal/catalog"
	"github.com/atomicstack/tmenu/internal/logging/events"
)

// DefaultShell interprets launch commands when none is configured.
const DefaultShell = "sh"

// LaunchError reports an entry whose command could not be run.
type LaunchError struct {
	Name    string
	Command string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch %s (%s): %v", e.Name, e.Command, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// Launcher runs catalog entries through a shell.
type Launcher struct {
	Shell string
	// Wait blocks until the child exits instead of releasing it.
	Wait bool
}

// New returns a Launcher for shell, falling back to DefaultShell.
func New(shell string, wait bool) *Launcher {
	if strings.TrimSpace(shell) == "" {
		shell = DefaultShell
	}
	return &Launcher{Shell: shell, Wait: wait}
}

// Launch runs entry's command line as `<shell> -c <line>` with every standard
// stream attached to the null device. The child gets its own session so it
// outlives the launcher.
func (l *Launcher) Launch(entry catalog.Entry) error {
	line := CommandLine(entry.Command)
	events.Launch.Start(entry.Name, line)

	shell := l.Shell
	if shell == "" {
		shell = DefaultShell
	}
	cmd := exec.Command(shell, "-c", line)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	detach(cmd)

	if err := cmd.Start(); err != nil {
		return l.fail(entry, line, err)
	}
	events.Launch.Spawned(entry.Name, cmd.Process.Pid)

	if l.Wait {
		if err := cmd.Wait(); err != nil {
			return l.fail(entry, line, err)
		}
		return nil
	}
	if err := cmd.Process.Release(); err != nil {
		return l.fail(entry, line, err)
	}
	return nil
}

func (l *Launcher) fail(entry catalog.Entry, line string, err error) error {
	launchErr := &LaunchError{Name: entry.Name, Command: line, Err: err}
	events.Launch.Error(launchErr)
	return launchErr
}

// CommandLine removes the desktop-entry field codes (%f, %U and friends) from
// an Exec value and turns %% into a literal percent sign.
func CommandLine(execLine string) string {
	var b strings.Builder
	runes := []rune(execLine)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '%' || i+1 >= len(runes) {
			b.WriteRune(r)
			continue
		}
		next := runes[i+1]
		switch {
		case next == '%':
			b.WriteRune('%')
			i++
		case strings.ContainsRune(fieldCodes, next):
			i++
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

const fieldCodes = "fFuUdDnNickvm"
