package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/atomicstack/tmenu/internal/catalog"
	"github.com/atomicstack/tmenu/internal/format/table"
	"github.com/atomicstack/tmenu/internal/launcher"
	"github.com/atomicstack/tmenu/internal/logging"
	"github.com/atomicstack/tmenu/internal/logging/events"
	"github.com/atomicstack/tmenu/internal/terminal"
	"github.com/atomicstack/tmenu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gofrs/flock"
)

// ErrAlreadyRunning is returned when the single-instance lock is held.
var ErrAlreadyRunning = errors.New("another tmenu instance is already running")

// Config describes user-provided application options.
type Config struct {
	Directories    []string
	Shell          string
	Wait           bool
	Print          bool
	List           bool
	Width          int
	Height         int
	SingleInstance bool
	LockPath       string
}

type program interface {
	Run() (tea.Model, error)
}

type entryLauncher interface {
	Launch(entry catalog.Entry) error
}

type runner struct {
	cfg        Config
	out        io.Writer
	errOut     io.Writer
	capture    func() *terminal.Guard
	newProgram func(tea.Model) program
	launch     entryLauncher
}

// Run builds the catalog, lets the user pick an entry and launches it.
func Run(cfg Config) error {
	return newRunner(cfg).run()
}

func newRunner(cfg Config) *runner {
	return &runner{
		cfg:    cfg,
		out:    os.Stdout,
		errOut: os.Stderr,
		capture: func() *terminal.Guard {
			return terminal.Capture(os.Stdin, os.Stdout)
		},
		newProgram: func(m tea.Model) program {
			return tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithoutCatchPanics())
		},
		launch: launcher.New(cfg.Shell, cfg.Wait),
	}
}

func (r *runner) run() error {
	if r.cfg.SingleInstance {
		unlock, err := acquireLock(r.cfg.LockPath)
		if err != nil {
			return err
		}
		defer unlock()
	}

	c, err := catalog.BuildAll(r.cfg.Directories...)
	if err != nil {
		return err
	}
	if r.cfg.List {
		return r.list(c)
	}

	entry, ok, err := r.pick(c)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if r.cfg.Print {
		_, err := fmt.Fprintln(r.out, launcher.CommandLine(entry.Command))
		return err
	}
	if err := r.launch.Launch(entry); err != nil {
		logging.Error(err)
		fmt.Fprintf(r.errOut, "Failed to launch %s: %v\n", entry.Name, err)
	}
	return nil
}

// pick runs the interactive program. The terminal is restored before pick
// returns on every path, including a panic unwinding through it.
func (r *runner) pick(c *catalog.Catalog) (catalog.Entry, bool, error) {
	guard := r.capture()
	defer guard.Release()

	model := ui.NewModel(c, r.cfg.Width, r.cfg.Height)
	final, err := r.newProgram(model).Run()
	if rerr := guard.Release(); rerr != nil {
		logging.Error(fmt.Errorf("restore terminal: %w", rerr))
	}
	if errors.Is(err, tea.ErrProgramKilled) {
		return catalog.Entry{}, false, nil
	}
	if err != nil {
		return catalog.Entry{}, false, err
	}
	if updated, ok := final.(*ui.Model); ok {
		model = updated
	}
	entry, ok := model.Selected()
	return entry, ok, nil
}

func (r *runner) list(c *catalog.Catalog) error {
	rows := make([][]string, 0, c.Len())
	for _, entry := range c.Entries() {
		rows = append(rows, []string{entry.Name, entry.Description, launcher.CommandLine(entry.Command)})
	}
	for _, line := range table.WithHeader([]string{"NAME", "DESCRIPTION", "COMMAND"}, rows, nil) {
		if _, err := fmt.Fprintln(r.out, line); err != nil {
			return err
		}
	}
	return nil
}

// DefaultLockPath is used for the single-instance lock when none is configured.
func DefaultLockPath() string {
	return filepath.Join(xdg.RuntimeDir, "tmenu.lock")
}

func acquireLock(path string) (func(), error) {
	if path == "" {
		path = DefaultLockPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	fl := flock.New(path)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	events.App.Lock(path, locked)
	if !locked {
		return nil, ErrAlreadyRunning
	}
	return func() {
		if err := fl.Unlock(); err != nil {
			logging.Error(fmt.Errorf("unlock %s: %w", path, err))
		}
	}, nil
}
