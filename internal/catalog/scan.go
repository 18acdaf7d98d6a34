package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/atomicstack/tmenu/internal/desktop"
	"github.com/atomicstack/tmenu/internal/logging/events"
)

// ScanError reports that a shortcut directory could not be listed.
type ScanError struct {
	Dir string
	Err error
}

func (e *ScanError) Error() string {
	if e.Dir == "" {
		return fmt.Sprintf("scan applications: %v", e.Err)
	}
	return fmt.Sprintf("scan %s: %v", e.Dir, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// DefaultDirs lists the applications directories in XDG precedence order, the
// user's own directory first.
func DefaultDirs() []string {
	dirs := make([]string, 0, len(xdg.DataDirs)+1)
	seen := make(map[string]struct{}, len(xdg.DataDirs)+1)
	for _, base := range append([]string{xdg.DataHome}, xdg.DataDirs...) {
		if strings.TrimSpace(base) == "" {
			continue
		}
		dir := filepath.Join(base, "applications")
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	return dirs
}

// Build scans a single directory. Files that fail to parse, lack Name or Exec,
// or are hidden are skipped; only a directory that cannot be listed is an
// error.
func Build(dir string) (*Catalog, error) {
	c := newCatalog()
	if err := c.scan(dir); err != nil {
		return nil, err
	}
	events.Catalog.Built(c.Len(), []string{dir})
	return c, nil
}

// BuildAll scans dirs in order into one catalog. A directory that cannot be
// listed is skipped; a ScanError is returned only when none could be.
func BuildAll(dirs ...string) (*Catalog, error) {
	if len(dirs) == 0 {
		return nil, &ScanError{Err: errors.New("no application directories configured")}
	}
	c := newCatalog()
	var failures []error
	for _, dir := range dirs {
		if err := c.scan(dir); err != nil {
			events.Catalog.DirError(dir, err)
			failures = append(failures, err)
		}
	}
	if len(failures) == len(dirs) {
		if len(failures) == 1 {
			return nil, failures[0]
		}
		return nil, &ScanError{Err: errors.Join(failures...)}
	}
	events.Catalog.Built(c.Len(), dirs)
	return c, nil
}

func (c *Catalog) scan(dir string) error {
	events.Catalog.Scan(dir)
	files, err := os.ReadDir(dir)
	if err != nil {
		return &ScanError{Dir: dir, Err: err}
	}
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), desktop.Suffix) {
			continue
		}
		path := filepath.Join(dir, file.Name())
		entry, reason := load(path)
		if reason != "" {
			events.Catalog.Skip(path, reason)
			continue
		}
		if !c.add(entry) {
			events.Catalog.Skip(path, "duplicate name "+entry.Name)
		}
	}
	return nil
}

// load returns the catalog entry for path, or the reason it was skipped.
func load(path string) (Entry, string) {
	parsed, err := desktop.Parse(path)
	if err != nil {
		return Entry{}, err.Error()
	}
	if err := parsed.Validate(); err != nil {
		return Entry{}, err.Error()
	}
	if !parsed.Visible() {
		return Entry{}, "hidden"
	}
	return Entry{
		Name:        parsed.Name,
		Description: parsed.GenericName,
		Command:     parsed.Exec,
		Source:      path,
	}, ""
}
