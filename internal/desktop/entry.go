// Package desktop reads the subset of freedesktop.org desktop entry files the
// launcher consumes.
package desktop

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

const (
	// Suffix identifies shortcut files inside an applications directory.
	Suffix = ".desktop"
	// Section is the group holding the launcher-relevant keys.
	Section = "Desktop Entry"
)

var (
	ErrNoSection    = errors.New("missing [" + Section + "] section")
	ErrMissingField = errors.New("missing required field")
)

var loadOptions = ini.LoadOptions{
	IgnoreInlineComment:     true,
	IgnoreContinuation:      true,
	PreserveSurroundedQuote: true,
	SkipUnrecognizableLines: true,
	KeyValueDelimiters:      "=",
}

// Entry holds the keys of the [Desktop Entry] group.
type Entry struct {
	Type        string
	Name        string
	GenericName string
	Exec        string
	NoDisplay   bool
	Hidden      bool
}

// Visible reports whether the entry should be offered to the user.
func (e Entry) Visible() bool {
	return !e.NoDisplay && !e.Hidden
}

// Validate reports ErrMissingField when Name or Exec is empty.
func (e Entry) Validate() error {
	switch {
	case e.Name == "":
		return fmt.Errorf("%w: Name", ErrMissingField)
	case e.Exec == "":
		return fmt.Errorf("%w: Exec", ErrMissingField)
	}
	return nil
}

// Parse loads a desktop entry from source, which may be a file path, a byte
// slice, or an io.Reader.
func Parse(source interface{}) (Entry, error) {
	f, err := ini.LoadSources(loadOptions, source)
	if err != nil {
		return Entry{}, fmt.Errorf("parse desktop entry: %w", err)
	}
	sec, err := f.GetSection(Section)
	if err != nil {
		return Entry{}, ErrNoSection
	}
	return Entry{
		Type:        value(sec, "Type"),
		Name:        value(sec, "Name"),
		GenericName: value(sec, "GenericName"),
		Exec:        value(sec, "Exec"),
		NoDisplay:   flag(sec, "NoDisplay"),
		Hidden:      flag(sec, "Hidden"),
	}, nil
}

func value(sec *ini.Section, key string) string {
	if !sec.HasKey(key) {
		return ""
	}
	return strings.TrimSpace(sec.Key(key).String())
}

// flag treats only the literal "true" as set; anything else, including a
// missing key, is false.
func flag(sec *ini.Section, key string) bool {
	return value(sec, key) == "true"
}
