// Package catalog builds the in-memory list of launchable applications from
// directories of desktop entry files.
package catalog

// Entry is one launchable application.
type Entry struct {
	Name        string
	Description string
	Command     string
	Source      string
}

// Label is the text shown for the entry in the list.
func (e Entry) Label() string {
	if e.Description == "" {
		return e.Name
	}
	return e.Name + " [" + e.Description + "]"
}

// Eligible reports whether the entry can be offered at all.
func (e Entry) Eligible() bool {
	return e.Name != "" && e.Command != ""
}

// Catalog is the ordered, name-unique set of entries discovered at startup.
// It has no exported mutators; once built it does not change.
type Catalog struct {
	entries []Entry
	names   map[string]int
}

// New builds a catalog from entries, applying the same rules as a directory
// scan: ineligible entries are dropped and the first entry for a name wins.
func New(entries ...Entry) *Catalog {
	c := newCatalog()
	for _, e := range entries {
		c.add(e)
	}
	return c
}

func newCatalog() *Catalog {
	return &Catalog{names: make(map[string]int)}
}

func (c *Catalog) add(e Entry) bool {
	if !e.Eligible() {
		return false
	}
	if _, dup := c.names[e.Name]; dup {
		return false
	}
	c.names[e.Name] = len(c.entries)
	c.entries = append(c.entries, e)
	return true
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Entries returns a copy of the entries in scan order.
func (c *Catalog) Entries() []Entry {
	if c == nil || len(c.entries) == 0 {
		return nil
	}
	dup := make([]Entry, len(c.entries))
	copy(dup, c.entries)
	return dup
}

// Lookup finds an entry by its exact name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	idx, ok := c.names[name]
	if !ok {
		return Entry{}, false
	}
	return c.entries[idx], true
}
