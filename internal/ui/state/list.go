package state

import "github.com/atomicstack/tmenu/internal/catalog"

// List holds the selection state of the launcher: the full catalog, the
// filtered view derived from it, the search text, and the cursor into the view.
type List struct {
	Full           []catalog.Entry
	Items          []catalog.Entry
	Filter         string
	Cursor         int
	ViewportOffset int
}

// NewList constructs a List over the provided entries with an empty filter.
func NewList(entries []catalog.Entry) *List {
	l := &List{Full: CloneEntries(entries)}
	l.applyFilter()
	return l
}

// Current returns the entry under the cursor.
func (l *List) Current() (catalog.Entry, bool) {
	if len(l.Items) == 0 || l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return catalog.Entry{}, false
	}
	return l.Items[l.Cursor], true
}

// Next moves the cursor forward, wrapping from the last entry to the first.
func (l *List) Next() bool {
	n := len(l.Items)
	if n == 0 {
		return false
	}
	l.Cursor = (l.Cursor + 1) % n
	return true
}

// Previous moves the cursor backward, wrapping from the first entry to the last.
func (l *List) Previous() bool {
	n := len(l.Items)
	if n == 0 {
		return false
	}
	l.Cursor = (l.Cursor - 1 + n) % n
	return true
}

// CloneEntries produces a shallow copy of the provided entries.
func CloneEntries(entries []catalog.Entry) []catalog.Entry {
	dup := make([]catalog.Entry, len(entries))
	copy(dup, entries)
	return dup
}
