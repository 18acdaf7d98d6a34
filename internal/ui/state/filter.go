package state

import (
	"strings"

	"github.com/atomicstack/tmenu/internal/catalog"
	"golang.org/x/text/cases"
)

// SetFilter replaces the search text and recomputes the view.
func (l *List) SetFilter(query string) {
	l.Filter = query
	l.applyFilter()
}

// AppendFilter adds text to the end of the search text.
func (l *List) AppendFilter(text string) bool {
	if text == "" {
		return false
	}
	l.SetFilter(l.Filter + text)
	return true
}

// DeleteFilterRune removes the last rune of the search text.
func (l *List) DeleteFilterRune() bool {
	runes := []rune(l.Filter)
	if len(runes) == 0 {
		return false
	}
	l.SetFilter(string(runes[:len(runes)-1]))
	return true
}

// ClearFilter empties the search text.
func (l *List) ClearFilter() bool {
	if l.Filter == "" {
		return false
	}
	l.SetFilter("")
	return true
}

// applyFilter recomputes Items and re-derives the cursor modulo the new view
// length so it is always a valid index (0 when the view is empty).
func (l *List) applyFilter() {
	l.Items = FilterEntries(l.Full, l.Filter)
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	l.Cursor %= n
	if l.ViewportOffset > n-1 {
		l.ViewportOffset = 0
	}
}

// FilterEntries returns the entries whose name, or non-empty description,
// contains query case-insensitively. Order is preserved and an empty query
// returns every entry.
func FilterEntries(entries []catalog.Entry, query string) []catalog.Entry {
	if query == "" {
		return CloneEntries(entries)
	}
	fold := cases.Fold()
	needle := fold.String(query)
	filtered := make([]catalog.Entry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(fold.String(entry.Name), needle) {
			filtered = append(filtered, entry)
			continue
		}
		if entry.Description != "" && strings.Contains(fold.String(entry.Description), needle) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}
