// Package ui contains the Bubble Tea program that lets the user pick an
// application from the catalog.
//
// Message flow:
//   - Bubble Tea blocks for the next event and invokes Model.Update with it.
//   - Update routes the message through a typed handler registry. Key presses
//     are dispatched on the current Mode: in ModeBrowsing they move the cursor,
//     open the search box, select or quit; in ModeEditing printable keys edit
//     the tail of the search text and the arrow keys still move the cursor.
//   - After every handler the viewport is resynchronised so the cursor row is
//     on screen, then the runtime renders View exactly once.
//
// State ownership:
//   - The catalog, filtered view, search text and cursor live in
//     internal/ui/state.List. Every change to the search text recomputes the
//     view and re-derives the cursor modulo the new length.
//   - Model only records the input mode, the query committed before editing
//     began (restored on cancel) and the final selection, which the caller
//     reads with Selected after the program exits.
package ui
