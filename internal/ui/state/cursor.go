package state

// MoveCursorHome jumps to the first entry of the view.
func (l *List) MoveCursorHome() bool {
	return l.jumpTo(0)
}

// MoveCursorEnd jumps to the last entry of the view.
func (l *List) MoveCursorEnd() bool {
	return l.jumpTo(len(l.Items) - 1)
}

// MoveCursorPageUp moves up by one page without wrapping.
func (l *List) MoveCursorPageUp(maxVisible int) bool {
	return l.jumpTo(l.Cursor - l.pageSize(maxVisible))
}

// MoveCursorPageDown moves down by one page without wrapping.
func (l *List) MoveCursorPageDown(maxVisible int) bool {
	return l.jumpTo(l.Cursor + l.pageSize(maxVisible))
}

// jumpTo places the cursor at target clamped to the view and reports whether
// it moved.
func (l *List) jumpTo(target int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = clamp(target, 0, len(l.Items)-1)
	return l.Cursor != old
}

func (l *List) pageSize(maxVisible int) int {
	total := len(l.Items)
	if maxVisible <= 0 || maxVisible > total {
		return total
	}
	return maxVisible
}

// EnsureCursorVisible adjusts the viewport offset so the cursor row is inside
// a window of maxVisible rows. A non-positive maxVisible means every row fits.
func (l *List) EnsureCursorVisible(maxVisible int) {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, n-1)
	if maxVisible <= 0 || maxVisible >= n {
		l.ViewportOffset = 0
		return
	}
	offset := clamp(l.ViewportOffset, 0, n-maxVisible)
	if l.Cursor < offset {
		offset = l.Cursor
	}
	if l.Cursor >= offset+maxVisible {
		offset = l.Cursor - maxVisible + 1
	}
	l.ViewportOffset = offset
}

// Window returns the half-open range [start, end) of view rows inside the
// viewport.
func (l *List) Window(maxVisible int) (int, int) {
	l.EnsureCursorVisible(maxVisible)
	end := len(l.Items)
	if maxVisible > 0 && l.ViewportOffset+maxVisible < end {
		end = l.ViewportOffset + maxVisible
	}
	return l.ViewportOffset, end
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
