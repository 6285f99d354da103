package state

// MoveCursor moves the cursor by delta rows. With wrap set, stepping past
// either end continues from the other; otherwise the cursor stops at the edge.
func (l *Level) MoveCursor(delta int, wrap bool) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	next := clamp(l.Cursor, 0, n-1) + delta
	if wrap {
		next = ((next % n) + n) % n
	} else {
		next = clamp(next, 0, n-1)
	}
	l.Cursor = next
	return l.Cursor != old
}

// MoveCursorHome moves the cursor to the first item.
func (l *Level) MoveCursorHome() bool {
	return l.MoveCursor(-len(l.Items), false)
}

// MoveCursorEnd moves the cursor to the last item.
func (l *Level) MoveCursorEnd() bool {
	return l.MoveCursor(len(l.Items), false)
}

// MoveCursorPageUp moves the cursor up by one page.
func (l *Level) MoveCursorPageUp(maxVisible int) bool {
	return l.MoveCursor(-l.pageSize(maxVisible), false)
}

// MoveCursorPageDown moves the cursor down by one page.
func (l *Level) MoveCursorPageDown(maxVisible int) bool {
	return l.MoveCursor(l.pageSize(maxVisible), false)
}

func (l *Level) pageSize(maxVisible int) int {
	total := len(l.Items)
	if maxVisible <= 0 || maxVisible > total {
		return total
	}
	return maxVisible
}

// EnsureCursorVisible scrolls the viewport so the cursor row is shown.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, n-1)
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := n - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	offset := clamp(l.ViewportOffset, 0, maxOffset)
	if l.Cursor < offset {
		offset = l.Cursor
	}
	if l.Cursor > offset+maxVisible-1 {
		offset = l.Cursor - maxVisible + 1
	}
	l.ViewportOffset = clamp(offset, 0, maxOffset)
}
