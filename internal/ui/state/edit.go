package state

import "unicode"

// FilterCursorPos returns the rune offset of the filter cursor.
func (l *Level) FilterCursorPos() int {
	return clamp(l.FilterCursor, 0, len([]rune(l.Filter)))
}

// InsertFilterText inserts text at the filter cursor.
func (l *Level) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	l.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward deletes the rune before the filter cursor.
func (l *Level) DeleteFilterRuneBackward() bool {
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	l.cutFilter(pos-1, pos)
	return true
}

// DeleteFilterWordBackward deletes the word before the filter cursor.
func (l *Level) DeleteFilterWordBackward() bool {
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	l.cutFilter(wordStart([]rune(l.Filter), pos), pos)
	return true
}

func (l *Level) cutFilter(from, to int) {
	runes := []rune(l.Filter)
	updated := make([]rune, 0, len(runes)-(to-from))
	updated = append(updated, runes[:from]...)
	updated = append(updated, runes[to:]...)
	l.SetFilter(string(updated), from)
}

// MoveFilterCursorStart moves the filter cursor to the start.
func (l *Level) MoveFilterCursorStart() bool {
	return l.placeFilterCursor(0)
}

// MoveFilterCursorEnd moves the filter cursor to the end.
func (l *Level) MoveFilterCursorEnd() bool {
	return l.placeFilterCursor(len([]rune(l.Filter)))
}

// MoveFilterCursorWordBackward moves the filter cursor to the previous word
// start.
func (l *Level) MoveFilterCursorWordBackward() bool {
	return l.placeFilterCursor(wordStart([]rune(l.Filter), l.FilterCursorPos()))
}

// MoveFilterCursorWordForward moves the filter cursor past the next word.
func (l *Level) MoveFilterCursorWordForward() bool {
	return l.placeFilterCursor(wordEnd([]rune(l.Filter), l.FilterCursorPos()))
}

// MoveFilterCursorRuneBackward moves the filter cursor one rune left.
func (l *Level) MoveFilterCursorRuneBackward() bool {
	return l.placeFilterCursor(l.FilterCursorPos() - 1)
}

// MoveFilterCursorRuneForward moves the filter cursor one rune right.
func (l *Level) MoveFilterCursorRuneForward() bool {
	return l.placeFilterCursor(l.FilterCursorPos() + 1)
}

func (l *Level) placeFilterCursor(pos int) bool {
	pos = clamp(pos, 0, len([]rune(l.Filter)))
	if pos == l.FilterCursorPos() {
		return false
	}
	l.FilterCursor = pos
	return true
}

// isWordBreak treats the path separator like whitespace so word motions stop
// at directory boundaries.
func isWordBreak(r rune) bool {
	return unicode.IsSpace(r) || r == '/'
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && isWordBreak(runes[i-1]) {
		i--
	}
	for i > 0 && !isWordBreak(runes[i-1]) {
		i--
	}
	return i
}

func wordEnd(runes []rune, pos int) int {
	i := pos
	for i < len(runes) && !isWordBreak(runes[i]) {
		i++
	}
	for i < len(runes) && isWordBreak(runes[i]) {
		i++
	}
	return i
}
