package state

// MatchFunc decides whether the item at index matches query. query is never
// blank.
type MatchFunc func(index int, query string) bool

// Level holds one menu's rows together with its filter, cursor and viewport.
type Level struct {
	ID             string
	Title          string
	Items          []Item
	Full           []Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
	// Match overrides the default label matcher when set.
	Match MatchFunc
}

// NewLevel constructs a Level with the cursor on the first item.
func NewLevel(id, title string, items []Item, match MatchFunc) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		LastCursor: -1,
		Match:      match,
	}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the visible position of the item built from index, or -1.
func (l *Level) IndexOf(index int) int {
	for i, item := range l.Items {
		if item.Index == index {
			return i
		}
	}
	return -1
}

// Highlighted returns the item under the cursor.
func (l *Level) Highlighted() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems replaces the rows and re-applies the current filter.
func (l *Level) UpdateItems(items []Item) {
	l.Full = CloneItems(items)
	l.applyFilter()
	if len(l.Items) == 0 || l.ViewportOffset < 0 || l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}
