package state

// Item is one visible row. Index is the row's position in the list the
// level was built from, so it survives filtering.
type Item struct {
	Index int
	Label string
}

// ItemsFromLabels numbers labels in order.
func ItemsFromLabels(labels []string) []Item {
	items := make([]Item, len(labels))
	for i, label := range labels {
		items[i] = Item{Index: i, Label: label}
	}
	return items
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
