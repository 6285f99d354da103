package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter replaces the filter text, places the filter cursor at cursor and
// moves the item cursor to the best match. Clearing the filter restores the
// cursor from before filtering began.
func (l *Level) SetFilter(query string, cursor int) {
	trimmed := strings.TrimSpace(query)
	wasFiltering := strings.TrimSpace(l.Filter) != ""
	l.Filter = query
	l.FilterCursor = clamp(cursor, 0, len([]rune(query)))

	switch {
	case trimmed != "":
		if !wasFiltering {
			l.LastCursor = l.Cursor
		}
		l.Cursor = 0
		l.applyFilter()
		if idx := BestMatchIndex(l.Items, trimmed); idx >= 0 {
			l.Cursor = idx
		}
	case wasFiltering:
		restore := l.LastCursor
		l.applyFilter()
		if restore >= 0 && restore < len(l.Items) {
			l.Cursor = restore
		} else {
			l.Cursor = 0
		}
		l.LastCursor = -1
	default:
		l.applyFilter()
	}
}

func (l *Level) applyFilter() {
	l.Items = l.filterItems(l.Full, l.Filter)
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, len(l.Items)-1)
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}

func (l *Level) filterItems(items []Item, query string) []Item {
	if l.Match == nil {
		return FilterItems(items, query)
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneItems(items)
	}
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if l.Match(item.Index, trimmed) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// MatchLabel reports whether label matches query fuzzily or as a
// case-insensitive substring.
func MatchLabel(label, query string) bool {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return true
	}
	if fuzzy.MatchNormalizedFold(trimmed, label) {
		return true
	}
	return strings.Contains(strings.ToLower(label), strings.ToLower(trimmed))
}

// FilterItems returns items whose labels match query, keeping their order.
// Fuzzy ranking is tried first and substring matching is the fallback.
func FilterItems(items []Item, query string) []Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneItems(items)
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labelsOf(items))
	if len(ranks) > 0 {
		matched := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matched[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]Item, 0, len(matched))
		for i, item := range items {
			if _, ok := matched[i]; ok {
				filtered = append(filtered, item)
			}
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Label), lower) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// BestMatchIndex picks the row the cursor should land on for query: an exact
// label first, then a prefix, then a substring, then the closest fuzzy rank.
func BestMatchIndex(items []Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	tests := []func(label string) bool{
		func(label string) bool { return strings.EqualFold(label, trimmed) },
		func(label string) bool { return strings.HasPrefix(strings.ToLower(label), lower) },
		func(label string) bool { return strings.Contains(strings.ToLower(label), lower) },
	}
	for _, test := range tests {
		for i, item := range items {
			if test(item.Label) {
				return i
			}
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labelsOf(items))
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}

func labelsOf(items []Item) []string {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	return labels
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
