package menu

import "strings"

// Complete expands partial by at most one path segment.
//
// The first candidate starting with partial is used, or candidates[1] when
// none does. previous is the part of the input accepted by an earlier
// completion; it is stripped from the match when it is a prefix of it. The
// rest is cut after its first '/', so repeated completion descends one
// directory at a time. ok is false when there is nothing to complete from.
func Complete(candidates []string, previous, partial string) (output string, ok bool) {
	match, found := "", false
	for _, candidate := range candidates {
		if strings.HasPrefix(candidate, partial) {
			match, found = candidate, true
			break
		}
	}
	if !found {
		if len(candidates) < 2 {
			return "", false
		}
		match = candidates[1]
	}

	suffix := strings.TrimPrefix(match, previous)
	if i := strings.IndexByte(suffix, '/'); i >= 0 {
		suffix = suffix[:i+1]
	}
	return previous + suffix, true
}

// withSeparator returns s ending in exactly one trailing '/'.
func withSeparator(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimRight(s, "/") + "/"
}
