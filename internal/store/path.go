package store

import (
	"path/filepath"
	"strings"
)

// Normalizer converts on-disk entry paths into the names shown in menus.
type Normalizer struct {
	// Strict removes the store root as a true path prefix. When false, any
	// leading directory segment that also occurs among the root's own
	// segments is elided, which can over-strip a subdirectory that shares a
	// name with a root component (for example "home" or the user name).
	Strict bool
}

// DisplayPath returns path relative to root with the extension of the last
// segment removed. Everything from the first '.' of the final segment is
// dropped, so "site.example.org.gpg" becomes "site".
func (n Normalizer) DisplayPath(path, root string) string {
	if n.Strict {
		if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
			path = filepath.ToSlash(rel)
		}
	}
	segments := strings.Split(filepath.ToSlash(path), "/")
	var rootSegments map[string]struct{}
	if !n.Strict {
		rootSegments = segmentSet(root)
	}
	var b strings.Builder
	last := len(segments) - 1
	for i, segment := range segments {
		if i == last {
			b.WriteString(stripExtension(segment))
			break
		}
		if _, ok := rootSegments[segment]; ok {
			continue
		}
		if n.Strict && segment == "" {
			continue
		}
		b.WriteString(segment)
		b.WriteByte('/')
	}
	return b.String()
}

// DisplayPaths maps DisplayPath over paths.
func (n Normalizer) DisplayPaths(paths []string, root string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = n.DisplayPath(p, root)
	}
	return out
}

func stripExtension(name string) string {
	if idx := strings.Index(name, "."); idx >= 0 {
		return name[:idx]
	}
	return name
}

func segmentSet(root string) map[string]struct{} {
	cleaned := filepath.ToSlash(filepath.Clean(root))
	parts := strings.Split(cleaned, "/")
	set := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		set[part] = struct{}{}
	}
	return set
}
