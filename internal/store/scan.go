package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/clip-keeper/internal/logging/events"
)

// maxDepth bounds recursion so a symlink cycle inside the store ends in an
// error instead of exhausting the stack.
const maxDepth = 32

// ErrTooDeep is wrapped by ScanError when maxDepth is exceeded.
var ErrTooDeep = errors.New("directory nesting too deep")

// ScanError reports a directory that could not be traversed.
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// Scanner enumerates a password store tree. The zero value requires every
// directory to be readable.
type Scanner struct {
	// SkipUnreadable drops subdirectories that cannot be read instead of
	// failing the whole listing. The root itself must always be readable.
	SkipUnreadable bool
}

// ListDirectories returns every non-hidden directory below root, relative to
// root and '/'-separated, parents before their children.
func (s Scanner) ListDirectories(root string) ([]string, error) {
	return s.listDirectories(root, 0)
}

func (s Scanner) listDirectories(dir string, depth int) ([]string, error) {
	entries, err := s.readDir(dir, depth)
	if err != nil || entries == nil {
		return nil, err
	}
	paths := []string{}
	for _, entry := range entries {
		if isHidden(entry.Name()) {
			continue
		}
		full := filepath.Join(dir, entry.Name())
		if !isDir(full, entry) {
			continue
		}
		paths = append(paths, entry.Name())
		inner, err := s.listDirectories(full, depth+1)
		if err != nil {
			return nil, err
		}
		for _, child := range inner {
			paths = append(paths, entry.Name()+"/"+child)
		}
	}
	return paths, nil
}

// ListFiles returns the path of every non-hidden regular file below root.
// Paths are rooted the same way root is (absolute for an absolute root).
func (s Scanner) ListFiles(root string) ([]string, error) {
	return s.listFiles(root, 0)
}

func (s Scanner) listFiles(dir string, depth int) ([]string, error) {
	entries, err := s.readDir(dir, depth)
	if err != nil || entries == nil {
		return nil, err
	}
	paths := []string{}
	for _, entry := range entries {
		if isHidden(entry.Name()) {
			continue
		}
		full := filepath.Join(dir, entry.Name())
		if isDir(full, entry) {
			inner, err := s.listFiles(full, depth+1)
			if err != nil {
				return nil, err
			}
			paths = append(paths, inner...)
			continue
		}
		if isRegular(full, entry) {
			paths = append(paths, full)
		}
	}
	return paths, nil
}

// readDir returns nil entries with a nil error when an unreadable
// subdirectory is skipped.
func (s Scanner) readDir(dir string, depth int) ([]os.DirEntry, error) {
	if depth > maxDepth {
		return nil, &ScanError{Path: dir, Err: ErrTooDeep}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if s.SkipUnreadable && depth > 0 {
			events.Store.Skip(dir, err)
			return nil, nil
		}
		return nil, &ScanError{Path: dir, Err: err}
	}
	return entries, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// isDir follows symlinks, matching how pass itself resolves entries.
func isDir(full string, entry os.DirEntry) bool {
	if entry.Type()&os.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(full)
	return err == nil && info.IsDir()
}

func isRegular(full string, entry os.DirEntry) bool {
	if entry.Type()&os.ModeSymlink == 0 {
		return entry.Type().IsRegular()
	}
	info, err := os.Stat(full)
	return err == nil && info.Mode().IsRegular()
}
