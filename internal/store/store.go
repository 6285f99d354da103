// Package store reads the on-disk layout of a pass password store: a root
// directory whose files are secret records and whose directories are
// namespaces. Nothing in this package opens a secret file.
package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/clip-keeper/internal/logging/events"
)

var (
	// ErrStoreMissing is returned by Check when the root does not exist.
	ErrStoreMissing = errors.New("password store not initialised")
	// ErrStoreEmpty is returned by Check when the root has no entries.
	ErrStoreEmpty = errors.New("password store is empty")
	// ErrNotDirectory is returned by Check when the root is a plain file.
	ErrNotDirectory = errors.New("password store root is not a directory")
)

// Store lists entries below a fixed root in display form.
type Store struct {
	Root       string
	Scanner    Scanner
	Normalizer Normalizer
}

// New returns a Store for root using the supplied traversal and naming policy.
func New(root string, skipUnreadable, strictPaths bool) *Store {
	return &Store{
		Root:       root,
		Scanner:    Scanner{SkipUnreadable: skipUnreadable},
		Normalizer: Normalizer{Strict: strictPaths},
	}
}

// Files returns the display name of every entry in the store.
func (s *Store) Files() ([]string, error) {
	paths, err := s.Scanner.ListFiles(s.Root)
	if err != nil {
		return nil, err
	}
	names := s.Normalizer.DisplayPaths(paths, s.Root)
	events.Store.Scan("files", s.Root, len(names))
	return names, nil
}

// Directories returns every namespace in the store relative to the root.
func (s *Store) Directories() ([]string, error) {
	dirs, err := s.Scanner.ListDirectories(s.Root)
	if err != nil {
		return nil, err
	}
	events.Store.Scan("directories", s.Root, len(dirs))
	return dirs, nil
}

// Check verifies that the store root exists, is a directory, and is not
// empty.
func (s *Store) Check() error {
	info, err := os.Stat(s.Root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrStoreMissing, s.Root)
		}
		return &ScanError{Path: s.Root, Err: err}
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, s.Root)
	}
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		return &ScanError{Path: s.Root, Err: err}
	}
	if len(entries) == 0 {
		return fmt.Errorf("%w: %s", ErrStoreEmpty, s.Root)
	}
	return nil
}
