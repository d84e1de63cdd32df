// Package jsonfile persists whole values as pretty-printed JSON documents,
// one file per logical collection. It is the only layer that touches disk.
//
// Mutations go through Update, which serializes read-modify-write cycles per
// file name: two updates to the same file never interleave, while updates to
// different files proceed independently. The lock table lives on the Store
// instance, so tests can run isolated stores side by side.
//
// Writes overwrite the file in place with no atomic-rename protection. A
// crash mid-write can leave a truncated file; the next read then fails to
// parse and surfaces the error to the caller rather than auto-recovering.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Store reads and writes JSON documents under a single directory.
// The zero value is not usable; construct with NewStore.
type Store struct {
	dir string

	mu    sync.Mutex             // guards locks
	locks map[string]*sync.Mutex // per-file mutation locks, created on first use
}

// NewStore returns a Store rooted at dir. The directory is created lazily on
// first read or write, not here, so constructing a Store never fails.
func NewStore(dir string) *Store {
	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}
}

// Dir returns the storage directory the store was constructed with.
func (s *Store) Dir() string {
	return s.dir
}

// path resolves a collection file name to its location under the data dir.
func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// ensureDir creates the storage directory if it does not exist yet.
// MkdirAll is a no-op when the directory is already present.
func (s *Store) ensureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("jsonfile: create data dir %s: %w", s.dir, err)
	}
	return nil
}

// fileLock returns the mutation lock for name, creating it on first use.
// Locks are never removed: the set of collection files is small and fixed,
// and a retained mutex is cheaper than re-synchronizing creation.
func (s *Store) fileLock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	return l
}

// Read parses the named file into a value of type T. The second return is
// false when the file does not exist — a missing file is the absent signal,
// not an error. Any other I/O failure, and any parse failure, is returned
// as an error.
func Read[T any](s *Store, name string) (T, bool, error) {
	var zero T
	if err := s.ensureDir(); err != nil {
		return zero, false, err
	}

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zero, false, nil
		}
		return zero, false, fmt.Errorf("jsonfile: read %s: %w", name, err)
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return zero, false, fmt.Errorf("jsonfile: parse %s: %w", name, err)
	}
	return v, true, nil
}

// Write serializes v with two-space indentation and overwrites the named
// file. The stable, human-diffable formatting keeps the data files usable
// with ordinary diff tools.
func Write[T any](s *Store, name string, v T) error {
	if err := s.ensureDir(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonfile: marshal %s: %w", name, err)
	}
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return fmt.Errorf("jsonfile: write %s: %w", name, err)
	}
	return nil
}

// Update runs a read-modify-write cycle on the named file under its mutation
// lock. transform receives the current value and whether the file existed,
// and returns the value to persist. The lock is released whether or not the
// cycle succeeds, so a failed transform never starves later updates.
//
// For a single name, concurrent Update calls apply in lock-acquisition
// order with no interleaving. Nothing serializes a separate Read followed
// by an Update — callers that need atomicity must do all their reading
// inside transform.
func Update[T any](s *Store, name string, transform func(cur T, exists bool) (T, error)) (T, error) {
	var zero T

	l := s.fileLock(name)
	l.Lock()
	defer l.Unlock()

	cur, exists, err := Read[T](s, name)
	if err != nil {
		return zero, err
	}

	next, err := transform(cur, exists)
	if err != nil {
		return zero, err
	}

	if err := Write(s, name, next); err != nil {
		return zero, err
	}
	return next, nil
}

// Ensure initializes the named file with def when it does not exist yet, and
// returns whichever value the file now holds. Call it once per collection on
// startup so every later reader sees a well-formed document.
func Ensure[T any](s *Store, name string, def T) (T, error) {
	var zero T

	existing, exists, err := Read[T](s, name)
	if err != nil {
		return zero, err
	}
	if exists {
		return existing, nil
	}
	if err := Write(s, name, def); err != nil {
		return zero, err
	}
	return def, nil
}
