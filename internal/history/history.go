// Package history implements the bounded, persisted clipboard history shared
// between the sampler and the browser. The store owns an ordered sequence of
// entries (oldest first) behind a mutex; readers copy out a snapshot rather
// than holding the lock across rendering or I/O.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/ElijahMwambazi/clipb/internal/clipfs"
)

// FileName is the history file path relative to the clipb state directory.
const FileName = "history.json"

// TimestampFormat is the human-readable, second-precision capture timestamp.
const TimestampFormat = "2006-01-02 15:04:05"

// Entry is one recorded clipboard snapshot. Entries are immutable once
// appended; identity is positional.
type Entry struct {
	Timestamp string `json:"timestamp"`
	Content   string `json:"content"`
}

// Store is the mutex-guarded history sequence. All access from concurrent
// components goes through the same exclusive lock, so mutations are
// linearizable and readers never observe a partial append.
type Store struct {
	mu      sync.Mutex
	entries []Entry
	max     int
	fsys    *clipfs.ClipFS
}

// Open loads the persisted history from the state directory. A missing or
// corrupt history file degrades to an empty sequence, never an error.
func Open(fsys *clipfs.ClipFS, max int) *Store {
	s := &Store{max: max, fsys: fsys}

	data, err := fsys.ReadFile(FileName)
	if err != nil {
		return s
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return s
	}

	s.entries = entries
	s.trimLocked()
	return s
}

// With runs fn with exclusive access to the underlying sequence. The lock is
// released unconditionally; fn must not retain the slice past its return.
func (s *Store) With(fn func(entries *[]Entry) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.entries)
}

// Append records a new entry, evicts the oldest entries while over the
// retention bound, and synchronously rewrites the history file, all under a
// single lock hold. A persistence failure is returned to the caller; the
// in-memory append stands regardless.
func (s *Store) Append(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, e)
	s.trimLocked()
	return s.saveLocked()
}

// Snapshot returns a copy of the sequence, oldest first. The copy is fully
// consistent at the moment of the call and safe to render from without
// holding the lock.
func (s *Store) Snapshot() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the current number of entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Clear removes all entries and the history file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	if err := s.fsys.Remove(FileName); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove history file: %w", err)
	}
	return nil
}

// Save rewrites the history file with the current sequence.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

// trimLocked enforces the retention bound, evicting from index 0 (strict
// FIFO). Caller must hold the lock.
func (s *Store) trimLocked() {
	for len(s.entries) > s.max {
		s.entries = s.entries[1:]
	}
}

// saveLocked serializes the full sequence as pretty-printed JSON and
// overwrites the history file. No temp-file-and-rename discipline: a torn
// write is recovered by the corrupt-means-empty rule on the next Open.
// Caller must hold the lock.
func (s *Store) saveLocked() error {
	entries := s.entries
	if entries == nil {
		entries = []Entry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	if err := s.fsys.WriteFile(FileName, data, 0644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}

	return nil
}
