// Package history keeps the capped, newest-first list of past scans.
//
// The store is safe for concurrent readers and writers via a single mutex.
// Record updates are last-writer-wins: a deep-scan merge that races a delete
// of the same record simply recreates it, which matches how the scan flow
// uses the store (one writer per record id in practice).
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/wbuf81/oscar/internal/compliance"
)

// defaultMaxRecords caps retained scans; the oldest fall off the end.
const defaultMaxRecords = 50

// storageFileMode is the permission set for the persisted history file.
const storageFileMode = 0o600

// Store holds scan records newest first.
type Store struct {
	mu          sync.Mutex
	records     []compliance.ScanRecord
	maxRecords  int
	storageFile string
}

// Option configures a Store.
type Option func(*Store)

// WithMaxRecords overrides the retention cap.
func WithMaxRecords(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxRecords = n
		}
	}
}

// WithStorageFile enables JSON file persistence. The file is loaded on
// construction and rewritten after every mutation; load and write failures
// are logged and tolerated, leaving the store memory-only for that operation.
func WithStorageFile(path string) Option {
	return func(s *Store) {
		s.storageFile = path
	}
}

// New returns a Store, loading persisted records when a storage file is
// configured.
func New(opts ...Option) *Store {
	s := &Store{maxRecords: defaultMaxRecords}
	for _, opt := range opts {
		opt(s)
	}

	if s.storageFile != "" {
		s.load()
	}

	return s
}

// Append adds a record at the head and trims to the cap.
func (s *Store) Append(rec compliance.ScanRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append([]compliance.ScanRecord{rec}, s.records...)
	if len(s.records) > s.maxRecords {
		s.records = s.records[:s.maxRecords]
	}

	s.persist()
}

// List returns all records, newest first.
func (s *Store) List() []compliance.ScanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]compliance.ScanRecord, len(s.records))
	copy(out, s.records)

	return out
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (compliance.ScanRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.records {
		if rec.ID == id {
			return rec, nil
		}
	}

	return compliance.ScanRecord{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Replace overwrites the record with the same id, keeping its position.
func (s *Store) Replace(rec compliance.ScanRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == rec.ID {
			s.records[i] = rec
			s.persist()

			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrNotFound, rec.ID)
}

// Delete removes the record with the given id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			s.persist()

			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Clear removes all records.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	s.persist()
}

// Len returns the number of retained records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// load reads the storage file. Callers hold no lock yet (construction only).
func (s *Store) load() {
	data, err := os.ReadFile(s.storageFile)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("file", s.storageFile).Msg("failed to load scan history")
		}

		return
	}

	var records []compliance.ScanRecord
	if err := json.Unmarshal(data, &records); err != nil {
		log.Warn().Err(err).Str("file", s.storageFile).Msg("scan history file is malformed, starting empty")
		return
	}

	if len(records) > s.maxRecords {
		records = records[:s.maxRecords]
	}

	s.records = records
}

// persist writes the storage file. Callers must hold the mutex.
func (s *Store) persist() {
	if s.storageFile == "" {
		return
	}

	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		log.Warn().Err(err).Msg("failed to encode scan history")
		return
	}

	if err := os.WriteFile(s.storageFile, data, storageFileMode); err != nil {
		log.Warn().Err(err).Str("file", s.storageFile).Msg("failed to persist scan history")
	}
}
