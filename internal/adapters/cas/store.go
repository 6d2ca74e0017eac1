// Package cas implements the exchange ledger, a local record of completed artifact transfers.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/ferry/internal/core/domain"
	"go.trai.ch/ferry/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ExchangeLedger = (*Store)(nil)

// Store implements ports.ExchangeLedger using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.ExchangeRecord
}

// NewStore creates a new ledger backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.ExchangeRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrLedgerReadFailed.Error()), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLedgerReadFailed.Error()), "path", s.path)
	}

	return nil
}

// save writes the cache to disk. The caller must hold s.mu.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrLedgerWriteFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, domain.ErrLedgerWriteFailed.Error())
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLedgerWriteFailed.Error()), "path", s.path)
	}

	return nil
}

// Get retrieves the record stored under id.
func (s *Store) Get(id string) (*domain.ExchangeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.cache[id]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record under its ID and persists the ledger.
func (s *Store) Put(record domain.ExchangeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[record.ID()] = record
	return s.save()
}
