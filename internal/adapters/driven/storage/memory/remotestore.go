package memory

import (
	"context"
	"sync"

	"github.com/vendra-labs/vendra-cli/internal/core/domain"
	"github.com/vendra-labs/vendra-cli/internal/core/ports/driven"
)

// Ensure RemoteStore implements the interface.
var _ driven.RemoteStore = (*RemoteStore)(nil)

// RemoteStore is an in-memory implementation of driven.RemoteStore.
// A removed or never-stored key returns domain.ErrNotFound, matching
// the daemon-backed adapter.
type RemoteStore struct {
	mu      sync.RWMutex
	records map[string]driven.FetchResult
	pruner  Pruner
}

// Pruner receives the keys this store removes, so a paired index can
// drop its rows for self-healed keys.
type Pruner interface {
	DeleteKey(ctx context.Context, key string) error
}

// NewRemoteStore creates a new in-memory remote store.
func NewRemoteStore() *RemoteStore {
	return &RemoteStore{records: make(map[string]driven.FetchResult)}
}

// SetPruner attaches an index pruner notified on Remove.
func (s *RemoteStore) SetPruner(p Pruner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruner = p
}

// Get returns the record stored under key.
func (s *RemoteStore) Get(_ context.Context, key string) (driven.FetchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.records[key]
	if !ok {
		return driven.FetchResult{}, domain.ErrNotFound
	}
	return res, nil
}

// Put stores value under key.
func (s *RemoteStore) Put(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = driven.FetchResult{Value: value, HasValue: true}
	return nil
}

// PutValueless stores a record under key that carries no value.
func (s *RemoteStore) PutValueless(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = driven.FetchResult{}
	return nil
}

// Remove deletes the record stored under key and prunes the paired
// index, if any.
func (s *RemoteStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.records, key)
	pruner := s.pruner
	s.mu.Unlock()

	if pruner != nil {
		return pruner.DeleteKey(ctx, key)
	}
	return nil
}

// Len reports the number of stored records.
func (s *RemoteStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
