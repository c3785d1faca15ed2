package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/vendra-labs/vendra-cli/internal/core/domain"
	"github.com/vendra-labs/vendra-cli/internal/core/ports/driven"
)

// Ensure IndexStore implements the interface.
var _ driven.IndexStore = (*IndexStore)(nil)

// indexRow is one (term, key, content) mapping.
type indexRow struct {
	term    string
	key     string
	content string
}

// IndexStore is an in-memory implementation of driven.IndexStore.
// Rows keep insertion order, so enumeration is deterministic.
type IndexStore struct {
	mu   sync.RWMutex
	rows []indexRow
}

// NewIndexStore creates a new in-memory index store.
func NewIndexStore() *IndexStore {
	return &IndexStore{}
}

// Put indexes key under term with the given content tag. Duplicate
// rows are ignored.
func (s *IndexStore) Put(_ context.Context, term, key, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := indexRow{term: term, key: key, content: content}
	for _, r := range s.rows {
		if r == row {
			return nil
		}
	}
	s.rows = append(s.rows, row)
	return nil
}

// DeleteKey removes every row pointing at key.
func (s *IndexStore) DeleteKey(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.rows[:0]
	for _, r := range s.rows {
		if r.key != key {
			kept = append(kept, r)
		}
	}
	s.rows = kept
	return nil
}

// Lookup returns the distinct keys indexed under exactly term and
// contentType.
func (s *IndexStore) Lookup(_ context.Context, term string, contentType domain.ContentType) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.distinctKeys(func(r indexRow) bool {
		return r.term == term && r.content == contentType.String()
	}, 0), nil
}

// LookupExact returns the first key indexed under term.
func (s *IndexStore) LookupExact(_ context.Context, term string, contentType domain.ContentType) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rows {
		if r.term == term && r.content == contentType.String() {
			return r.key, nil
		}
	}
	return "", domain.ErrNotFound
}

// Search returns distinct keys whose term matches term exactly or by
// prefix, capped at limit.
func (s *IndexStore) Search(_ context.Context, term string, contentType domain.ContentType, limit int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.distinctKeys(func(r indexRow) bool {
		return strings.HasPrefix(r.term, term) && r.content == contentType.String()
	}, limit), nil
}

// All returns every distinct key of the given content type.
func (s *IndexStore) All(_ context.Context, contentType domain.ContentType) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.distinctKeys(func(r indexRow) bool {
		return r.content == contentType.String()
	}, 0), nil
}

// CountByTerm returns the number of distinct keys indexed under term.
func (s *IndexStore) CountByTerm(_ context.Context, term string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := s.distinctKeys(func(r indexRow) bool {
		return r.term == term
	}, 0)
	return len(keys), nil
}

// DisplayName resolves a user id to its indexed display name: the
// first user term for the account's key that is not the id itself.
func (s *IndexStore) DisplayName(_ context.Context, userID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var userKey string
	for _, r := range s.rows {
		if r.term == userID && r.content == domain.ContentUser.String() {
			userKey = r.key
			break
		}
	}
	if userKey == "" {
		return "", domain.ErrNotFound
	}

	for _, r := range s.rows {
		if r.key == userKey && r.content == domain.ContentUser.String() && r.term != userID {
			return r.term, nil
		}
	}
	return "", domain.ErrNotFound
}

// distinctKeys collects keys of rows matching the predicate,
// deduplicated in insertion order. limit <= 0 means unbounded.
func (s *IndexStore) distinctKeys(match func(indexRow) bool, limit int) []string {
	var keys []string
	seen := make(map[string]struct{})
	for _, r := range s.rows {
		if !match(r) {
			continue
		}
		if _, ok := seen[r.key]; ok {
			continue
		}
		seen[r.key] = struct{}{}
		keys = append(keys, r.key)
		if limit > 0 && len(keys) == limit {
			break
		}
	}
	return keys
}
