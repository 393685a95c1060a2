package store

import (
	"context"
	"sync"

	"github.com/phylsix/tinyurl/internal/shortener"
)

// MemoryStore is an in-memory implementation of shortener.Repository with
// the same uniqueness contract as the Postgres store. Used in tests and for
// local development without a database.
type MemoryStore struct {
	mu       sync.RWMutex
	mappings map[shortener.Code]shortener.Mapping
}

// NewMemoryStore creates an empty in-memory mapping store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		mappings: make(map[shortener.Code]shortener.Mapping),
	}
}

func (s *MemoryStore) Insert(_ context.Context, m *shortener.Mapping) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.mappings[m.Code]; taken {
		return shortener.ErrCodeTaken
	}

	s.mappings[m.Code] = *m

	return nil
}

func (s *MemoryStore) GetByCode(_ context.Context, code shortener.Code) (*shortener.Mapping, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.mappings[code]
	if !ok {
		return nil, shortener.ErrNotFound
	}

	return &m, nil
}

// Compile-time check.
var _ shortener.Repository = (*MemoryStore)(nil)
