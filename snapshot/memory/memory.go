// Package memory provides an in-memory implementation of snapshot.Store, for
// tests and for short-lived servers that don't need durability.
package memory

import (
	"sync"

	"github.com/flatkd/kdtree/snapshot"
)

func dup(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// Store is a map-backed snapshot.Store. It's safe for concurrent use.
type Store struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Get(name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.data[name]
	if !ok {
		return nil, snapshot.ErrNotFound
	}
	return dup(data), nil
}

func (s *Store) Put(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[name] = dup(data)
	return nil
}

func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, name)
	return nil
}
