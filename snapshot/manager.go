package snapshot

import (
	"github.com/google/uuid"

	"github.com/flatkd/kdtree/kdtree"
)

// Manager ties a Store to a value codec, so callers can save and load trees
// by name without handling the wire format themselves.
type Manager[V any] struct {
	store Store
	idx   kdtree.Index[V]
	codec ValueCodec[V]
}

func NewManager[V any](store Store, idx kdtree.Index[V], codec ValueCodec[V]) *Manager[V] {
	return &Manager[V]{store: store, idx: idx, codec: codec}
}

// Save encodes t under a freshly generated identity tag and writes it to
// name, returning the tag so the caller can record which snapshot is current.
func (m *Manager[V]) Save(name string, t *kdtree.Tree[V]) (uuid.UUID, error) {
	id := uuid.New()
	data, err := Encode(id, t, m.codec)
	if err != nil {
		return uuid.UUID{}, err
	}
	if err := m.store.Put(name, data); err != nil {
		return uuid.UUID{}, err
	}
	return id, nil
}

// Load reads name back into a fresh tree built around the Manager's index.
func (m *Manager[V]) Load(name string) (uuid.UUID, *kdtree.Tree[V], error) {
	data, err := m.store.Get(name)
	if err != nil {
		return uuid.UUID{}, nil, err
	}
	return Decode(data, m.idx, m.codec)
}

// Delete removes a previously saved snapshot. It is not an error to delete a
// name that was never written.
func (m *Manager[V]) Delete(name string) error {
	return m.store.Delete(name)
}
