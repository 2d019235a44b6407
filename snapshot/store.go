// Package snapshot persists point-in-time copies of a tree to a named blob
// store and restores them. The store itself only deals in names and bytes;
// everything about a tree's shape lives in codec.go.
package snapshot

import "errors"

// ErrNotFound is returned by a Store when the requested name has never been
// written, or was written and then deleted.
var ErrNotFound = errors.New("snapshot: not found")

// Store is the narrow capability a Manager needs from its backing database:
// named blob get/put/delete. Callers that only need one direction can embed
// a smaller interface of their own; Manager always needs all three.
type Store interface {
	Get(name string) ([]byte, error)
	Put(name string, data []byte) error
	Delete(name string) error
}
