package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/google/uuid"

	"github.com/flatkd/kdtree/kdtree"
)

const treeSnapshotType uint8 = 1

func encodeUvarint(x uint64) []byte {
	encoded := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(encoded, x)
	return encoded[:n]
}

// ValueCodec marshals and unmarshals a single tree value. Snapshotting a
// Tree[V] needs one of these per V, since there's no generic way to put an
// arbitrary V on the wire.
type ValueCodec[V any] interface {
	Marshal(buf *bytes.Buffer, v V) error
	Unmarshal(buf *bytes.Buffer) (V, error)
}

// Encode serializes every live value of t, in slot order, tagged with id.
// The tree's internal layout (span, capacity, full-state parity) is not
// preserved; Decode rebuilds an equivalent tree from the ordered value list
// the same way Tree.Shrink does, by reinserting into a freshly sized tree.
func Encode[V any](id uuid.UUID, t *kdtree.Tree[V], codec ValueCodec[V]) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := buf.WriteByte(treeSnapshotType); err != nil {
		return nil, err
	}
	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, err
	}
	if _, err := buf.Write(idBytes); err != nil {
		return nil, err
	}
	if _, err := buf.Write(encodeUvarint(uint64(t.Size()))); err != nil {
		return nil, err
	}
	for it := t.Begin(); it != t.End(); it = t.Next(it) {
		if !it.IsValid() {
			continue
		}
		if err := codec.Marshal(buf, it.Value()); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// Decode parses a blob produced by Encode into a fresh tree built around idx,
// along with the identity tag it was saved under.
func Decode[V any](data []byte, idx kdtree.Index[V], codec ValueCodec[V]) (uuid.UUID, *kdtree.Tree[V], error) {
	buf := bytes.NewBuffer(data)

	b, err := buf.ReadByte()
	if err != nil {
		return uuid.UUID{}, nil, err
	}
	if b != treeSnapshotType {
		return uuid.UUID{}, nil, errors.New("snapshot: unexpected type byte")
	}

	idBytes := make([]byte, 16)
	if _, err := io.ReadFull(buf, idBytes); err != nil {
		return uuid.UUID{}, nil, err
	}
	id, err := uuid.FromBytes(idBytes)
	if err != nil {
		return uuid.UUID{}, nil, err
	}

	n, err := binary.ReadUvarint(buf)
	if err != nil {
		return uuid.UUID{}, nil, err
	}

	values := make([]V, n)
	for i := range values {
		v, err := codec.Unmarshal(buf)
		if err != nil {
			return uuid.UUID{}, nil, err
		}
		values[i] = v
	}

	tr := kdtree.New[V](int(n), idx)
	tr.InsertAll(values)
	return id, tr, nil
}
