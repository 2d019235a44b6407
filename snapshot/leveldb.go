package snapshot

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/errors"
)

func dup(in []byte) []byte {
	out := make([]byte, len(in))
	copy(out, in)
	return out
}

// ldbConn wraps a base LevelDB database and batches writes between commits,
// so a run of Put calls only touches disk once.
type ldbConn struct {
	conn  *leveldb.DB
	batch map[string][]byte
}

func newLDBConn(conn *leveldb.DB) *ldbConn {
	return &ldbConn{conn: conn, batch: make(map[string][]byte)}
}

func (c *ldbConn) Get(key string) ([]byte, error) {
	if value, ok := c.batch[key]; ok {
		if value == nil {
			return nil, leveldb.ErrNotFound
		}
		return dup(value), nil
	}
	return c.conn.Get([]byte(key), nil)
}

func (c *ldbConn) Put(key string, value []byte) {
	c.batch[key] = dup(value)
}

func (c *ldbConn) Delete(key string) {
	c.batch[key] = nil
}

func (c *ldbConn) Commit() error {
	b := new(leveldb.Batch)
	for key, value := range c.batch {
		if value == nil {
			b.Delete([]byte(key))
		} else {
			b.Put([]byte(key), value)
		}
	}
	if err := c.conn.Write(b, nil); err != nil {
		return err
	}
	c.batch = make(map[string][]byte)
	return nil
}

// LevelDBStore implements Store over a LevelDB database, under the "s" key
// prefix so it can share a database file with other key spaces.
type LevelDBStore struct {
	conn *ldbConn
}

// OpenLevelDBStore opens (and, if necessary, recovers) the LevelDB database
// at file and returns a Store backed by it.
func OpenLevelDBStore(file string) (*LevelDBStore, error) {
	conn, err := leveldb.OpenFile(file, nil)
	if errors.IsCorrupted(err) {
		conn, err = leveldb.RecoverFile(file, nil)
	}
	if err != nil {
		return nil, err
	}
	return &LevelDBStore{conn: newLDBConn(conn)}, nil
}

func (s *LevelDBStore) Get(name string) ([]byte, error) {
	data, err := s.conn.Get("s" + name)
	if err == leveldb.ErrNotFound {
		return nil, ErrNotFound
	}
	return data, err
}

func (s *LevelDBStore) Put(name string, data []byte) error {
	s.conn.Put("s"+name, data)
	return s.conn.Commit()
}

func (s *LevelDBStore) Delete(name string) error {
	s.conn.Delete("s" + name)
	return s.conn.Commit()
}
