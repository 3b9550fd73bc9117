// Package store persists search results across process runs, keyed by
// Zobrist hash, in a BadgerDB instance (§6): a simple hash->eval cache
// for root positions a caller has already searched, not a mid-search
// transposition table.
package store

import (
	"encoding/binary"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// entry is the fixed-width value stored for each hash: the search
// score followed by the depth it was searched to, both as big-endian
// ints, so Export/Import don't need to round-trip through encoding/gob.
type entry struct {
	score int32
	depth int16
}

const entrySize = 4 + 2

func (e entry) marshal() []byte {
	buf := make([]byte, entrySize)
	binary.BigEndian.PutUint32(buf[0:4], uint32(e.score))
	binary.BigEndian.PutUint16(buf[4:6], uint16(e.depth))
	return buf
}

func unmarshalEntry(buf []byte) (entry, bool) {
	if len(buf) != entrySize {
		return entry{}, false
	}
	return entry{
		score: int32(binary.BigEndian.Uint32(buf[0:4])),
		depth: int16(binary.BigEndian.Uint16(buf[4:6])),
	}, true
}

// Cache is a BadgerDB-backed hash-to-evaluation cache.
type Cache struct {
	db *badger.DB
}

// Open opens (creating if necessary) a Cache rooted at dir.
func Open(dir string) (*Cache, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", dir, err)
	}
	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

func keyFor(hash uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], hash)
	return buf[:]
}

// Get retrieves the cached score and search depth for hash, if present.
func (c *Cache) Get(hash uint64) (score int, depth int, ok bool) {
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(keyFor(hash))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			e, valid := unmarshalEntry(val)
			if !valid {
				return nil
			}
			score, depth, ok = int(e.score), int(e.depth), true
			return nil
		})
	})
	if err != nil {
		return 0, 0, false
	}
	return score, depth, ok
}

// Put stores score and depth under hash, overwriting any existing entry.
func (c *Cache) Put(hash uint64, score int, depth int) {
	e := entry{score: int32(score), depth: int16(depth)}
	_ = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(keyFor(hash), e.marshal())
	})
}

// Export calls w once for every cached entry with its decoded (hash,
// score, depth) triple, stopping at the first error w returns. It writes
// no bytes itself and defines no flat-file record format.
func (c *Cache) Export(w func(hash uint64, score int, depth int) error) error {
	return c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			if len(item.Key()) != 8 {
				continue
			}
			hash := binary.BigEndian.Uint64(item.Key())
			err := item.Value(func(val []byte) error {
				e, ok := unmarshalEntry(val)
				if !ok {
					return nil
				}
				return w(hash, int(e.score), int(e.depth))
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Import loads (hash, score, depth) triples produced by Export, via a
// pull-style reader that returns ok=false once exhausted.
func (c *Cache) Import(read func() (hash uint64, score int, depth int, ok bool)) error {
	return c.db.Update(func(txn *badger.Txn) error {
		for {
			hash, score, depth, ok := read()
			if !ok {
				return nil
			}
			e := entry{score: int32(score), depth: int16(depth)}
			if err := txn.Set(keyFor(hash), e.marshal()); err != nil {
				return err
			}
		}
	})
}
