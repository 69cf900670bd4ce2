package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/errors"
)

const (
	// DefaultFreeListSize is the size we hold for free node in btree
	DefaultFreeListSize = btree.DefaultFreeListSize
)

// MemStore returns a simple implementation useful for tests and for the
// command line client. There is no persistence here....
func MemStore() paysplit.CacheableKVStore {
	free := btree.NewFreeList(DefaultFreeListSize)
	return &memStore{
		bt:   btree.NewWithFreeList(2, free),
		free: free,
	}
}

// memStore is the root of a cache wrap stack. It holds the data directly in
// a btree.
type memStore struct {
	bt   *btree.BTree
	free *btree.FreeList
}

var _ paysplit.CacheableKVStore = (*memStore)(nil)

func (m *memStore) Get(key []byte) ([]byte, error) {
	res := m.bt.Get(bkey{key})
	if res == nil {
		return nil, nil
	}
	return res.(setItem).value, nil
}

func (m *memStore) Has(key []byte) (bool, error) {
	return m.bt.Has(bkey{key}), nil
}

func (m *memStore) Set(key, value []byte) error {
	m.bt.ReplaceOrInsert(newSetItem(key, value))
	return nil
}

func (m *memStore) Delete(key []byte) error {
	m.bt.Delete(bkey{key})
	return nil
}

// CacheWrap returns a BTreeCacheWrap that can be later written to this
// store, or rolled back.
func (m *memStore) CacheWrap() paysplit.KVCacheWrap {
	return NewBTreeCacheWrap(m, m.free)
}

// BTreeCacheWrap places a btree cache over a KVStore
type BTreeCacheWrap struct {
	bt   *btree.BTree
	free *btree.FreeList
	back paysplit.KVStore
}

var _ paysplit.KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap initializes a BTree to cache around this kv store. All
// writes are kept in the cache until Write is called.
//
// free may be nil, but set to an existing list to reuse it
// for memory savings
func NewBTreeCacheWrap(kv paysplit.KVStore, free *btree.FreeList) BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(DefaultFreeListSize)
	}
	return BTreeCacheWrap{
		bt:   btree.NewWithFreeList(2, free),
		free: free,
		back: kv,
	}
}

// CacheWrap layers another BTree on top of this one.
// Don't change horses in mid-stream....
func (b BTreeCacheWrap) CacheWrap() paysplit.KVCacheWrap {
	return NewBTreeCacheWrap(b, b.free)
}

// Write syncs with the underlying store in key order.
// And then cleans up
func (b BTreeCacheWrap) Write() error {
	var err error
	b.bt.Ascend(func(i btree.Item) bool {
		switch t := i.(type) {
		case setItem:
			err = b.back.Set(t.key, t.value)
		case deletedItem:
			err = b.back.Delete(t.key)
		}
		return err == nil
	})
	b.Discard()
	if err != nil {
		return errors.Wrapf(errors.ErrDatabase, "cannot write cache: %s", err)
	}
	return nil
}

// Discard invalidates this CacheWrap and releases all data
func (b BTreeCacheWrap) Discard() {
	// clean up the btree -> freelist
	for stop := false; !stop; {
		rem := b.bt.DeleteMin()
		stop = (rem == nil)
	}
}

// Set writes to the BTree only.
func (b BTreeCacheWrap) Set(key, value []byte) error {
	b.bt.ReplaceOrInsert(newSetItem(key, value))
	return nil
}

// Delete marks the key as deleted in the BTree.
func (b BTreeCacheWrap) Delete(key []byte) error {
	b.bt.ReplaceOrInsert(newDeletedItem(key))
	return nil
}

// Get reads from btree if there, else backing store
func (b BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	res := b.bt.Get(bkey{key})
	if res != nil {
		switch t := res.(type) {
		case setItem:
			return t.value, nil
		case deletedItem:
			return nil, nil
		default:
			return nil, errors.Wrapf(errors.ErrDatabase, "Unknown item in btree: %#v", res)
		}
	}
	return b.back.Get(key)
}

// Has reads from btree if there, else backing store
func (b BTreeCacheWrap) Has(key []byte) (bool, error) {
	res := b.bt.Get(bkey{key})
	if res != nil {
		switch res.(type) {
		case setItem:
			return true, nil
		case deletedItem:
			return false, nil
		default:
			return false, errors.Wrapf(errors.ErrDatabase, "Unknown item in btree: %#v", res)
		}
	}
	return b.back.Has(key)
}

/////////////////////////////////////////////////////////
// Items to write to btree

// we enforce all data in our btree implements keyer so we
// can compare nicely
type keyer interface {
	Key() []byte
}

// bkey implements keyer and btree.Item
// and may be used for queries or embedded in data to store
type bkey struct {
	key []byte
}

var _ keyer = bkey{}
var _ btree.Item = bkey{}

func (k bkey) Key() []byte {
	return k.key
}

// Less returns true iff second argument is greater than first
//
// panics if the item to compare doesn't implement keyer.
func (k bkey) Less(item btree.Item) bool {
	cmp := item.(keyer).Key()
	return bytes.Compare(k.key, cmp) < 0
}

type deletedItem struct {
	bkey
}

func newDeletedItem(key []byte) deletedItem {
	return deletedItem{bkey{copyBytes(key)}}
}

type setItem struct {
	bkey
	value []byte
}

func newSetItem(key, value []byte) setItem {
	return setItem{bkey{copyBytes(key)}, copyBytes(value)}
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	cpy := make([]byte, len(b))
	copy(cpy, b)
	return cpy
}
