package store

import (
	"bytes"
	"sync"

	"github.com/google/btree"
)

// All cache trees share one free list to reuse nodes between transactions.
var freelist = btree.NewFreeList(128)

// BTreeCacheWrap keeps writes in a btree on top of a parent store. Reads and
// iterators see the cached writes merged with the parent. Write pushes the
// cached writes to the parent as one batch. It is safe for concurrent use.
type BTreeCacheWrap struct {
	mu        sync.RWMutex
	tree      *btree.BTree
	parent    KVStore
	onDiscard func()
}

var _ KVCacheWrap = (*BTreeCacheWrap)(nil)

// NewBTreeCacheWrap returns an empty cache over parent. onDiscard, if not
// nil, is called by Discard.
func NewBTreeCacheWrap(parent KVStore, onDiscard func()) *BTreeCacheWrap {
	return &BTreeCacheWrap{
		tree:      btree.NewWithFreeList(2, freelist),
		parent:    parent,
		onDiscard: onDiscard,
	}
}

// MemStore returns an empty store kept in memory only.
func MemStore() *BTreeCacheWrap {
	return NewBTreeCacheWrap(EmptyKVStore{}, nil)
}

func (b *BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b, nil)
}

func (b *BTreeCacheWrap) NewBatch() Batch {
	return NewNonAtomicBatch(b)
}

// Write flushes the cached writes to the parent and empties the cache.
func (b *BTreeCacheWrap) Write() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	batch := b.parent.NewBatch()
	var err error
	b.tree.Ascend(func(i btree.Item) bool {
		e := i.(entry)
		if e.deleted {
			err = batch.Delete(e.key)
		} else {
			err = batch.Set(e.key, e.value)
		}
		return err == nil
	})
	if err != nil {
		return err
	}
	if err := batch.Write(); err != nil {
		return err
	}
	b.tree.Clear(true)
	return nil
}

// Discard drops all cached writes.
func (b *BTreeCacheWrap) Discard() {
	b.mu.Lock()
	b.tree.Clear(true)
	b.mu.Unlock()
	if b.onDiscard != nil {
		b.onDiscard()
	}
}

func (b *BTreeCacheWrap) Set(key, value []byte) error {
	b.put(entry{key: key, value: value})
	return nil
}

func (b *BTreeCacheWrap) Delete(key []byte) error {
	b.put(entry{key: key, deleted: true})
	return nil
}

func (b *BTreeCacheWrap) put(e entry) {
	b.mu.Lock()
	b.tree.ReplaceOrInsert(e)
	b.mu.Unlock()
}

// cached returns the cached entry of key, if any.
func (b *BTreeCacheWrap) cached(key []byte) (entry, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	e, ok := b.tree.Get(entry{key: key}).(entry)
	return e, ok
}

func (b *BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	if e, ok := b.cached(key); ok {
		if e.deleted {
			return nil, nil
		}
		return e.value, nil
	}
	return b.parent.Get(key)
}

func (b *BTreeCacheWrap) Has(key []byte) (bool, error) {
	if e, ok := b.cached(key); ok {
		return !e.deleted, nil
	}
	return b.parent.Has(key)
}

// Iterator returns the entries with start <= key < end in ascending order.
// A nil bound is open.
func (b *BTreeCacheWrap) Iterator(start, end []byte) (Iterator, error) {
	parent, err := b.parent.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	var cached []entry
	collect := func(i btree.Item) bool {
		cached = append(cached, i.(entry))
		return true
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	switch {
	case start == nil && end == nil:
		b.tree.Ascend(collect)
	case start == nil:
		b.tree.AscendLessThan(entry{key: end}, collect)
	case end == nil:
		b.tree.AscendGreaterOrEqual(entry{key: start}, collect)
	default:
		b.tree.AscendRange(entry{key: start}, entry{key: end}, collect)
	}
	return newMergedIterator(cached, parent, true), nil
}

// ReverseIterator returns the entries with start <= key < end in descending
// order. A nil bound is open.
func (b *BTreeCacheWrap) ReverseIterator(start, end []byte) (Iterator, error) {
	parent, err := b.parent.ReverseIterator(start, end)
	if err != nil {
		return nil, err
	}
	var cached []entry
	collect := func(i btree.Item) bool {
		e := i.(entry)
		if start != nil && bytes.Compare(e.key, start) < 0 {
			return false
		}
		// DescendLessOrEqual includes end, which is exclusive.
		if end == nil || bytes.Compare(e.key, end) < 0 {
			cached = append(cached, e)
		}
		return true
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if end == nil {
		b.tree.Descend(collect)
	} else {
		b.tree.DescendLessOrEqual(entry{key: end}, collect)
	}
	return newMergedIterator(cached, parent, false), nil
}

// entry is a cached write. A deleted entry hides the parent value.
type entry struct {
	key     []byte
	value   []byte
	deleted bool
}

func (e entry) Less(than btree.Item) bool {
	return bytes.Compare(e.key, than.(entry).key) < 0
}
