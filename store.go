package qfund

// ReadOnlyKVStore reads from a key value store. Keys must not be nil.
type ReadOnlyKVStore interface {
	// Get returns nil for a missing key.
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)

	// Iterator walks keys in [start, end) in ascending order. A nil bound
	// is open. The range must not be written to before the iterator is
	// released.
	Iterator(start, end []byte) (Iterator, error)

	// ReverseIterator walks the same range as Iterator, in descending
	// order.
	ReverseIterator(start, end []byte) (Iterator, error)
}

// SetDeleter writes to a store or a batch. Keys must not be nil.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// KVStore is the storage every handler and bucket works on.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter
	NewBatch() Batch
}

// Batch collects writes applied together by Write.
type Batch interface {
	SetDeleter
	Write() error
}

// Iterator returns entries one by one. Callers must Release it:
//
//	iter, err := db.Iterator(start, end)
//	if err != nil { ... }
//	defer iter.Release()
//	for {
//		key, value, err := iter.Next()
//		if errors.ErrIteratorDone.Is(err) {
//			break
//		}
//		...
//	}
type Iterator interface {
	// Next returns errors.ErrIteratorDone after the last entry.
	Next() (key, value []byte, err error)
	Release()
}

// CacheableKVStore can stack a write cache on top of itself.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap is a write cache. Reads see the cached writes merged with the
// parent. Write pushes the writes to the parent and Discard drops them.
// Caches can be stacked.
type KVCacheWrap interface {
	CacheableKVStore
	Write() error
	Discard()
}

// CommitKVStore persists versions of the state.
type CommitKVStore interface {
	// Get reads from the last committed version.
	Get(key []byte) ([]byte, error)

	// CacheWrap returns a write cache over the last committed version.
	CacheWrap() KVCacheWrap

	// Commit persists all written data as a new version.
	Commit() (CommitID, error)

	// LoadLatestVersion opens the last version that was fully committed.
	LoadLatestVersion() error

	LatestVersion() (CommitID, error)
}

// CommitID identifies a committed version by its number and root hash.
type CommitID struct {
	Version int64
	Hash    []byte
}
