/*
Package iavl provides a durable CommitKVStore on top of tendermint/iavl.
Every committed version is a merkle root over all records, persisted to
a goleveldb database (or kept in memory for tests).
*/
package iavl

import (
	"sync"

	"github.com/iov-one/qfund/errors"
	"github.com/iov-one/qfund/store"
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
)

const defaultCacheSize = 10000

// CommitStore manages a iavl committed state.
type CommitStore struct {
	mu   sync.Mutex
	tree *iavl.MutableTree
	// numHistory is how many committed versions are kept around, zero
	// keeps all of them.
	numHistory int64
}

var _ store.CommitKVStore = (*CommitStore)(nil)

// NewCommitStore creates a new store with disk backing in the directory
// path, using name as the database name.
func NewCommitStore(path, name string) (*CommitStore, error) {
	db, err := dbm.NewGoLevelDB(name, path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return newCommitStore(db), nil
}

// NewMemCommitStore creates a store that keeps every version in memory.
func NewMemCommitStore() *CommitStore {
	return newCommitStore(dbm.NewMemDB())
}

func newCommitStore(db dbm.DB) *CommitStore {
	return &CommitStore{
		tree: iavl.NewMutableTree(db, defaultCacheSize),
	}
}

// WithHistory limits the number of committed versions kept.
func (s *CommitStore) WithHistory(n int64) *CommitStore {
	s.numHistory = n
	return s
}

// Get returns the value at last committed state.
// Returns nil iff key doesn't exist. Panics on nil key.
func (s *CommitStore) Get(key []byte) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	version := s.tree.Version()
	if version == 0 {
		return nil, nil
	}
	_, val := s.tree.GetVersioned(key, version)
	return val, nil
}

// Commit the next version to disk, and returns info.
func (s *CommitStore) Commit() (store.CommitID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}

	if s.numHistory > 0 && version > s.numHistory {
		if err := s.tree.DeleteVersion(version - s.numHistory); err != nil {
			return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
		}
	}

	return store.CommitID{
		Version: version,
		Hash:    hash,
	}, nil
}

// LoadLatestVersion loads the latest persisted version.
// If there was a crash during the last commit, it is guaranteed
// to return a stable state, even if older.
func (s *CommitStore) LoadLatestVersion() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.tree.Load(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// LatestVersion returns info on the latest version saved to disk.
func (s *CommitStore) LatestVersion() (store.CommitID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return store.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}, nil
}

// CacheWrap gives us a savepoint to perform actions.
// Written data lands in the working tree and becomes durable on Commit.
func (s *CommitStore) CacheWrap() store.KVCacheWrap {
	return s.Adapter().CacheWrap()
}

// Adapter returns a KVStore over the uncommitted working tree.
func (s *CommitStore) Adapter() *Adapter {
	return &Adapter{store: s}
}

// Adapter gives a KVStore view of the working tree. Every access is
// serialized by the parent CommitStore lock.
type Adapter struct {
	store *CommitStore
}

var _ store.CacheableKVStore = (*Adapter)(nil)

// Get returns nil iff key doesn't exist. Panics on nil key.
func (a *Adapter) Get(key []byte) ([]byte, error) {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	_, val := a.store.tree.Get(key)
	return val, nil
}

// Has checks if a key exists. Panics on nil key.
func (a *Adapter) Has(key []byte) (bool, error) {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	return a.store.tree.Has(key), nil
}

// Set adds a new value.
func (a *Adapter) Set(key, value []byte) error {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	a.store.tree.Set(key, value)
	return nil
}

// Delete removes from the tree.
func (a *Adapter) Delete(key []byte) error {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	a.store.tree.Remove(key)
	return nil
}

// NewBatch returns a batch that applies all writes on Write.
func (a *Adapter) NewBatch() store.Batch {
	return store.NewNonAtomicBatch(a)
}

// CacheWrap wraps us once again, with btree.
func (a *Adapter) CacheWrap() store.KVCacheWrap {
	return store.NewBTreeCacheWrap(a, nil)
}

// Iterator over a domain of keys in ascending order. End is exclusive.
func (a *Adapter) Iterator(start, end []byte) (store.Iterator, error) {
	return a.collect(start, end, true), nil
}

// ReverseIterator over a domain of keys in descending order. End is exclusive.
func (a *Adapter) ReverseIterator(start, end []byte) (store.Iterator, error) {
	return a.collect(start, end, false), nil
}

func (a *Adapter) collect(start, end []byte, ascending bool) store.Iterator {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	var res []store.Model
	a.store.tree.IterateRange(start, end, ascending, func(key, value []byte) bool {
		res = append(res, store.Pair(key, value))
		return false
	})
	return store.NewSliceIterator(res)
}
