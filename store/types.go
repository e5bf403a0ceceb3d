package store

import "github.com/iov-one/qfund"

// Move references for all storage types into this package
// for shorter names everywhere.

type ReadOnlyKVStore = qfund.ReadOnlyKVStore
type SetDeleter = qfund.SetDeleter
type KVStore = qfund.KVStore
type Batch = qfund.Batch
type Iterator = qfund.Iterator
type CacheableKVStore = qfund.CacheableKVStore
type KVCacheWrap = qfund.KVCacheWrap
type CommitKVStore = qfund.CommitKVStore
type CommitID = qfund.CommitID
