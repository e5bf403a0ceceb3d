package app

import (
	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
)

// CommitStore keeps the pending state of a block on top of the last
// committed version. Delivered transactions accumulate in the deliver cache
// until Commit. The check cache lets CheckTx run ahead of delivery and is
// reset on every commit.
type CommitStore struct {
	committed qfund.CommitKVStore
	deliver   qfund.KVCacheWrap
	check     qfund.KVCacheWrap
}

// NewCommitStore opens the latest committed version of db.
func NewCommitStore(db qfund.CommitKVStore) (*CommitStore, error) {
	if err := db.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "load latest version")
	}
	cs := &CommitStore{committed: db}
	cs.reset()
	return cs, nil
}

func (cs *CommitStore) reset() {
	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
}

// Commit persists the delivered state as a new version.
func (cs *CommitStore) Commit() (qfund.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		return qfund.CommitID{}, errors.Wrap(err, "write delivered state")
	}
	cs.check.Discard()
	id, err := cs.committed.Commit()
	if err != nil {
		return id, err
	}
	cs.reset()
	return id, nil
}

// CheckStore is the state CheckTx runs against.
func (cs *CommitStore) CheckStore() qfund.CacheableKVStore {
	return cs.check
}

// DeliverStore is the state DeliverTx runs against.
func (cs *CommitStore) DeliverStore() qfund.CacheableKVStore {
	return cs.deliver
}
