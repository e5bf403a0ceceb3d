package utils

import (
	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
)

// Savepoint runs the wrapped handler on a cache of the store. The cache is
// written only if the handler succeeds, so a failed transaction leaves no
// partial state. It is disabled until OnCheck or OnDeliver is called.
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ qfund.Decorator = Savepoint{}

func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnCheck enables the savepoint for Check calls.
func (s Savepoint) OnCheck() Savepoint {
	s.onCheck = true
	return s
}

// OnDeliver enables the savepoint for Deliver calls.
func (s Savepoint) OnDeliver() Savepoint {
	s.onDeliver = true
	return s
}

func (s Savepoint) Check(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx, next qfund.Checker) (*qfund.CheckResult, error) {
	var res *qfund.CheckResult
	err := atomically(s.onCheck, db, func(kv qfund.KVStore) (err error) {
		res, err = next.Check(ctx, kv, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s Savepoint) Deliver(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx, next qfund.Deliverer) (*qfund.DeliverResult, error) {
	var res *qfund.DeliverResult
	err := atomically(s.onDeliver, db, func(kv qfund.KVStore) (err error) {
		res, err = next.Deliver(ctx, kv, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// atomically calls fn with a cache of db and writes the cache if fn
// succeeds. When disabled, or when db cannot be cached, fn gets db itself.
func atomically(enabled bool, db qfund.KVStore, fn func(qfund.KVStore) error) error {
	cacheable, ok := db.(qfund.CacheableKVStore)
	if !enabled || !ok {
		return fn(db)
	}
	cache := cacheable.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "write savepoint")
	}
	return nil
}
