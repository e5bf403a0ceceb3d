package app

import (
	"context"
	"sync"

	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// Executor runs transactions against a committed store. All calls are
// serialized, so a handler always has exclusive access to the state.
//
// Each transaction is executed on its own cache of the deliver (or check)
// store. The cache is written only if the handler succeeded.
type Executor struct {
	mu      sync.Mutex
	store   *CommitStore
	decoder qfund.TxDecoder
	handler qfund.Handler
	logger  log.Logger
	chainID string
}

// NewExecutor loads the latest committed state of given store.
func NewExecutor(
	store qfund.CommitKVStore,
	decoder qfund.TxDecoder,
	handler qfund.Handler,
	logger log.Logger,
) (*Executor, error) {
	cs, err := NewCommitStore(store)
	if err != nil {
		return nil, err
	}
	chainID, err := loadChainID(cs.DeliverStore())
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Executor{
		store:   cs,
		decoder: decoder,
		handler: handler,
		logger:  logger,
		chainID: chainID,
	}, nil
}

// ChainID returns the chain id set by the genesis, or an empty string.
func (e *Executor) ChainID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.chainID
}

// InitChain stores the chain id and initializes all extensions with the
// genesis application state. Nothing is written if any initializer fails.
func (e *Executor) InitChain(gen *Genesis, init qfund.Initializer) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	cache := e.store.DeliverStore().CacheWrap()
	if err := saveChainID(cache, gen.ChainID); err != nil {
		cache.Discard()
		return err
	}
	if err := init.FromGenesis(gen.AppState, cache); err != nil {
		cache.Discard()
		return errors.Wrap(err, "initialize from genesis")
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "write genesis state")
	}
	e.chainID = gen.ChainID
	e.logger.Info("chain initialized", "chain_id", gen.ChainID)
	return nil
}

// CheckTx validates a transaction against the check state.
func (e *Executor) CheckTx(raw []byte) (*qfund.CheckResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	tx, err := e.loadTx(raw)
	if err != nil {
		return nil, err
	}
	ctx, err := e.context("check_tx", tx)
	if err != nil {
		return nil, err
	}
	cache := e.store.CheckStore().CacheWrap()
	res, err := e.handler.Check(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "write check cache")
	}
	return res, nil
}

// DeliverTx executes a transaction against the deliver state.
func (e *Executor) DeliverTx(raw []byte) (*qfund.DeliverResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	tx, err := e.loadTx(raw)
	if err != nil {
		return nil, err
	}
	ctx, err := e.context("deliver_tx", tx)
	if err != nil {
		return nil, err
	}
	cache := e.store.DeliverStore().CacheWrap()
	res, err := e.handler.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "write deliver cache")
	}
	return res, nil
}

// Commit persists all delivered transactions.
func (e *Executor) Commit() (qfund.CommitID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id, err := e.store.Commit()
	if err != nil {
		return id, errors.Wrap(err, "commit")
	}
	e.logger.Info("commit", "version", id.Version, "hash", id.Hash)
	return id, nil
}

// View calls fn with a read only view of the delivered state.
func (e *Executor) View(fn func(db qfund.ReadOnlyKVStore) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.store.DeliverStore())
}

func (e *Executor) context(call string, tx qfund.Tx) (qfund.Context, error) {
	ctx := qfund.WithLogger(context.Background(), e.logger)
	if e.chainID != "" {
		var err error
		if ctx, err = qfund.WithChainID(ctx, e.chainID); err != nil {
			return nil, err
		}
	}
	return qfund.WithLogInfo(ctx, "call", call, "path", qfund.GetPath(tx)), nil
}

// loadTx calls the decoder, and capture any panics
func (e *Executor) loadTx(raw []byte) (tx qfund.Tx, err error) {
	defer errors.Recover(&err)
	tx, err = e.decoder(raw)
	return
}
