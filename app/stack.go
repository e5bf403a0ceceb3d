package app

import (
	"path/filepath"
	"strings"

	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
	"github.com/iov-one/qfund/store/iavl"
	"github.com/iov-one/qfund/x"
	"github.com/iov-one/qfund/x/matching"
	"github.com/iov-one/qfund/x/sigs"
	"github.com/iov-one/qfund/x/utils"
	"github.com/tendermint/tendermint/libs/log"
)

// Authenticator returns the authentication used by the stack, ed25519
// signatures verified by the sigs decorator.
func Authenticator() x.Authenticator {
	return sigs.Authenticate{}
}

// Chain returns the decorators every transaction passes through.
func Chain() Decorators {
	return ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		// on CheckTx, a bad transaction does not affect the check state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		utils.NewSavepoint().OnDeliver(),
	)
}

// Routes returns a router dispatching all matching pool messages.
func Routes(auth x.Authenticator) *Router {
	r := NewRouter()
	matching.RegisterRoutes(r, auth)
	return r
}

// Stack wires the matching routes with the standard decorator chain.
func Stack() qfund.Handler {
	auth := Authenticator()
	return Chain().WithHandler(Routes(auth))
}

// Decoder returns a transaction decoder that knows every message handled
// by the Stack.
func Decoder() *TxDecoder {
	return NewTxDecoder(
		&matching.CreateEscrowMsg{},
		&matching.CreatePoolMsg{},
		&matching.CreateProjectMsg{},
		&matching.BindProjectMsg{},
		&matching.VoteMsg{},
		&matching.DistributeMsg{},
		&matching.UpdateConfigurationMsg{},
	)
}

// Initializers returns the genesis initializers of every extension used by
// the Stack.
func Initializers() qfund.Initializer {
	return ChainInitializers(&matching.Initializer{})
}

// CommitKVStore returns a store persisting its data at given path. An empty
// path returns a store kept in memory.
func CommitKVStore(dbPath string) (qfund.CommitKVStore, error) {
	if dbPath == "" {
		return iavl.NewMemCommitStore(), nil
	}
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "database path %q", dbPath)
	}
	// Some callers add a ".db" suffix that the database appends itself.
	path = strings.TrimSuffix(path, filepath.Ext(path))
	dir, name := filepath.Split(path)
	return iavl.NewCommitStore(dir, name)
}

// Application returns an executor running the Stack over a store at given
// path. Use an empty path for an in memory store.
func Application(dbPath string, logger log.Logger) (*Executor, error) {
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return nil, err
	}
	return NewExecutor(kv, Decoder().Decode, Stack(), logger)
}
