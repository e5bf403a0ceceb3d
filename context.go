package qfund

import (
	"context"
	"regexp"

	"github.com/iov-one/qfund/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// Context is the context passed between the executor, decorators and
// handlers. Each extension, such as x/sigs, may add its own keys to enrich
// the context with specific data.
//
// There should exist two functions for every XYZ of type T that we want to
// support in Context:
//
//	WithXYZ(Context, T) Context
//	GetXYZ(Context) (val T, ok bool)
type Context = context.Context

type contextKey int // local to the qfund module

const (
	contextKeyChainID contextKey = iota
	contextKeyLogger
)

var (
	// DefaultLogger is used for all context that have not
	// set anything themselves.
	DefaultLogger = log.NewNopLogger()

	// IsValidChainID is the RegExp to ensure valid chain IDs.
	IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString
)

// WithChainID sets the chain id for the Context. Chain id is part of every
// signature, so it can only be set once.
func WithChainID(ctx Context, chainID string) (Context, error) {
	if ctx.Value(contextKeyChainID) != nil {
		return nil, errors.Wrap(errors.ErrState, "chain id already set")
	}
	if !IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id: %q", chainID)
	}
	return context.WithValue(ctx, contextKeyChainID, chainID), nil
}

// GetChainID returns the current chain id. Empty string if not set.
func GetChainID(ctx Context) string {
	val, _ := ctx.Value(contextKeyChainID).(string)
	return val
}

// WithLogger sets the logger for this Context.
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// WithLogInfo accepts keyvalue pairs, and returns another context like this,
// after passing all the keyvals to the Logger.
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	logger := GetLogger(ctx).With(keyvals...)
	return WithLogger(ctx, logger)
}

// GetLogger returns the currently set logger, or DefaultLogger if none was
// set.
func GetLogger(ctx Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}
