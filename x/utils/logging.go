package utils

import (
	"time"

	"github.com/iov-one/qfund"
	"github.com/tendermint/tendermint/libs/log"
)

// Logging writes one line per transaction with its path and duration.
// Failures are logged as errors, delivered transactions as info and checked
// ones as debug.
type Logging struct{}

var _ qfund.Decorator = Logging{}

func NewLogging() Logging {
	return Logging{}
}

func (Logging) Check(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx, next qfund.Checker) (*qfund.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	logger := txLogger(ctx, tx, start)
	if err != nil {
		logger.Error("check failed", "err", err)
	} else {
		logger.Debug(res.Log)
	}
	return res, err
}

func (Logging) Deliver(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx, next qfund.Deliverer) (*qfund.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	logger := txLogger(ctx, tx, start)
	if err != nil {
		logger.Error("deliver failed", "err", err)
	} else {
		logger.Info(res.Log)
	}
	return res, err
}

func txLogger(ctx qfund.Context, tx qfund.Tx, start time.Time) log.Logger {
	return qfund.GetLogger(ctx).With(
		"path", pathOf(tx),
		"duration", time.Since(start)/time.Microsecond,
	)
}

func pathOf(tx qfund.Tx) string {
	if tx == nil {
		return "(missing)"
	}
	return qfund.GetPath(tx)
}
