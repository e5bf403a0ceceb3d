package utils

import (
	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
)

// Recovery turns a panic of the wrapped handler into an ErrPanic error, so
// that a faulty transaction fails instead of halting the node.
type Recovery struct{}

var _ qfund.Decorator = Recovery{}

func NewRecovery() Recovery {
	return Recovery{}
}

func (Recovery) Check(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx, next qfund.Checker) (res *qfund.CheckResult, err error) {
	defer recovered(ctx, tx, &err)
	return next.Check(ctx, db, tx)
}

func (Recovery) Deliver(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx, next qfund.Deliverer) (res *qfund.DeliverResult, err error) {
	defer recovered(ctx, tx, &err)
	return next.Deliver(ctx, db, tx)
}

// recovered must be deferred directly, recover works only in the deferred
// function itself.
func recovered(ctx qfund.Context, tx qfund.Tx, err *error) {
	if r := recover(); r != nil {
		*err = errors.Wrapf(errors.ErrPanic, "%v", r)
		qfund.GetLogger(ctx).Error("handler panic", "path", pathOf(tx), "panic", r)
	}
}
