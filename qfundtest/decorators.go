package qfundtest

import "github.com/iov-one/qfund"

// calls counts Check and Deliver invocations of a mock.
type calls struct {
	check   int
	deliver int
}

func (c *calls) CheckCallCount() int   { return c.check }
func (c *calls) DeliverCallCount() int { return c.deliver }
func (c *calls) CallCount() int        { return c.check + c.deliver }

// Decorator passes every call to the next handler unless CheckErr or
// DeliverErr is set, in which case that error is returned instead. Failed
// calls are counted too.
type Decorator struct {
	calls
	CheckErr   error
	DeliverErr error
}

var _ qfund.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx, next qfund.Checker) (*qfund.CheckResult, error) {
	d.check++
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx, next qfund.Deliverer) (*qfund.DeliverResult, error) {
	d.deliver++
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}
