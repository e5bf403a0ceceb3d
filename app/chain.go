package app

import (
	"reflect"

	"github.com/iov-one/qfund"
)

// Decorators is an ordered list of decorators waiting for the handler they
// wrap. The first decorator runs first.
type Decorators struct {
	chain []qfund.Decorator
}

// ChainDecorators returns the list of given decorators. Nil decorators are
// skipped, so optional ones can be passed unconditionally:
//
//	app.ChainDecorators(
//		utils.NewLogging(),
//		utils.NewRecovery(),
//		sigs.NewDecorator(),
//	).WithHandler(router)
func ChainDecorators(chain ...qfund.Decorator) Decorators {
	return Decorators{}.Chain(chain...)
}

// Chain returns a copy of d extended with given decorators.
func (d Decorators) Chain(chain ...qfund.Decorator) Decorators {
	res := Decorators{chain: append([]qfund.Decorator(nil), d.chain...)}
	for _, dec := range chain {
		if dec == nil {
			continue
		}
		if v := reflect.ValueOf(dec); v.Kind() == reflect.Ptr && v.IsNil() {
			continue
		}
		res.chain = append(res.chain, dec)
	}
	return res
}

// WithHandler returns h wrapped by all decorators.
func (d Decorators) WithHandler(h qfund.Handler) qfund.Handler {
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = decorated{dec: d.chain[i], next: h}
	}
	return h
}

// decorated runs a single decorator around the next handler.
type decorated struct {
	dec  qfund.Decorator
	next qfund.Handler
}

func (s decorated) Check(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (*qfund.CheckResult, error) {
	return s.dec.Check(ctx, db, tx, s.next)
}

func (s decorated) Deliver(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (*qfund.DeliverResult, error) {
	return s.dec.Deliver(ctx, db, tx, s.next)
}
