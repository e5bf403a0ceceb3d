// Package sigs verifies ed25519 transaction signatures and keeps a nonce per
// signer so that a signed transaction is accepted once.
package sigs

import (
	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
)

// Decorator authenticates a transaction and passes its signers down the
// stack, readable with Authenticate.
type Decorator struct{}

var _ qfund.Decorator = Decorator{}

// NewDecorator returns a decorator that rejects unsigned transactions.
func NewDecorator() Decorator {
	return Decorator{}
}

func (d Decorator) Check(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx, next qfund.Checker) (*qfund.CheckResult, error) {
	signers, err := d.signers(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return next.Check(withSigners(ctx, signers), db, tx)
}

func (d Decorator) Deliver(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx, next qfund.Deliverer) (*qfund.DeliverResult, error) {
	signers, err := d.signers(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(withSigners(ctx, signers), db, tx)
}

func (Decorator) signers(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) ([]qfund.Condition, error) {
	stx, ok := tx.(SignedTx)
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "%T cannot carry signatures", tx)
	}
	signers, err := VerifyTxSignatures(db, stx, qfund.GetChainID(ctx))
	if err != nil {
		return nil, err
	}
	if len(signers) == 0 {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return signers, nil
}
