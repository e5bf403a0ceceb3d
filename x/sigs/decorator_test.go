package sigs

import (
	"context"
	"testing"

	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/crypto"
	"github.com/iov-one/qfund/errors"
	"github.com/iov-one/qfund/qfundtest"
	"github.com/iov-one/qfund/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoratorAuthenticates(t *testing.T) {
	const chainID = "qfund-sigs"
	ctx, err := qfund.WithChainID(context.Background(), chainID)
	require.NoError(t, err)

	voter := crypto.GenPrivKeyEd25519()
	sign := func(tx *StdTx, nonce int64) *StdSignature {
		sig, err := SignTx(voter, tx, chainID, nonce)
		require.NoError(t, err)
		return sig
	}

	cases := map[string]struct {
		tx          func() qfund.Tx
		wantErr     *errors.Error
		wantSigners []qfund.Condition
	}{
		"first nonce": {
			tx: func() qfund.Tx {
				tx := NewStdTx([]byte("vote"))
				tx.Signatures = []*StdSignature{sign(tx, 0)}
				return tx
			},
			wantSigners: []qfund.Condition{voter.PublicKey().Condition()},
		},
		"unsigned": {
			tx:      func() qfund.Tx { return NewStdTx([]byte("vote")) },
			wantErr: errors.ErrUnauthorized,
		},
		"cannot carry signatures": {
			tx:      func() qfund.Tx { return &qfundtest.Tx{Msg: &qfundtest.Msg{RoutePath: "test/sigs"}} },
			wantErr: errors.ErrUnauthorized,
		},
		"nonce from the future": {
			tx: func() qfund.Tx {
				tx := NewStdTx([]byte("vote"))
				tx.Signatures = []*StdSignature{sign(tx, 3)}
				return tx
			},
			wantErr: ErrInvalidSequence,
		},
		"signed for another payload": {
			tx: func() qfund.Tx {
				tx := NewStdTx([]byte("vote"))
				tx.Signatures = []*StdSignature{sign(NewStdTx([]byte("distribute")), 0)}
				return tx
			},
			wantErr: errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			for _, deliver := range []bool{false, true} {
				db := store.MemStore()
				h := new(SigCheckHandler)
				var err error
				if deliver {
					_, err = NewDecorator().Deliver(ctx, db, tc.tx(), h)
				} else {
					_, err = NewDecorator().Check(ctx, db, tc.tx(), h)
				}
				if !tc.wantErr.Is(err) {
					t.Fatalf("deliver=%v: want %q error, got %+v", deliver, tc.wantErr, err)
				}
				assert.Equal(t, tc.wantSigners, h.Signers)
			}
		})
	}
}

func TestDecoratorRejectsReplay(t *testing.T) {
	const chainID = "qfund-sigs"
	ctx, err := qfund.WithChainID(context.Background(), chainID)
	require.NoError(t, err)
	db := store.MemStore()
	creator := crypto.GenPrivKeyEd25519()

	tx := NewStdTx([]byte("create pool"))
	sig, err := SignTx(creator, tx, chainID, 0)
	require.NoError(t, err)
	tx.Signatures = []*StdSignature{sig}

	h := new(SigCheckHandler)
	_, err = NewDecorator().Deliver(ctx, db, tx, h)
	require.NoError(t, err)

	_, err = NewDecorator().Deliver(ctx, db, tx, h)
	assert.True(t, ErrInvalidSequence.Is(err), "got %+v", err)

	next, err := SignTx(creator, tx, chainID, 1)
	require.NoError(t, err)
	tx.Signatures = []*StdSignature{next}
	_, err = NewDecorator().Check(ctx, db, tx, h)
	assert.NoError(t, err)
	assert.Equal(t, []qfund.Condition{creator.PublicKey().Condition()}, h.Signers)
	assert.True(t, Authenticate{}.HasAddress(withSigners(ctx, h.Signers), creator.PublicKey().Address()))
}
