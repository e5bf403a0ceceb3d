package sigs

import (
	"bytes"
	"testing"

	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/crypto"
	"github.com/iov-one/qfund/errors"
	"github.com/iov-one/qfund/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSignBytes(t *testing.T) {
	const chainID = "qfund-test"
	payload := []byte("create escrow")
	base, err := BuildSignBytes(payload, chainID, 4)
	require.NoError(t, err)

	cases := map[string]struct {
		payload   []byte
		chainID   string
		nonce     int64
		wantErr   *errors.Error
		wantEqual bool
	}{
		"same input":       {payload: payload, chainID: chainID, nonce: 4, wantEqual: true},
		"other payload":    {payload: []byte("create pool"), chainID: chainID, nonce: 4},
		"other chain":      {payload: payload, chainID: chainID + "2", nonce: 4},
		"next nonce":       {payload: payload, chainID: chainID, nonce: 5},
		"negative nonce":   {payload: payload, chainID: chainID, nonce: -1, wantErr: ErrInvalidSequence},
		"invalid chain id": {payload: payload, chainID: "no", nonce: 4, wantErr: errors.ErrInput},
		"empty payload":    {payload: nil, chainID: chainID, nonce: 4},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := BuildSignBytes(tc.payload, tc.chainID, tc.nonce)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.wantErr, err)
			}
			if tc.wantErr != nil {
				return
			}
			assert.Len(t, got, 64)
			assert.Equal(t, tc.wantEqual, bytes.Equal(base, got))
		})
	}

	tx := NewStdTx(payload)
	fromTx, err := BuildSignBytesTx(tx, chainID, 4)
	require.NoError(t, err)
	assert.Equal(t, base, fromTx)
}

func TestVerifySignature(t *testing.T) {
	const chainID = "qfund-test"
	db := store.MemStore()
	owner := crypto.GenPrivKeyEd25519()
	tx := NewStdTx([]byte("bind project"))
	payload, err := tx.GetSignBytes()
	require.NoError(t, err)

	signed := func(chain string, nonce int64) *StdSignature {
		sig, err := SignTx(owner, tx, chain, nonce)
		require.NoError(t, err)
		return sig
	}
	nonce := func() int64 {
		n, err := NextNonce(db, owner.PublicKey().Address())
		require.NoError(t, err)
		return n
	}

	_, err = VerifySignature(db, &StdSignature{}, payload, chainID)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.Equal(t, int64(0), nonce())

	_, err = VerifySignature(db, signed(chainID, 1), payload, chainID)
	assert.True(t, ErrInvalidSequence.Is(err))

	cond, err := VerifySignature(db, signed(chainID, 0), payload, chainID)
	require.NoError(t, err)
	assert.Equal(t, owner.PublicKey().Condition(), cond)
	assert.Equal(t, int64(1), nonce())

	_, err = VerifySignature(db, signed(chainID, 0), payload, chainID)
	assert.True(t, ErrInvalidSequence.Is(err))

	_, err = VerifySignature(db, signed("other-chain", 1), payload, chainID)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.Equal(t, int64(1), nonce())

	voter := crypto.GenPrivKeyEd25519()
	second, err := SignTx(voter, tx, chainID, 0)
	require.NoError(t, err)
	tx.Signatures = []*StdSignature{signed(chainID, 1), second}
	conds, err := VerifyTxSignatures(db, tx, chainID)
	require.NoError(t, err)
	assert.Equal(t, []qfund.Condition{owner.PublicKey().Condition(), voter.PublicKey().Condition()}, conds)
	assert.Equal(t, int64(2), nonce())
}

func TestUserDataNonce(t *testing.T) {
	u := NewUser(crypto.GenPrivKeyEd25519().PublicKey())
	require.NoError(t, u.Validate())

	require.NoError(t, u.CheckAndIncrementSequence(0))
	assert.Equal(t, int64(1), u.Sequence)
	assert.True(t, ErrInvalidSequence.Is(u.CheckAndIncrementSequence(0)))

	u.Sequence = maxSequenceValue
	assert.True(t, errors.ErrOverflow.Is(u.CheckAndIncrementSequence(maxSequenceValue)))

	keyless := &UserData{Metadata: &qfund.Metadata{Schema: 1}, Sequence: 3}
	assert.True(t, ErrInvalidSequence.Is(keyless.Validate()))
}

func TestUserDataStored(t *testing.T) {
	db := store.MemStore()
	pub := crypto.GenPrivKeyEd25519().PublicKey()
	b := NewBucket()

	fresh, err := b.GetOrCreate(db, pub)
	require.NoError(t, err)
	assert.Equal(t, int64(0), fresh.Sequence)

	fresh.Sequence = 42
	require.NoError(t, b.Put(db, pub.Address(), fresh))

	got, err := b.GetOrCreate(db, pub)
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
}
