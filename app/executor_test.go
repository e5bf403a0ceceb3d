package app

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/crypto"
	"github.com/iov-one/qfund/errors"
	"github.com/iov-one/qfund/store/iavl"
	"github.com/iov-one/qfund/x/matching"
	"github.com/iov-one/qfund/x/sigs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

const testChainID = "qfund-test"

func newTestExecutor(t *testing.T, logs *bytes.Buffer) *Executor {
	t.Helper()
	logger := log.NewTMLogger(log.NewSyncWriter(logs))
	exec, err := Application("", logger)
	require.NoError(t, err)

	gen := &Genesis{ChainID: testChainID, AppState: qfund.Options{}}
	require.NoError(t, exec.InitChain(gen, Initializers()))
	return exec
}

// account signs transactions and tracks its nonce.
type account struct {
	key *crypto.PrivateKey
	seq int64
}

func newAccount() *account {
	return &account{key: crypto.GenPrivKeyEd25519()}
}

func (a *account) Address() qfund.Address {
	return a.key.PublicKey().Address()
}

// sign returns a serialized transaction signed with the current nonce.
func (a *account) sign(t *testing.T, msg qfund.Msg) []byte {
	t.Helper()
	tx, err := NewTx(msg)
	require.NoError(t, err)
	sig, err := sigs.SignTx(a.key, tx, testChainID, a.seq)
	require.NoError(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}
	raw, err := tx.Marshal()
	require.NoError(t, err)
	return raw
}

func (a *account) deliver(t *testing.T, exec *Executor, msg qfund.Msg) *qfund.DeliverResult {
	t.Helper()
	res, err := exec.DeliverTx(a.sign(t, msg))
	require.NoError(t, err)
	a.seq++
	return res
}

func TestExecutorSettlement(t *testing.T) {
	var logs bytes.Buffer
	exec := newTestExecutor(t, &logs)
	meta := &qfund.Metadata{Schema: 1}

	creator := newAccount()
	first, second := newAccount(), newAccount()
	voter := newAccount()

	escrowID := qfund.Address(creator.deliver(t, exec, &matching.CreateEscrowMsg{Metadata: meta, DepositAmount: 1000}).Data)
	poolID := qfund.Address(creator.deliver(t, exec, &matching.CreatePoolMsg{Metadata: meta}).Data)
	assert.Equal(t, matching.EscrowCondition(creator.Address()).Address(), escrowID)

	var projects []qfund.Address
	for _, owner := range []*account{first, second} {
		res := owner.deliver(t, exec, &matching.CreateProjectMsg{Metadata: meta, PoolID: poolID, Name: "project"})
		id := qfund.Address(res.Data)
		owner.deliver(t, exec, &matching.BindProjectMsg{Metadata: meta, EscrowID: escrowID, PoolID: poolID, ProjectID: id})
		projects = append(projects, id)
	}

	for i := 0; i < 3; i++ {
		voter.deliver(t, exec, &matching.VoteMsg{Metadata: meta, PoolID: poolID, ProjectID: projects[0], Weight: 10})
	}
	voter.deliver(t, exec, &matching.VoteMsg{Metadata: meta, PoolID: poolID, ProjectID: projects[1], Weight: 10})

	// Only the escrow creator can distribute. A failed transaction does
	// not consume the nonce.
	_, err := exec.DeliverTx(voter.sign(t, &matching.DistributeMsg{Metadata: meta, EscrowID: escrowID, PoolID: poolID}))
	assert.True(t, errors.ErrUnauthorized.Is(err))

	// Check state is based on the last commit.
	id, err := exec.Commit()
	require.NoError(t, err)
	assert.Equal(t, int64(1), id.Version)

	// Check does not modify the delivered state.
	_, err = exec.CheckTx(creator.sign(t, &matching.DistributeMsg{Metadata: meta, EscrowID: escrowID, PoolID: poolID}))
	require.NoError(t, err)

	res := creator.deliver(t, exec, &matching.DistributeMsg{Metadata: meta, EscrowID: escrowID, PoolID: poolID})
	var result matching.DistributeResult
	require.NoError(t, result.Unmarshal(res.Data))
	require.Equal(t, 2, len(result.Settlements))
	assert.Equal(t, uint64(750), result.Settlements[0].Share)
	assert.Equal(t, uint64(250), result.Settlements[1].Share)
	assert.Equal(t, uint64(0), result.Remainder)

	id, err = exec.Commit()
	require.NoError(t, err)
	assert.Equal(t, int64(2), id.Version)
	assert.NotEmpty(t, id.Hash)

	ctrl := matching.NewController()
	err = exec.View(func(db qfund.ReadOnlyKVStore) error {
		p, err := ctrl.ProjectOf(db, poolID, first.Address())
		if err != nil {
			return err
		}
		assert.Equal(t, uint64(750), p.DistributedAmount)
		assert.Equal(t, uint64(30), p.VoterAmount)

		pool, err := ctrl.PoolByCreator(db, creator.Address())
		if err != nil {
			return err
		}
		assert.Equal(t, uint64(4), pool.TotalVotes)

		nonce, err := sigs.NextNonce(db, voter.Address())
		assert.Equal(t, voter.seq, nonce)
		return err
	})
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "path=matching/distribute")
}

func TestExecutorRejectsInvalidTransactions(t *testing.T) {
	var logs bytes.Buffer
	exec := newTestExecutor(t, &logs)

	_, err := exec.DeliverTx([]byte("invalid"))
	assert.Error(t, err)

	// Unsigned transactions are rejected by the signature decorator.
	tx, err := NewTx(&matching.CreatePoolMsg{Metadata: &qfund.Metadata{Schema: 1}})
	require.NoError(t, err)
	raw, err := tx.Marshal()
	require.NoError(t, err)
	_, err = exec.DeliverTx(raw)
	assert.Error(t, err)

	// Signature for a different chain.
	a := newAccount()
	sig, err := sigs.SignTx(a.key, tx, "other-chain", 0)
	require.NoError(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}
	raw, err = tx.Marshal()
	require.NoError(t, err)
	_, err = exec.DeliverTx(raw)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	err = exec.View(func(db qfund.ReadOnlyKVStore) error {
		_, err := matching.NewController().PoolByCreator(db, a.Address())
		assert.True(t, errors.ErrNotFound.Is(err))
		return nil
	})
	require.NoError(t, err)
}

func TestExecutorGenesisFromFile(t *testing.T) {
	const genesis = `{
		"chain_id": "qfund-genesis",
		"app_state": {
			"matching": {
				"pools": [{"creator": "d2a1f84143a9754057e42db6d6c9f986fe0ff673"}]
			}
		}
	}`
	var gen Genesis
	require.NoError(t, json.Unmarshal([]byte(genesis), &gen))

	exec, err := NewExecutor(iavl.NewMemCommitStore(), nil, nil, nil)
	require.NoError(t, err)
	require.NoError(t, exec.InitChain(&gen, &matching.Initializer{}))
	assert.Equal(t, "qfund-genesis", exec.ChainID())

	creator, err := qfund.ParseAddress("d2a1f84143a9754057e42db6d6c9f986fe0ff673")
	require.NoError(t, err)
	err = exec.View(func(db qfund.ReadOnlyKVStore) error {
		_, err := matching.NewController().PoolByCreator(db, creator)
		return err
	})
	assert.NoError(t, err)
}
