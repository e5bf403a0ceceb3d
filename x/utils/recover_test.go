package utils

import (
	"bytes"
	"context"
	"testing"

	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
	"github.com/iov-one/qfund/qfundtest"
	"github.com/iov-one/qfund/store"
	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func TestRecoveryStopsPanics(t *testing.T) {
	var logs bytes.Buffer
	ctx := qfund.WithLogger(context.Background(), log.NewTMLogger(log.NewSyncWriter(&logs)))
	db := store.MemStore()
	tx := &qfundtest.Tx{Msg: &qfundtest.Msg{RoutePath: "matching/distribute"}}
	panics := qfundtest.PanicHandler{Err: errors.ErrState}

	_, err := NewRecovery().Check(ctx, db, tx, panics)
	assert.True(t, errors.ErrPanic.Is(err), "got %+v", err)

	_, err = NewRecovery().Deliver(ctx, db, tx, panics)
	assert.True(t, errors.ErrPanic.Is(err), "got %+v", err)
	assert.Contains(t, logs.String(), "path=matching/distribute")

	// Without a panic the result passes through.
	ok := &qfundtest.Handler{DeliverResult: qfund.DeliverResult{Log: "done"}}
	res, err := NewRecovery().Deliver(ctx, db, tx, ok)
	assert.NoError(t, err)
	assert.Equal(t, "done", res.Log)
}
