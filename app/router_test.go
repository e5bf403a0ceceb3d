package app

import (
	"context"
	"testing"

	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
	"github.com/iov-one/qfund/qfundtest"
	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	r := NewRouter()

	counter := &qfundtest.Handler{}
	failing := &qfundtest.Handler{
		CheckErr:   errors.ErrHuman,
		DeliverErr: errors.ErrHuman,
	}
	r.Handle("test/good", counter)
	r.Handle("test/bad", failing)

	// make sure invalid registrations panic
	assert.Panics(t, func() { r.Handle("test/good", counter) })
	assert.Panics(t, func() { r.Handle("l:7", counter) })

	ctx := context.Background()
	txFor := func(path string) qfund.Tx {
		return &qfundtest.Tx{Msg: &qfundtest.Msg{RoutePath: path}}
	}

	_, err := r.Check(ctx, nil, txFor("test/good"))
	assert.NoError(t, err)
	_, err = r.Deliver(ctx, nil, txFor("test/good"))
	assert.NoError(t, err)
	assert.Equal(t, 2, counter.CallCount())

	_, err = r.Deliver(ctx, nil, txFor("test/bad"))
	assert.True(t, errors.ErrHuman.Is(err))
	assert.Equal(t, 1, failing.DeliverCallCount())

	_, err = r.Deliver(ctx, nil, txFor("test/missing"))
	assert.True(t, errors.ErrNotFound.Is(err))
	_, err = r.Check(ctx, nil, txFor("test/missing"))
	assert.True(t, errors.ErrNotFound.Is(err))

	_, err = r.Check(ctx, nil, &qfundtest.Tx{})
	assert.True(t, errors.ErrMsg.Is(err))
	_, err = r.Deliver(ctx, nil, &qfundtest.Tx{Err: errors.ErrInput})
	assert.True(t, errors.ErrInput.Is(err))
	assert.Equal(t, 2, counter.CallCount())
}
