package app

import (
	"context"
	"testing"

	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
	"github.com/iov-one/qfund/qfundtest"
	"github.com/iov-one/qfund/x/utils"
	"github.com/stretchr/testify/assert"
)

func TestChain(t *testing.T) {
	c1 := &qfundtest.Decorator{}
	c2 := &qfundtest.Decorator{}
	var missing *qfundtest.Decorator
	h := &qfundtest.Handler{}

	stack := ChainDecorators(
		c1,
		utils.NewLogging(),
		missing,
		utils.NewRecovery(),
		c2,
	).WithHandler(h)

	ctx := context.Background()
	tx := &qfundtest.Tx{Msg: &qfundtest.Msg{RoutePath: "test/chain"}}

	_, err := stack.Check(ctx, nil, tx)
	assert.NoError(t, err)
	_, err = stack.Deliver(ctx, nil, tx)
	assert.NoError(t, err)

	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 2, h.CallCount())

	// A decorator error stops the chain.
	c2.DeliverErr = errors.ErrUnauthorized
	_, err = stack.Deliver(ctx, nil, tx)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.Equal(t, 3, c1.CallCount())
	assert.Equal(t, 3, c2.CallCount())
	assert.Equal(t, 2, h.CallCount())
}

func TestChainRecoversPanics(t *testing.T) {
	c := &qfundtest.Decorator{}
	stack := ChainDecorators(
		utils.NewRecovery(),
		c,
	).WithHandler(qfundtest.PanicHandler{Err: errors.ErrHuman})

	var tx qfund.Tx = &qfundtest.Tx{Msg: &qfundtest.Msg{RoutePath: "test/panic"}}
	_, err := stack.Deliver(context.Background(), nil, tx)
	assert.True(t, errors.ErrPanic.Is(err))
	_, err = stack.Check(context.Background(), nil, tx)
	assert.True(t, errors.ErrPanic.Is(err))
	assert.Equal(t, 2, c.CallCount())
}
