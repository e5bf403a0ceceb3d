package sigs

import (
	"context"

	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/x"
)

type signersKey struct{}

// withSigners is unexported so that only the Decorator can authenticate.
func withSigners(ctx qfund.Context, signers []qfund.Condition) qfund.Context {
	return context.WithValue(ctx, signersKey{}, signers)
}

// Authenticate reads the signers verified by the Decorator.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

func (Authenticate) GetConditions(ctx qfund.Context) []qfund.Condition {
	signers, _ := ctx.Value(signersKey{}).([]qfund.Condition)
	return signers
}

func (a Authenticate) HasAddress(ctx qfund.Context, addr qfund.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if c.Address().Equals(addr) {
			return true
		}
	}
	return false
}
