package qfundtest

import (
	"context"

	"github.com/iov-one/qfund"
)

// Auth authenticates a fixed set of conditions, Signer followed by Signers.
// It implements x.Authenticator.
type Auth struct {
	Signer  qfund.Condition
	Signers []qfund.Condition
}

func (a *Auth) GetConditions(qfund.Context) []qfund.Condition {
	if a.Signer == nil {
		return a.Signers
	}
	return append([]qfund.Condition{a.Signer}, a.Signers...)
}

func (a *Auth) HasAddress(ctx qfund.Context, addr qfund.Address) bool {
	return signedBy(a.GetConditions(ctx), addr)
}

// CtxAuth authenticates the conditions stored in the context with
// SetConditions. Instances with different keys do not see each other's
// conditions. It implements x.Authenticator.
type CtxAuth struct {
	Key string
}

type ctxAuthKey string

// SetConditions returns a context authenticated with given conditions.
func (a *CtxAuth) SetConditions(ctx qfund.Context, conds ...qfund.Condition) qfund.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), conds)
}

func (a *CtxAuth) GetConditions(ctx qfund.Context) []qfund.Condition {
	conds, _ := ctx.Value(ctxAuthKey(a.Key)).([]qfund.Condition)
	return conds
}

func (a *CtxAuth) HasAddress(ctx qfund.Context, addr qfund.Address) bool {
	return signedBy(a.GetConditions(ctx), addr)
}

func signedBy(conds []qfund.Condition, addr qfund.Address) bool {
	for _, c := range conds {
		if c.Address().Equals(addr) {
			return true
		}
	}
	return false
}
