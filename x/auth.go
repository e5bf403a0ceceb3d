package x

import (
	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
)

// Authenticator tells handlers who authorized the current transaction.
// Handlers receive it in their constructor, so tests can replace signature
// verification with a stub.
type Authenticator interface {
	// GetConditions returns all conditions fulfilled by the transaction,
	// the main signer first.
	GetConditions(qfund.Context) []qfund.Condition
	// HasAddress reports whether any fulfilled condition has given
	// address.
	HasAddress(qfund.Context, qfund.Address) bool
}

// MainSigner returns the address of the first fulfilled condition. An
// unsigned transaction results in ErrUnauthorized.
func MainSigner(ctx qfund.Context, auth Authenticator) (qfund.Address, error) {
	conds := auth.GetConditions(ctx)
	if len(conds) == 0 {
		return nil, errors.Wrap(errors.ErrUnauthorized, "transaction is not signed")
	}
	return conds[0].Address(), nil
}

// RequireSigner returns ErrUnauthorized unless addr authorized the
// transaction. role names the address in the error message.
func RequireSigner(ctx qfund.Context, auth Authenticator, addr qfund.Address, role string) error {
	if len(addr) == 0 || !auth.HasAddress(ctx, addr) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s signature required", role)
	}
	return nil
}
