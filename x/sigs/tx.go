package sigs

import (
	"github.com/iov-one/qfund/errors"
)

// SignedTx is a transaction whose signatures the Decorator verifies.
type SignedTx interface {
	// GetSignBytes returns the serialized transaction without signatures.
	GetSignBytes() ([]byte, error)
	GetSignatures() []*StdSignature
}

// Validate checks that all signature fields are set.
func (s *StdSignature) Validate() error {
	switch {
	case s.Sequence < 0:
		return errors.Wrapf(ErrInvalidSequence, "negative nonce %d", s.Sequence)
	case s.Pubkey == nil:
		return errors.Wrap(errors.ErrUnauthorized, "signature without public key")
	case s.Signature == nil:
		return errors.Wrap(errors.ErrUnauthorized, "empty signature")
	}
	return nil
}
