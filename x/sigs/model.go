package sigs

import (
	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/crypto"
	"github.com/iov-one/qfund/errors"
	"github.com/iov-one/qfund/orm"
)

const bucketName = "sigs"

// maxSequenceValue is the greatest nonce a javascript client can represent.
const maxSequenceValue = 1<<53 - 1

var _ orm.Model = (*UserData)(nil)

func (u *UserData) Validate() error {
	errs := errors.AppendField(nil, "Metadata", u.Metadata.Validate())
	switch {
	case u.Sequence < 0:
		errs = errors.AppendField(errs, "Sequence", ErrInvalidSequence)
	case u.Sequence > 0 && u.Pubkey == nil:
		errs = errors.Append(errs, errors.Field("Sequence", ErrInvalidSequence, "used nonce without a public key"))
	}
	return errs
}

// CheckAndIncrementSequence consumes the expected nonce. It fails if the
// signer is at another nonce.
func (u *UserData) CheckAndIncrementSequence(expected int64) error {
	if expected != u.Sequence {
		return errors.Wrapf(ErrInvalidSequence, "want nonce %d, got %d", u.Sequence, expected)
	}
	if u.Sequence >= maxSequenceValue {
		return errors.Wrap(errors.ErrOverflow, "nonce")
	}
	u.Sequence++
	return nil
}

// NewUser returns the state of a signer that never signed.
func NewUser(pubkey *crypto.PublicKey) *UserData {
	return &UserData{Metadata: &qfund.Metadata{Schema: 1}, Pubkey: pubkey}
}

// Bucket stores signers by the address of their public key.
type Bucket struct {
	orm.ModelBucket
}

func NewBucket() Bucket {
	return Bucket{ModelBucket: orm.NewModelBucket(bucketName, &UserData{})}
}

// GetOrCreate returns the stored signer state or a new one for an unknown
// key. A new state is not stored.
func (b Bucket) GetOrCreate(db qfund.ReadOnlyKVStore, pubkey *crypto.PublicKey) (*UserData, error) {
	var u UserData
	err := b.One(db, pubkey.Address(), &u)
	if errors.ErrNotFound.Is(err) {
		return NewUser(pubkey), nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
