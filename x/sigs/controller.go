package sigs

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/crypto"
	"github.com/iov-one/qfund/errors"
)

// signPrefix starts every signed message. It changes with the layout below.
var signPrefix = [4]byte{0, 0xCA, 0xFE, 0}

// BuildSignBytes returns the sha512 digest of
//
//	prefix (4 bytes) | len(chainID) (1 byte) | chainID | nonce (int64, big endian) | payload
//
// Binding the chain and the nonce into the digest prevents replaying a
// signature on another chain or a second time on the same one.
func BuildSignBytes(payload []byte, chainID string, nonce int64) ([]byte, error) {
	if nonce < 0 {
		return nil, errors.Wrapf(ErrInvalidSequence, "negative nonce %d", nonce)
	}
	if !qfund.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id %q", chainID)
	}
	h := sha512.New()
	h.Write(signPrefix[:])
	h.Write([]byte{byte(len(chainID))})
	h.Write([]byte(chainID))
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(nonce))
	h.Write(n[:])
	h.Write(payload)
	return h.Sum(nil), nil
}

// BuildSignBytesTx is BuildSignBytes for the payload of tx.
func BuildSignBytesTx(tx SignedTx, chainID string, nonce int64) ([]byte, error) {
	payload, err := tx.GetSignBytes()
	if err != nil {
		return nil, errors.Wrap(err, "sign bytes")
	}
	return BuildSignBytes(payload, chainID, nonce)
}

// SignTx signs tx for given chain with the signer's next nonce.
func SignTx(signer crypto.Signer, tx SignedTx, chainID string, nonce int64) (*StdSignature, error) {
	digest, err := BuildSignBytesTx(tx, chainID, nonce)
	if err != nil {
		return nil, err
	}
	raw, err := signer.Sign(digest)
	if err != nil {
		return nil, errors.Wrap(err, "sign")
	}
	return &StdSignature{Sequence: nonce, Pubkey: signer.PublicKey(), Signature: raw}, nil
}

// VerifyTxSignatures verifies every signature of tx and consumes its nonce.
// It returns the signer conditions in signature order.
func VerifyTxSignatures(db qfund.KVStore, tx SignedTx, chainID string) ([]qfund.Condition, error) {
	payload, err := tx.GetSignBytes()
	if err != nil {
		return nil, errors.Wrap(err, "sign bytes")
	}
	var signers []qfund.Condition
	for i, sig := range tx.GetSignatures() {
		cond, err := VerifySignature(db, sig, payload, chainID)
		if err != nil {
			return nil, errors.Wrapf(err, "signature %d", i)
		}
		signers = append(signers, cond)
	}
	return signers, nil
}

// VerifySignature checks sig over payload and advances the signer nonce
// stored in db.
func VerifySignature(db qfund.KVStore, sig *StdSignature, payload []byte, chainID string) (qfund.Condition, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	users := NewBucket()
	user, err := users.GetOrCreate(db, sig.Pubkey)
	if err != nil {
		return nil, errors.Wrap(err, "load signer")
	}
	digest, err := BuildSignBytes(payload, chainID, sig.Sequence)
	if err != nil {
		return nil, err
	}
	if !user.Pubkey.Verify(digest, sig.Signature) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "invalid signature")
	}
	if err := user.CheckAndIncrementSequence(sig.Sequence); err != nil {
		return nil, err
	}
	if err := users.Put(db, user.Pubkey.Address(), user); err != nil {
		return nil, errors.Wrap(err, "store signer")
	}
	return user.Pubkey.Condition(), nil
}

// NextNonce returns the nonce the signer must use for its next transaction.
// Unknown signers start at zero.
func NextNonce(db qfund.ReadOnlyKVStore, signer qfund.Address) (int64, error) {
	var user UserData
	err := NewBucket().One(db, signer, &user)
	if errors.ErrNotFound.Is(err) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "load signer")
	}
	return user.Sequence, nil
}
