package crypto

import (
	"github.com/iov-one/qfund"
	"golang.org/x/crypto/ed25519"
)

// ExtensionName is the extension part of every signer condition.
const ExtensionName = "sigs"

// Signer signs messages without exposing its private key, so that hardware
// wallets can implement it too.
type Signer interface {
	Sign(message []byte) (*Signature, error)
	PublicKey() *PublicKey
}

var _ Signer = (*PrivateKey)(nil)

// GenPrivKeyEd25519 returns a new random key. It panics if the system has
// no source of randomness.
func GenPrivKeyEd25519() *PrivateKey {
	_, key, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{Ed25519: key}
}

// PrivKeyEd25519FromSeed returns the key derived from a 32 byte seed. The
// same seed always gives the same key.
func PrivKeyEd25519FromSeed(seed []byte) *PrivateKey {
	return &PrivateKey{Ed25519: ed25519.NewKeyFromSeed(seed)}
}

func (k *PrivateKey) Sign(message []byte) (*Signature, error) {
	return &Signature{Ed25519: ed25519.Sign(k.Ed25519, message)}, nil
}

func (k *PrivateKey) PublicKey() *PublicKey {
	pub, _ := ed25519.PrivateKey(k.Ed25519).Public().(ed25519.PublicKey)
	return &PublicKey{Ed25519: pub}
}

// Verify returns true if sig is a signature of message made with the
// private part of this key. Malformed keys and signatures never verify.
func (p *PublicKey) Verify(message []byte, sig *Signature) bool {
	switch {
	case p == nil, sig == nil:
		return false
	case len(p.Ed25519) != ed25519.PublicKeySize, len(sig.Ed25519) != ed25519.SignatureSize:
		return false
	}
	return ed25519.Verify(p.Ed25519, message, sig.Ed25519)
}

// Condition returns the condition that this key signs for, or nil for an
// empty key.
func (p *PublicKey) Condition() qfund.Condition {
	if p == nil || len(p.Ed25519) == 0 {
		return nil
	}
	return qfund.NewCondition(ExtensionName, "ed25519", p.Ed25519)
}

// Address returns the address of the key's condition.
func (p *PublicKey) Address() qfund.Address {
	return p.Condition().Address()
}
