package qfundtest

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/crypto"
)

// NewKey returns a new random ed25519 signer.
func NewKey() crypto.Signer {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the condition of a new random signer.
func NewCondition() qfund.Condition {
	return NewKey().PublicKey().Condition()
}

// RandomAddr returns a valid random address generated on the fly.
func RandomAddr(t testing.TB) qfund.Address {
	t.Helper()
	raw := make([]byte, qfund.AddressLength)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("cannot generate a random address: %s", err)
	}
	return qfund.Address(raw)
}

// DecodeAddr takes a hex encoded address string and returns its raw
// representation. It fails the test if the result is not a valid address.
func DecodeAddr(t testing.TB, encoded string) qfund.Address {
	t.Helper()
	raw, err := hex.DecodeString(encoded)
	if err != nil {
		t.Fatalf("cannot decode hex string: %s", err)
	}
	a := qfund.Address(raw)
	if err := a.Validate(); err != nil {
		t.Fatalf("decoded string is not a valid address: %s", err)
	}
	return a
}

// ParseAddress parses any address format accepted by qfund.ParseAddress.
func ParseAddress(t testing.TB, encoded string) qfund.Address {
	t.Helper()
	a, err := qfund.ParseAddress(encoded)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encoded, err)
	}
	return a
}
