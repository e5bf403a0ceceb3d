// Package bech32 encodes addresses in the human readable bech32 form used by
// wallets. Payloads are regrouped between 8 bit bytes and 5 bit bech32 words.
package bech32

import (
	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/qfund/errors"
)

// Encode returns the bech32 form of payload with given human readable part.
func Encode(hrp string, payload []byte) ([]byte, error) {
	words, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "regroup payload: %s", err)
	}
	s, err := bech32.Encode(hrp, words)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "encode: %s", err)
	}
	return []byte(s), nil
}

// Decode reverts Encode. It returns the human readable part and the payload.
func Decode(s string) (hrp string, payload []byte, err error) {
	hrp, words, err := bech32.Decode(s)
	if err != nil {
		return "", nil, errors.Wrapf(errors.ErrInput, "decode: %s", err)
	}
	if payload, err = bech32.ConvertBits(words, 5, 8, false); err != nil {
		return "", nil, errors.Wrapf(errors.ErrInput, "regroup payload: %s", err)
	}
	return hrp, payload, nil
}
