package sigs

import "github.com/iov-one/qfund/errors"

// ErrInvalidSequence is returned when a signature nonce does not match the
// signer state.
var ErrInvalidSequence = errors.Register(120, "invalid sequence number")
