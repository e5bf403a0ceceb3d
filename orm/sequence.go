package orm

import (
	"encoding/binary"

	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
)

// Sequence is a persistent counter. Its values encoded with EncodeSequence
// sort in counting order, so they make ordered record keys.
type Sequence struct {
	key []byte
}

// NewSequence returns the counter stored under "_s.<bucket>:<name>".
func NewSequence(bucket, name string) Sequence {
	return Sequence{key: []byte("_s." + bucket + ":" + name)}
}

// NextInt advances the counter and returns its new value. The first value
// is 1.
func (s *Sequence) NextInt(db qfund.KVStore) (uint64, error) {
	last, err := s.Latest(db)
	if err != nil {
		return 0, err
	}
	if last == ^uint64(0) {
		return 0, errors.Wrap(errors.ErrOverflow, "sequence")
	}
	if err := db.Set(s.key, EncodeSequence(last+1)); err != nil {
		return 0, errors.Wrap(err, "store sequence")
	}
	return last + 1, nil
}

// NextVal is NextInt returning the encoded value.
func (s *Sequence) NextVal(db qfund.KVStore) ([]byte, error) {
	n, err := s.NextInt(db)
	if err != nil {
		return nil, err
	}
	return EncodeSequence(n), nil
}

// Latest returns the last value returned by the counter, or zero.
func (s *Sequence) Latest(db qfund.ReadOnlyKVStore) (uint64, error) {
	raw, err := db.Get(s.key)
	if err != nil {
		return 0, errors.Wrap(err, "load sequence")
	}
	return DecodeSequence(raw)
}

// EncodeSequence returns n as 8 big endian bytes.
func EncodeSequence(n uint64) []byte {
	var raw [8]byte
	binary.BigEndian.PutUint64(raw[:], n)
	return raw[:]
}

// DecodeSequence reverts EncodeSequence. A missing value is zero.
func DecodeSequence(raw []byte) (uint64, error) {
	switch len(raw) {
	case 0:
		return 0, nil
	case 8:
		return binary.BigEndian.Uint64(raw), nil
	default:
		return 0, errors.Wrapf(errors.ErrInput, "sequence of %d bytes", len(raw))
	}
}
