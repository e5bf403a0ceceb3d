package orm

import (
	"bytes"
	"testing"

	"github.com/iov-one/qfund/errors"
	"github.com/iov-one/qfund/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	db := store.MemStore()

	// Cases share one database and must run in order.
	cases := []struct {
		name       string
		bucket     string
		seq        string
		init       uint64
		increments uint64
	}{
		{"fresh sequence", "votes", "id", 0, 22},
		{"other name in same bucket", "votes", "other", 0, 11},
		{"continue first sequence", "votes", "id", 22, 18},
		{"same name in another bucket", "escrow", "id", 0, 77},
		{"continue second sequence", "votes", "other", 11, 248},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSequence(tc.bucket, tc.seq)
			orig, err := s.Latest(db)
			require.NoError(t, err)
			assert.Equal(t, tc.init, orig)

			var val uint64
			for i := uint64(1); i < tc.increments; i++ {
				val, err = s.NextInt(db)
				require.NoError(t, err)
			}
			assert.Equal(t, tc.init+tc.increments-1, val)

			last, err := s.NextVal(db)
			require.NoError(t, err)
			assert.Equal(t, EncodeSequence(tc.init+tc.increments), last)
			assert.Equal(t, 1, bytes.Compare(last, EncodeSequence(orig)))
		})
	}
}

func TestDecodeSequence(t *testing.T) {
	val, err := DecodeSequence(nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), val)

	val, err = DecodeSequence(EncodeSequence(1 << 40))
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<40), val)

	_, err = DecodeSequence([]byte{1, 2, 3})
	assert.True(t, errors.ErrInput.Is(err))
}
