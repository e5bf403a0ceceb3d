package app

import (
	"testing"

	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
	"github.com/iov-one/qfund/store/iavl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noteInit stores the "note" genesis option as is.
type noteInit struct {
	calls int
}

func (n *noteInit) FromGenesis(opts qfund.Options, db qfund.KVStore) error {
	n.calls++
	var note string
	if err := opts.ReadOptions("note", &note); err != nil {
		return err
	}
	return db.Set([]byte("note"), []byte(note))
}

func TestLoadGenesis(t *testing.T) {
	cases := map[string]struct {
		path      string
		wantErr   *errors.Error
		wantInit  bool
		wantChain string
		wantNote  []byte
	}{
		"missing file": {
			path:    "testdata/missing.json",
			wantErr: errors.ErrInput,
		},
		"valid genesis": {
			path:      "testdata/genesis.json",
			wantInit:  true,
			wantChain: "test-chain-67",
			wantNote:  []byte("first round"),
		},
		"note of a wrong type": {
			path: "testdata/bad_genesis.json",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			gen, err := LoadGenesis(tc.path)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.wantErr, err)
			}
			if tc.wantErr != nil {
				return
			}

			exec, err := NewExecutor(iavl.NewMemCommitStore(), nil, nil, nil)
			require.NoError(t, err)
			require.Equal(t, "", exec.ChainID())

			first, second := &noteInit{}, &noteInit{}
			err = exec.InitChain(gen, ChainInitializers(first, second))
			if tc.wantInit {
				require.NoError(t, err)
				assert.Equal(t, 1, second.calls)
			} else {
				require.Error(t, err)
				assert.Equal(t, 0, second.calls, "initialization must stop at the first failure")
			}
			assert.Equal(t, tc.wantChain, exec.ChainID())

			require.NoError(t, exec.View(func(db qfund.ReadOnlyKVStore) error {
				note, err := db.Get([]byte("note"))
				assert.Equal(t, tc.wantNote, note)
				return err
			}))

			if tc.wantInit {
				assert.Error(t, exec.InitChain(gen, ChainInitializers()), "chain id is set once")
			}
		})
	}
}
