package iavl

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/qfund/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tendermint/libs/db"
)

func makeBase() (store.CacheableKVStore, func()) {
	commit, cleanup := makeCommitStore()
	return commit.Adapter(), cleanup
}

func makeCommitStore() (*CommitStore, func()) {
	tmpDir, err := ioutil.TempDir("", "iavl-adapter-")
	if err != nil {
		panic(err)
	}
	commit, err := NewCommitStore(tmpDir, "base")
	if err != nil {
		panic(err)
	}
	return commit, func() { os.RemoveAll(tmpDir) }
}

func TestAdapterConformance(t *testing.T) {
	store.NewConformance(makeBase).Run(t)
}

func TestCommitOverwrite(t *testing.T) {
	commit, cleanup := makeCommitStore()
	defer cleanup()
	commit.WithHistory(1)

	id, err := commit.LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, int64(0), id.Version)
	assert.Empty(t, id.Hash)

	k1, k2, k3 := []byte("escrow"), []byte("pool"), []byte("project")

	parent := commit.CacheWrap()
	require.NoError(t, parent.Set(k1, []byte("one")))
	require.NoError(t, parent.Set(k2, []byte("two")))

	// Nothing is visible in the committed state before commit.
	val, err := commit.Get(k1)
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, parent.Write())
	id, err = commit.Commit()
	require.NoError(t, err)
	assert.Equal(t, int64(1), id.Version)
	assert.NotEmpty(t, id.Hash)

	child := commit.CacheWrap()
	require.NoError(t, child.Set(k1, []byte("eleven")))
	require.NoError(t, child.Delete(k2))
	require.NoError(t, child.Set(k3, []byte("three")))

	// A parallel cache wrap sees the unmodified state.
	side := commit.CacheWrap()
	val, err = side.Get(k1)
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), val)

	require.NoError(t, child.Write())
	val, err = side.Get(k1)
	require.NoError(t, err)
	assert.Equal(t, []byte("eleven"), val)

	// Committed state only changes on commit.
	val, err = commit.Get(k2)
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), val)

	next, err := commit.Commit()
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.Version)
	assert.NotEqual(t, id.Hash, next.Hash)

	val, err = commit.Get(k2)
	require.NoError(t, err)
	assert.Nil(t, val)
	val, err = commit.Get(k3)
	require.NoError(t, err)
	assert.Equal(t, []byte("three"), val)
}

func TestLoadLatestVersion(t *testing.T) {
	db := dbm.NewMemDB()

	first := newCommitStore(db)
	cache := first.CacheWrap()
	require.NoError(t, cache.Set([]byte("deposit"), []byte("1000")))
	require.NoError(t, cache.Write())
	want, err := first.Commit()
	require.NoError(t, err)

	reopened := newCommitStore(db)
	got, err := reopened.LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Version)

	require.NoError(t, reopened.LoadLatestVersion())
	got, err = reopened.LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	val, err := reopened.Get([]byte("deposit"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1000"), val)
}
