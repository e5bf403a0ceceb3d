package store

import (
	"bytes"
	"fmt"
	"sort"
	"testing"

	"github.com/iov-one/qfund/errors"
	"github.com/stretchr/testify/require"
)

// Conformance verifies that a CacheableKVStore behaves the way record
// buckets expect: cache layers see their parent, writes become visible only
// after Write and iterators merge every layer in key order.
//
// It lives outside of a _test file so that every store implementation
// (btree_test.go, iavl/adapter_test.go) can run it.
type Conformance struct {
	open func() (CacheableKVStore, func())
}

// NewConformance returns a suite opening a fresh base store for every
// check. The returned function releases the store.
func NewConformance(open func() (CacheableKVStore, func())) Conformance {
	return Conformance{open: open}
}

// Run executes all checks as sub tests.
func (c Conformance) Run(t *testing.T) {
	t.Run("layered reads and writes", c.layers)
	t.Run("child overrides parent", c.overrides)
	t.Run("merged iteration", c.iteration)
	t.Run("deleted keys are skipped", c.deletedRange)
}

func (c Conformance) layers(t *testing.T) {
	base, release := c.open()
	defer release()

	escrow, pool, project := recordKey("escrows", 1), recordKey("pools", 1), recordKey("projects", 1)

	mustHold(t, base, escrow, nil)
	require.NoError(t, base.Set(escrow, []byte("deposit=1000")))
	mustHold(t, base, escrow, []byte("deposit=1000"))

	tx := base.CacheWrap()
	mustHold(t, tx, escrow, []byte("deposit=1000"))
	require.NoError(t, tx.Set(pool, []byte("votes=0")))
	mustHold(t, tx, pool, []byte("votes=0"))
	mustHold(t, base, pool, nil)

	require.NoError(t, tx.Write())
	mustHold(t, base, pool, []byte("votes=0"))

	// A discarded layer leaves no trace.
	failed := base.CacheWrap()
	require.NoError(t, failed.Set(project, []byte("name=x")))
	require.NoError(t, failed.Delete(escrow))
	failed.Discard()
	mustHold(t, base, project, nil)
	mustHold(t, base, escrow, []byte("deposit=1000"))

	// Nested layers are written one level at a time.
	outer := base.CacheWrap()
	inner := outer.CacheWrap()
	require.NoError(t, inner.Delete(escrow))
	require.NoError(t, inner.Write())
	mustHold(t, outer, escrow, nil)
	mustHold(t, base, escrow, []byte("deposit=1000"))
	require.NoError(t, outer.Write())
	mustHold(t, base, escrow, nil)
}

func (c Conformance) overrides(t *testing.T) {
	base, release := c.open()
	defer release()

	a, b, d := recordKey("projects", 1), recordKey("projects", 2), recordKey("projects", 3)
	require.NoError(t, base.Set(a, []byte("v1")))
	require.NoError(t, base.Set(b, []byte("v1")))

	child := base.CacheWrap()
	require.NoError(t, child.Set(a, []byte("v2")))
	require.NoError(t, child.Delete(b))
	require.NoError(t, child.Set(d, []byte("v2")))

	mustHold(t, base, a, []byte("v1"))
	mustHold(t, base, b, []byte("v1"))
	mustHold(t, base, d, nil)

	mustHold(t, child, a, []byte("v2"))
	mustHold(t, child, b, nil)
	mustHold(t, child, d, []byte("v2"))

	require.NoError(t, child.Write())
	mustHold(t, base, a, []byte("v2"))
	mustHold(t, base, b, nil)
	mustHold(t, base, d, []byte("v2"))
}

func (c Conformance) iteration(t *testing.T) {
	base, release := c.open()
	defer release()

	// Parent holds even records, the child overrides every third one,
	// adds the odd ones and deletes every fifth one.
	view := make(map[string][]byte)
	for i := 0; i < 40; i += 2 {
		k, v := recordKey("votes", i), []byte(fmt.Sprintf("parent-%d", i))
		require.NoError(t, base.Set(k, v))
		view[string(k)] = v
	}
	child := base.CacheWrap()
	for i := 0; i < 40; i++ {
		k := recordKey("votes", i)
		switch {
		case i%5 == 0:
			require.NoError(t, child.Delete(k))
			delete(view, string(k))
		case i%3 == 0 || i%2 == 1:
			v := []byte(fmt.Sprintf("child-%d", i))
			require.NoError(t, child.Set(k, v))
			view[string(k)] = v
		}
	}

	bounds := []struct{ start, end []byte }{
		{nil, nil},
		{recordKey("votes", 7), nil},
		{nil, recordKey("votes", 33)},
		{recordKey("votes", 10), recordKey("votes", 21)},
	}
	for _, b := range bounds {
		want := rangeOf(view, b.start, b.end)
		iter, err := child.Iterator(b.start, b.end)
		require.NoError(t, err)
		mustIterate(t, iter, want)

		iter, err = child.ReverseIterator(b.start, b.end)
		require.NoError(t, err)
		mustIterate(t, iter, reversed(want))
	}
}

func (c Conformance) deletedRange(t *testing.T) {
	base, release := c.open()
	defer release()

	for i := 0; i < 4; i++ {
		require.NoError(t, base.Set(recordKey("pools", i), []byte("p")))
	}
	child := base.CacheWrap()
	for i := 0; i < 3; i++ {
		require.NoError(t, child.Delete(recordKey("pools", i)))
	}

	iter, err := child.Iterator(nil, recordKey("pools", 3))
	require.NoError(t, err)
	mustIterate(t, iter, nil)

	iter, err = child.ReverseIterator(nil, nil)
	require.NoError(t, err)
	mustIterate(t, iter, []Model{Pair(recordKey("pools", 3), []byte("p"))})
}

func mustHold(t testing.TB, kv ReadOnlyKVStore, key, want []byte) {
	t.Helper()
	got, err := kv.Get(key)
	require.NoError(t, err)
	require.Equal(t, want, got, "value of %q", key)
	has, err := kv.Has(key)
	require.NoError(t, err)
	require.Equal(t, want != nil, has, "presence of %q", key)
}

func mustIterate(t testing.TB, iter Iterator, want []Model) {
	t.Helper()
	defer iter.Release()
	for n, m := range want {
		key, value, err := iter.Next()
		require.NoError(t, err)
		require.Equal(t, m.Key, key, "key %d", n)
		require.Equal(t, m.Value, value, "value %d", n)
	}
	if _, _, err := iter.Next(); !errors.ErrIteratorDone.Is(err) {
		t.Fatalf("iterator not exhausted after %d entries: %v", len(want), err)
	}
}

// recordKey returns a bucket prefixed key with a fixed width index, so that
// keys sort in index order.
func recordKey(bucket string, n int) []byte {
	return []byte(fmt.Sprintf("%s:%08d", bucket, n))
}

// rangeOf returns entries of view with start <= key < end, sorted by key.
// A nil bound is open.
func rangeOf(view map[string][]byte, start, end []byte) []Model {
	var res []Model
	for k, v := range view {
		key := []byte(k)
		if start != nil && bytes.Compare(key, start) < 0 {
			continue
		}
		if end != nil && bytes.Compare(key, end) >= 0 {
			continue
		}
		res = append(res, Pair(key, v))
	}
	sort.Slice(res, func(i, j int) bool { return bytes.Compare(res[i].Key, res[j].Key) < 0 })
	return res
}

func reversed(ms []Model) []Model {
	res := make([]Model, 0, len(ms))
	for i := len(ms) - 1; i >= 0; i-- {
		res = append(res, ms[i])
	}
	return res
}
