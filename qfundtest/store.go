package qfundtest

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/store/iavl"
)

// CommitKVStore returns a store instance that is using a filesystem backend
// engine to store the data. Use it instead of MemStore when the test must
// run against the same storage implementation as the production instance.
func CommitKVStore(t testing.TB) (db qfund.CommitKVStore, cleanup func()) {
	t.Helper()
	dbpath, err := ioutil.TempDir("", "qfundtest-")
	if err != nil {
		t.Fatalf("cannot create a temporary directory: %s", err)
	}
	commit, err := iavl.NewCommitStore(dbpath, "db")
	if err != nil {
		os.RemoveAll(dbpath)
		t.Fatalf("cannot create commit store: %s", err)
	}
	return commit, func() { os.RemoveAll(dbpath) }
}
