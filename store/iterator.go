package store

import (
	"bytes"

	"github.com/iov-one/qfund/errors"
)

// mergedIterator joins a snapshot of cached btree items with the parent
// iterator. Cached items shadow parent entries with the same key and
// deleted items hide them.
type mergedIterator struct {
	items     []entry
	parent    Iterator
	ascending bool

	// Next parent entry, read ahead of time to allow comparison.
	pkey, pvalue []byte
	peeked       bool
	parentDone   bool
}

var _ Iterator = (*mergedIterator)(nil)

func newMergedIterator(items []entry, parent Iterator, ascending bool) *mergedIterator {
	return &mergedIterator{
		items:     items,
		parent:    parent,
		ascending: ascending,
	}
}

// Next returns the next visible key in the order of iteration.
func (m *mergedIterator) Next() (key, value []byte, err error) {
	for {
		if err := m.peekParent(); err != nil {
			return nil, nil, err
		}

		if len(m.items) == 0 {
			if m.parentDone {
				return nil, nil, errors.ErrIteratorDone
			}
			m.peeked = false
			return m.pkey, m.pvalue, nil
		}

		if !m.parentDone {
			cmp := bytes.Compare(m.items[0].key, m.pkey)
			if !m.ascending {
				cmp = -cmp
			}
			if cmp > 0 {
				m.peeked = false
				return m.pkey, m.pvalue, nil
			}
			if cmp == 0 {
				// Overwritten or deleted in the cache.
				m.peeked = false
			}
		}

		item := m.items[0]
		m.items = m.items[1:]
		if !item.deleted {
			return item.key, item.value, nil
		}
	}
}

// peekParent ensures the next parent entry is loaded, unless the parent
// is exhausted.
func (m *mergedIterator) peekParent() error {
	if m.peeked || m.parentDone {
		return nil
	}
	key, value, err := m.parent.Next()
	switch {
	case errors.ErrIteratorDone.Is(err):
		m.parentDone = true
		return nil
	case err != nil:
		return err
	}
	m.pkey, m.pvalue = key, value
	m.peeked = true
	return nil
}

// Release releases the parent iterator.
func (m *mergedIterator) Release() {
	m.items = nil
	m.parent.Release()
}
