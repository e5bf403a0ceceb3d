package orm

import (
	"bytes"
	"reflect"
	"regexp"

	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,20}$`).MatchString

// ModelBucket is implemented by buckets that operate on Models.
type ModelBucket interface {
	// One query the database for a single model instance. Lookup is done
	// by the primary key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	// If given model type cannot be used to contain stored entity, ErrType
	// is returned.
	One(db qfund.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns nil if an entity with given primary key exists and
	// ErrNotFound otherwise.
	Has(db qfund.ReadOnlyKVStore, key []byte) error

	// Put saves given model in the database, overwriting any previous
	// state stored under the same key.
	Put(db qfund.KVStore, key []byte, m Model) error

	// Create saves given model in the database. It returns ErrDuplicate if
	// an entity with given primary key already exists.
	Create(db qfund.KVStore, key []byte, m Model) error

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db qfund.KVStore, key []byte) error

	// PrefixScan returns an iterator over all entities whose primary key
	// starts with given prefix. A nil prefix iterates the whole bucket.
	PrefixScan(db qfund.ReadOnlyKVStore, prefix []byte, reverse bool) (ModelIterator, error)
}

// NewModelBucket returns a ModelBucket instance storing entities of the same
// type as the given model. Bucket name must be unique per store.
func NewModelBucket(name string, m Model) ModelBucket {
	if !isBucketName(name) {
		panic("illegal bucket name: " + name)
	}
	tp := reflect.TypeOf(m)
	if tp.Kind() != reflect.Ptr {
		panic("model must be a pointer")
	}
	return &modelBucket{
		prefix: []byte(name + ":"),
		model:  tp,
	}
}

type modelBucket struct {
	prefix []byte
	model  reflect.Type
}

var _ ModelBucket = (*modelBucket)(nil)

func (mb *modelBucket) dbKey(key []byte) []byte {
	return append(append([]byte{}, mb.prefix...), key...)
}

func (mb *modelBucket) One(db qfund.ReadOnlyKVStore, key []byte, dest Model) error {
	if reflect.TypeOf(dest) != mb.model {
		return errors.Wrapf(errors.ErrType, "%v cannot be represented as %T", mb.model, dest)
	}
	raw, err := db.Get(mb.dbKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot load from the database")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot unmarshal %T: %s", dest, err)
	}
	return nil
}

func (mb *modelBucket) Has(db qfund.ReadOnlyKVStore, key []byte) error {
	ok, err := db.Has(mb.dbKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot query the database")
	}
	if !ok {
		return errors.ErrNotFound
	}
	return nil
}

func (mb *modelBucket) Put(db qfund.KVStore, key []byte, m Model) error {
	if reflect.TypeOf(m) != mb.model {
		return errors.Wrapf(errors.ErrType, "cannot store %T in %v bucket", m, mb.model)
	}
	if len(key) == 0 {
		return errors.Wrap(errors.ErrInput, "empty key")
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot marshal %T: %s", m, err)
	}
	if err := db.Set(mb.dbKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

func (mb *modelBucket) Create(db qfund.KVStore, key []byte, m Model) error {
	switch err := mb.Has(db, key); {
	case err == nil:
		return errors.Wrapf(errors.ErrDuplicate, "%T with key %X", m, key)
	case !errors.ErrNotFound.Is(err):
		return err
	}
	return mb.Put(db, key, m)
}

func (mb *modelBucket) Delete(db qfund.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	if err := db.Delete(mb.dbKey(key)); err != nil {
		return errors.Wrap(err, "cannot delete from the database")
	}
	return nil
}

func (mb *modelBucket) PrefixScan(db qfund.ReadOnlyKVStore, prefix []byte, reverse bool) (ModelIterator, error) {
	start := mb.dbKey(prefix)
	end := prefixRangeEnd(start)

	var (
		it  qfund.Iterator
		err error
	)
	if reverse {
		it, err = db.ReverseIterator(start, end)
	} else {
		it, err = db.Iterator(start, end)
	}
	if err != nil {
		return nil, errors.Wrap(err, "cannot iterate the database")
	}
	return &modelIterator{it: it, bucket: mb}, nil
}

// prefixRangeEnd returns the exclusive end of the key range covering every
// key with given prefix. It returns nil if there is no upper bound.
func prefixRangeEnd(prefix []byte) []byte {
	end := bytes.TrimRight(prefix, "\xff")
	if len(end) == 0 {
		return nil
	}
	end = append([]byte{}, end...)
	end[len(end)-1]++
	return end
}

// ModelIterator walks over the entities of a single bucket.
//
//	it, err := bucket.PrefixScan(db, nil, false)
//	if err != nil { ... }
//	defer it.Release()
//	for {
//		var m MyModel
//		key, err := it.Next(&m)
//		if errors.ErrIteratorDone.Is(err) {
//			break
//		}
//		...
//	}
type ModelIterator interface {
	// Next loads the next entity into dest and returns its primary key.
	// ErrIteratorDone is returned when there are no more entities.
	Next(dest Model) ([]byte, error)

	// Release releases the underlying database iterator.
	Release()
}

type modelIterator struct {
	it     qfund.Iterator
	bucket *modelBucket
}

func (m *modelIterator) Next(dest Model) ([]byte, error) {
	if reflect.TypeOf(dest) != m.bucket.model {
		return nil, errors.Wrapf(errors.ErrType, "%v cannot be represented as %T", m.bucket.model, dest)
	}
	key, raw, err := m.it.Next()
	if err != nil {
		return nil, err
	}
	if err := dest.Unmarshal(raw); err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "cannot unmarshal %T: %s", dest, err)
	}
	return key[len(m.bucket.prefix):], nil
}

func (m *modelIterator) Release() {
	m.it.Release()
}
