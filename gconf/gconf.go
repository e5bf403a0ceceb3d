package gconf

import (
	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
)

// ReadStore gives read access to stored configurations.
type ReadStore interface {
	Get(key []byte) ([]byte, error)
}

// Store gives read and write access to stored configurations.
type Store interface {
	ReadStore
	Set(key, value []byte) error
}

// Config is implemented by every configuration entity. Protobuf messages
// provide the codec, Validate must be written by hand.
type Config interface {
	Marshal() ([]byte, error)
	Unmarshal([]byte) error
	Validate() error
}

// Key returns the database key of the configuration of given package.
func Key(pkg string) []byte {
	return append([]byte("_c:"), pkg...)
}

// Save validates and stores the configuration of given package, replacing
// any previous version.
func Save(db Store, pkg string, c Config) error {
	if err := c.Validate(); err != nil {
		return errors.Wrapf(err, "%s configuration", pkg)
	}
	raw, err := c.Marshal()
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "marshal %s configuration: %s", pkg, err)
	}
	if err := db.Set(Key(pkg), raw); err != nil {
		return errors.Wrapf(err, "store %s configuration", pkg)
	}
	return nil
}

// Load reads the configuration of given package into dst. ErrNotFound is
// returned if nothing was saved yet.
func Load(db ReadStore, pkg string, dst Config) error {
	raw, err := db.Get(Key(pkg))
	switch {
	case err != nil:
		return errors.Wrapf(err, "read %s configuration", pkg)
	case raw == nil:
		return errors.Wrapf(errors.ErrNotFound, "%s configuration", pkg)
	}
	if err := dst.Unmarshal(raw); err != nil {
		return errors.Wrapf(errors.ErrModel, "unmarshal %s configuration: %s", pkg, err)
	}
	return nil
}

// InitConfig saves the configuration found in the genesis under
// conf.<pkg>. ErrNotFound is returned if the genesis has none.
func InitConfig(db Store, opts qfund.Options, pkg string, c Config) error {
	var section qfund.Options
	if err := opts.ReadOptions("conf", &section); err != nil {
		return errors.Wrapf(errors.ErrInput, "genesis conf section: %s", err)
	}
	if _, ok := section[pkg]; !ok {
		return errors.Wrapf(errors.ErrNotFound, "genesis has no %s configuration", pkg)
	}
	if err := section.ReadOptions(pkg, c); err != nil {
		return errors.Wrapf(errors.ErrInput, "genesis %s configuration: %s", pkg, err)
	}
	return Save(db, pkg, c)
}
