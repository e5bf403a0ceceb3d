package matching

import (
	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
	"github.com/iov-one/qfund/gconf"
)

const (
	confPackageName = "matching"

	defaultMaxPayees     = 255
	defaultMaxNameLength = 64
)

var _ gconf.Owned = (*Configuration)(nil)

// GetOwner returns the address allowed to update the configuration.
func (c *Configuration) GetOwner() qfund.Address {
	return c.Owner
}

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	if c.MaxPayees == 0 {
		errs = errors.AppendField(errs, "MaxPayees", errors.ErrEmpty)
	}
	if c.MaxNameLength == 0 {
		errs = errors.AppendField(errs, "MaxNameLength", errors.ErrEmpty)
	}
	return errs
}

// DefaultConfiguration is used when no configuration was stored.
func DefaultConfiguration() Configuration {
	return Configuration{
		Metadata:      &qfund.Metadata{Schema: 1},
		MaxPayees:     defaultMaxPayees,
		MaxNameLength: defaultMaxNameLength,
	}
}

// LoadConfiguration returns the stored configuration, or the default one if
// none was stored.
func LoadConfiguration(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, confPackageName, &conf); {
	case err == nil:
		return &conf, nil
	case errors.ErrNotFound.Is(err):
		conf = DefaultConfiguration()
		return &conf, nil
	default:
		return nil, errors.Wrap(err, "load configuration")
	}
}
