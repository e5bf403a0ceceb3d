package matching

import (
	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
	"github.com/iov-one/qfund/gconf"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ qfund.Initializer = (*Initializer)(nil)

// FromGenesis stores the package configuration and creates the escrows and
// pools declared in the genesis file. Configuration is optional, the default
// one is used when it is missing.
func (*Initializer) FromGenesis(opts qfund.Options, db qfund.KVStore) error {
	switch err := gconf.InitConfig(db, opts, confPackageName, &Configuration{}); {
	case err == nil, errors.ErrNotFound.Is(err):
	default:
		return errors.Wrap(err, "init config")
	}

	var genesis struct {
		Escrows []struct {
			Creator       qfund.Address `json:"creator"`
			DepositAmount uint64        `json:"deposit_amount"`
		} `json:"escrows"`
		Pools []struct {
			Creator qfund.Address `json:"creator"`
		} `json:"pools"`
	}
	if err := opts.ReadOptions("matching", &genesis); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	ctrl := NewController()
	for i, e := range genesis.Escrows {
		if err := e.Creator.Validate(); err != nil {
			return errors.Wrapf(err, "escrow #%d creator", i)
		}
		if _, err := ctrl.CreateEscrow(db, e.Creator, e.DepositAmount); err != nil {
			return errors.Wrapf(err, "escrow #%d", i)
		}
	}
	for i, p := range genesis.Pools {
		if err := p.Creator.Validate(); err != nil {
			return errors.Wrapf(err, "pool #%d creator", i)
		}
		if _, err := ctrl.CreatePool(db, p.Creator); err != nil {
			return errors.Wrapf(err, "pool #%d", i)
		}
	}
	return nil
}
