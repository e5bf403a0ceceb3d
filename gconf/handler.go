package gconf

import (
	"reflect"

	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
	"github.com/iov-one/qfund/x"
)

// Owned is a configuration that can be changed only by its owner.
type Owned interface {
	Config
	GetOwner() qfund.Address
}

// PatchMsg is a message carrying a configuration change. Fields of the
// patch set to their zero value keep the stored value.
type PatchMsg interface {
	qfund.Msg
	ConfigPatch() Owned
}

// UpdateHandler applies configuration patches signed by the owner of the
// stored configuration.
type UpdateHandler struct {
	pkg     string
	newConf func() Owned
	auth    x.Authenticator
}

var _ qfund.Handler = UpdateHandler{}

// NewUpdateHandler returns a handler patching the configuration of given
// package. newConf must return an empty configuration of the stored type.
func NewUpdateHandler(pkg string, newConf func() Owned, auth x.Authenticator) UpdateHandler {
	return UpdateHandler{pkg: pkg, newConf: newConf, auth: auth}
}

func (h UpdateHandler) Check(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (*qfund.CheckResult, error) {
	if _, err := h.patched(ctx, db, tx); err != nil {
		return nil, err
	}
	return &qfund.CheckResult{}, nil
}

func (h UpdateHandler) Deliver(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (*qfund.DeliverResult, error) {
	conf, err := h.patched(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := Save(db, h.pkg, conf); err != nil {
		return nil, err
	}
	return &qfund.DeliverResult{}, nil
}

// patched returns the stored configuration with the message patch applied.
// The result is validated but not saved.
func (h UpdateHandler) patched(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (Owned, error) {
	m, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "transaction message")
	}
	msg, ok := m.(PatchMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrMsg, "%T is not a configuration patch", m)
	}
	if err := msg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid message")
	}
	conf := h.newConf()
	if err := Load(db, h.pkg, conf); err != nil {
		return nil, err
	}
	if err := x.RequireSigner(ctx, h.auth, conf.GetOwner(), h.pkg+" configuration owner"); err != nil {
		return nil, err
	}
	p := msg.ConfigPatch()
	if p == nil || reflect.ValueOf(p).IsNil() {
		return nil, errors.Wrap(errors.ErrState, "missing configuration patch")
	}
	if err := merge(conf, p); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Wrapf(err, "patched %s configuration", h.pkg)
	}
	return conf, nil
}

// merge copies every exported, non zero field of patch into dst. Both must
// be pointers to the same struct type.
func merge(dst, patch Owned) error {
	d, p := reflect.ValueOf(dst), reflect.ValueOf(patch)
	if d.Type() != p.Type() || d.Kind() != reflect.Ptr || d.Elem().Kind() != reflect.Struct {
		return errors.Wrapf(errors.ErrMsg, "cannot apply %T patch to %T", patch, dst)
	}
	d, p = d.Elem(), p.Elem()
	for i := 0; i < p.NumField(); i++ {
		if d.Type().Field(i).PkgPath != "" {
			continue
		}
		val := p.Field(i)
		if reflect.DeepEqual(val.Interface(), reflect.Zero(val.Type()).Interface()) {
			continue
		}
		d.Field(i).Set(val)
	}
	return nil
}
