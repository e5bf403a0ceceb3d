package matching

import (
	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
	"github.com/iov-one/qfund/gconf"
	"github.com/iov-one/qfund/x"
)

// RegisterRoutes registers handlers for all messages of this package.
func RegisterRoutes(r qfund.Registry, auth x.Authenticator) {
	ctrl := NewController()
	r.Handle(pathCreateEscrow, CreateEscrowHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathCreatePool, CreatePoolHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathCreateProject, CreateProjectHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathBindProject, BindProjectHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathVote, VoteHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathDistribute, DistributeHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathUpdateConfiguration, gconf.NewUpdateHandler(confPackageName, newConfiguration, auth))
}

func newConfiguration() gconf.Owned {
	return &Configuration{}
}

// CreateEscrowHandler creates an escrow owned by the main signer.
type CreateEscrowHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ qfund.Handler = CreateEscrowHandler{}

func (h CreateEscrowHandler) Check(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (*qfund.CheckResult, error) {
	creator, _, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.escrows.Has(db, EscrowCondition(creator).Address()); err == nil {
		return nil, errors.Wrap(ErrAlreadyInitialized, "escrow")
	}
	return &qfund.CheckResult{}, nil
}

func (h CreateEscrowHandler) Deliver(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (*qfund.DeliverResult, error) {
	creator, msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	id, err := h.ctrl.CreateEscrow(db, creator, msg.DepositAmount)
	if err != nil {
		return nil, err
	}
	return &qfund.DeliverResult{Data: id}, nil
}

func (h CreateEscrowHandler) validate(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (qfund.Address, *CreateEscrowMsg, error) {
	var msg CreateEscrowMsg
	if err := qfund.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	creator, err := x.MainSigner(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	return creator, &msg, nil
}

// CreatePoolHandler creates a pool owned by the main signer.
type CreatePoolHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ qfund.Handler = CreatePoolHandler{}

func (h CreatePoolHandler) Check(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (*qfund.CheckResult, error) {
	creator, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.pools.Has(db, PoolCondition(creator).Address()); err == nil {
		return nil, errors.Wrap(ErrAlreadyInitialized, "pool")
	}
	return &qfund.CheckResult{}, nil
}

func (h CreatePoolHandler) Deliver(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (*qfund.DeliverResult, error) {
	creator, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	id, err := h.ctrl.CreatePool(db, creator)
	if err != nil {
		return nil, err
	}
	return &qfund.DeliverResult{Data: id}, nil
}

func (h CreatePoolHandler) validate(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (qfund.Address, error) {
	var msg CreatePoolMsg
	if err := qfund.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return x.MainSigner(ctx, h.auth)
}

// CreateProjectHandler registers a project of the main signer.
type CreateProjectHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ qfund.Handler = CreateProjectHandler{}

func (h CreateProjectHandler) Check(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (*qfund.CheckResult, error) {
	owner, msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if uint64(len(msg.Name)) > uint64(conf.MaxNameLength) {
		return nil, errors.Wrapf(errors.ErrInput, "project name longer than %d bytes", conf.MaxNameLength)
	}
	if err := h.ctrl.pools.Has(db, msg.PoolID); err != nil {
		return nil, errors.Wrap(err, "pool")
	}
	if err := h.ctrl.projects.Has(db, ProjectCondition(msg.PoolID, owner).Address()); err == nil {
		return nil, errors.Wrap(ErrAlreadyInitialized, "project")
	}
	return &qfund.CheckResult{}, nil
}

func (h CreateProjectHandler) Deliver(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (*qfund.DeliverResult, error) {
	owner, msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	id, err := h.ctrl.CreateProject(db, conf, owner, msg.PoolID, msg.Name)
	if err != nil {
		return nil, err
	}
	return &qfund.DeliverResult{Data: id}, nil
}

func (h CreateProjectHandler) validate(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (qfund.Address, *CreateProjectMsg, *Configuration, error) {
	var msg CreateProjectMsg
	if err := qfund.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	owner, err := x.MainSigner(ctx, h.auth)
	if err != nil {
		return nil, nil, nil, err
	}
	conf, err := LoadConfiguration(db)
	if err != nil {
		return nil, nil, nil, err
	}
	return owner, &msg, conf, nil
}

// BindProjectHandler binds a project to a pool and an escrow. It must be
// signed by the project owner.
type BindProjectHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ qfund.Handler = BindProjectHandler{}

func (h BindProjectHandler) Check(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (*qfund.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &qfund.CheckResult{}, nil
}

func (h BindProjectHandler) Deliver(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (*qfund.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.BindProjectToPool(db, conf, msg.EscrowID, msg.PoolID, msg.ProjectID); err != nil {
		return nil, err
	}
	return &qfund.DeliverResult{}, nil
}

func (h BindProjectHandler) validate(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (*BindProjectMsg, *Configuration, error) {
	var msg BindProjectMsg
	if err := qfund.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	project, err := h.ctrl.projects.GetProject(db, msg.ProjectID)
	if err != nil {
		return nil, nil, err
	}
	if err := x.RequireSigner(ctx, h.auth, project.Owner, "project owner"); err != nil {
		return nil, nil, err
	}
	conf, err := LoadConfiguration(db)
	if err != nil {
		return nil, nil, err
	}
	return &msg, conf, nil
}

// VoteHandler casts a vote of the main signer.
type VoteHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ qfund.Handler = VoteHandler{}

func (h VoteHandler) Check(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (*qfund.CheckResult, error) {
	_, msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.pools.Has(db, msg.PoolID); err != nil {
		return nil, errors.Wrap(err, "pool")
	}
	if err := h.ctrl.projects.Has(db, msg.ProjectID); err != nil {
		return nil, errors.Wrap(err, "project")
	}
	return &qfund.CheckResult{}, nil
}

func (h VoteHandler) Deliver(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (*qfund.DeliverResult, error) {
	voter, msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	key, vote, err := h.ctrl.CastVote(db, voter, msg.PoolID, msg.ProjectID, msg.Weight)
	if err != nil {
		return nil, err
	}
	qfund.GetLogger(ctx).Debug("vote cast",
		"pool", msg.PoolID, "project", msg.ProjectID, "weight", msg.Weight, "credited", vote.Credited)
	return &qfund.DeliverResult{Data: key}, nil
}

func (h VoteHandler) validate(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (qfund.Address, *VoteMsg, error) {
	var msg VoteMsg
	if err := qfund.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	voter, err := x.MainSigner(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	return voter, &msg, nil
}

// DistributeHandler settles the escrow deposit between the pool projects.
// It must be signed by the escrow creator.
type DistributeHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ qfund.Handler = DistributeHandler{}

func (h DistributeHandler) Check(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (*qfund.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &qfund.CheckResult{}, nil
}

func (h DistributeHandler) Deliver(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (*qfund.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res, err := h.ctrl.Distribute(db, msg.EscrowID, msg.PoolID, h.ctrl.DefaultLookup())
	if err != nil {
		return nil, err
	}

	logger := qfund.GetLogger(ctx)
	for _, s := range res.Settlements {
		logger.Debug("settlement", "payee", s.Payee, "project", s.ProjectID, "share", s.Share)
	}
	logger.Info("distributed", "escrow", msg.EscrowID, "pool", msg.PoolID,
		"payees", len(res.Settlements), "remainder", res.Remainder)

	raw, err := res.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal result")
	}
	return &qfund.DeliverResult{Data: raw}, nil
}

func (h DistributeHandler) validate(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (*DistributeMsg, error) {
	var msg DistributeMsg
	if err := qfund.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	escrow, err := h.ctrl.escrows.GetEscrow(db, msg.EscrowID)
	if err != nil {
		return nil, err
	}
	if err := x.RequireSigner(ctx, h.auth, escrow.Creator, "escrow creator"); err != nil {
		return nil, err
	}
	if err := h.ctrl.pools.Has(db, msg.PoolID); err != nil {
		return nil, errors.Wrap(err, "pool")
	}
	return &msg, nil
}
