package matching

import (
	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
	"github.com/iov-one/qfund/gconf"
)

const (
	pathCreateEscrow        = "matching/create_escrow"
	pathCreatePool          = "matching/create_pool"
	pathCreateProject       = "matching/create_project"
	pathBindProject         = "matching/bind_project"
	pathVote                = "matching/vote"
	pathDistribute          = "matching/distribute"
	pathUpdateConfiguration = "matching/update_configuration"
)

var _ qfund.Msg = (*CreateEscrowMsg)(nil)

func (CreateEscrowMsg) Path() string {
	return pathCreateEscrow
}

func (m *CreateEscrowMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.DepositAmount == 0 {
		errs = errors.AppendField(errs, "DepositAmount", errors.Wrap(errors.ErrInput, "must be greater than zero"))
	}
	return errs
}

var _ qfund.Msg = (*CreatePoolMsg)(nil)

func (CreatePoolMsg) Path() string {
	return pathCreatePool
}

func (m *CreatePoolMsg) Validate() error {
	return errors.AppendField(nil, "Metadata", m.Metadata.Validate())
}

var _ qfund.Msg = (*CreateProjectMsg)(nil)

func (CreateProjectMsg) Path() string {
	return pathCreateProject
}

// Validate checks the message format. The name length limit is
// configurable and checked by the handler.
func (m *CreateProjectMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "PoolID", m.PoolID.Validate())
	if m.Name == "" {
		errs = errors.AppendField(errs, "Name", errors.Wrap(errors.ErrEmpty, "name is required"))
	}
	return errs
}

var _ qfund.Msg = (*BindProjectMsg)(nil)

func (BindProjectMsg) Path() string {
	return pathBindProject
}

func (m *BindProjectMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "EscrowID", m.EscrowID.Validate())
	errs = errors.AppendField(errs, "PoolID", m.PoolID.Validate())
	errs = errors.AppendField(errs, "ProjectID", m.ProjectID.Validate())
	return errs
}

var _ qfund.Msg = (*VoteMsg)(nil)

func (VoteMsg) Path() string {
	return pathVote
}

func (m *VoteMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "PoolID", m.PoolID.Validate())
	errs = errors.AppendField(errs, "ProjectID", m.ProjectID.Validate())
	if m.Weight == 0 {
		errs = errors.AppendField(errs, "Weight", errors.Wrap(errors.ErrInput, "must be greater than zero"))
	}
	return errs
}

var _ qfund.Msg = (*DistributeMsg)(nil)

func (DistributeMsg) Path() string {
	return pathDistribute
}

func (m *DistributeMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "EscrowID", m.EscrowID.Validate())
	errs = errors.AppendField(errs, "PoolID", m.PoolID.Validate())
	return errs
}

var _ gconf.PatchMsg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return pathUpdateConfiguration
}

func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Patch == nil {
		errs = errors.AppendField(errs, "Patch", errors.ErrEmpty)
	}
	return errs
}

// ConfigPatch returns the configuration change carried by this message.
func (m *UpdateConfigurationMsg) ConfigPatch() gconf.Owned {
	return m.Patch
}
