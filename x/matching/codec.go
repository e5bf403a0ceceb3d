package matching

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/qfund"
)

// Message layouts are declared in codec.proto.

type Escrow struct {
	Metadata       *qfund.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Creator        qfund.Address   `protobuf:"bytes,2,opt,name=creator,proto3" json:"creator,omitempty"`
	DepositAmount  uint64          `protobuf:"varint,3,opt,name=deposit_amount,json=depositAmount,proto3" json:"deposit_amount,omitempty"`
	PayeeAddresses []qfund.Address `protobuf:"bytes,4,rep,name=payee_addresses,json=payeeAddresses,proto3" json:"payee_addresses,omitempty"`
	TotalProjects  uint32          `protobuf:"varint,5,opt,name=total_projects,json=totalProjects,proto3" json:"total_projects,omitempty"`
}

type escrowPB Escrow

func (m *escrowPB) Reset()         { *m = escrowPB{} }
func (m *escrowPB) String() string { return proto.CompactTextString(m) }
func (*escrowPB) ProtoMessage()    {}

func (m *Escrow) Marshal() ([]byte, error) { return proto.Marshal((*escrowPB)(m)) }
func (m *Escrow) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*escrowPB)(m)) }

type Pool struct {
	Metadata      *qfund.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Creator       qfund.Address   `protobuf:"bytes,2,opt,name=creator,proto3" json:"creator,omitempty"`
	Members       []qfund.Address `protobuf:"bytes,3,rep,name=members,proto3" json:"members,omitempty"`
	TotalProjects uint32          `protobuf:"varint,4,opt,name=total_projects,json=totalProjects,proto3" json:"total_projects,omitempty"`
	TotalVotes    uint64          `protobuf:"varint,5,opt,name=total_votes,json=totalVotes,proto3" json:"total_votes,omitempty"`
}

type poolPB Pool

func (m *poolPB) Reset()         { *m = poolPB{} }
func (m *poolPB) String() string { return proto.CompactTextString(m) }
func (*poolPB) ProtoMessage()    {}

func (m *Pool) Marshal() ([]byte, error) { return proto.Marshal((*poolPB)(m)) }
func (m *Pool) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*poolPB)(m)) }

type Project struct {
	Metadata          *qfund.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner             qfund.Address   `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Name              string          `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	VotesCount        uint64          `protobuf:"varint,4,opt,name=votes_count,json=votesCount,proto3" json:"votes_count,omitempty"`
	VoterAmount       uint64          `protobuf:"varint,5,opt,name=voter_amount,json=voterAmount,proto3" json:"voter_amount,omitempty"`
	DistributedAmount uint64          `protobuf:"varint,6,opt,name=distributed_amount,json=distributedAmount,proto3" json:"distributed_amount,omitempty"`
	InPool            bool            `protobuf:"varint,7,opt,name=in_pool,json=inPool,proto3" json:"in_pool,omitempty"`
	AssociatedPool    qfund.Address   `protobuf:"bytes,8,opt,name=associated_pool,json=associatedPool,proto3" json:"associated_pool,omitempty"`
}

type projectPB Project

func (m *projectPB) Reset()         { *m = projectPB{} }
func (m *projectPB) String() string { return proto.CompactTextString(m) }
func (*projectPB) ProtoMessage()    {}

func (m *Project) Marshal() ([]byte, error) { return proto.Marshal((*projectPB)(m)) }
func (m *Project) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*projectPB)(m)) }

type Vote struct {
	Metadata *qfund.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Voter    qfund.Address   `protobuf:"bytes,2,opt,name=voter,proto3" json:"voter,omitempty"`
	Pool     qfund.Address   `protobuf:"bytes,3,opt,name=pool,proto3" json:"pool,omitempty"`
	Project  qfund.Address   `protobuf:"bytes,4,opt,name=project,proto3" json:"project,omitempty"`
	Weight   uint64          `protobuf:"varint,5,opt,name=weight,proto3" json:"weight,omitempty"`
	Credited bool            `protobuf:"varint,6,opt,name=credited,proto3" json:"credited,omitempty"`
}

type votePB Vote

func (m *votePB) Reset()         { *m = votePB{} }
func (m *votePB) String() string { return proto.CompactTextString(m) }
func (*votePB) ProtoMessage()    {}

func (m *Vote) Marshal() ([]byte, error) { return proto.Marshal((*votePB)(m)) }
func (m *Vote) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*votePB)(m)) }

type Configuration struct {
	Metadata      *qfund.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner         qfund.Address   `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	MaxPayees     uint32          `protobuf:"varint,3,opt,name=max_payees,json=maxPayees,proto3" json:"max_payees,omitempty"`
	MaxNameLength uint32          `protobuf:"varint,4,opt,name=max_name_length,json=maxNameLength,proto3" json:"max_name_length,omitempty"`
}

type configurationPB Configuration

func (m *configurationPB) Reset()         { *m = configurationPB{} }
func (m *configurationPB) String() string { return proto.CompactTextString(m) }
func (*configurationPB) ProtoMessage()    {}

func (m *Configuration) Marshal() ([]byte, error) { return proto.Marshal((*configurationPB)(m)) }
func (m *Configuration) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*configurationPB)(m)) }

type Settlement struct {
	Payee     qfund.Address `protobuf:"bytes,1,opt,name=payee,proto3" json:"payee,omitempty"`
	ProjectID qfund.Address `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	Share     uint64        `protobuf:"varint,3,opt,name=share,proto3" json:"share,omitempty"`
}

type settlementPB Settlement

func (m *settlementPB) Reset()         { *m = settlementPB{} }
func (m *settlementPB) String() string { return proto.CompactTextString(m) }
func (*settlementPB) ProtoMessage()    {}

func (m *Settlement) Marshal() ([]byte, error) { return proto.Marshal((*settlementPB)(m)) }
func (m *Settlement) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*settlementPB)(m)) }

type DistributeResult struct {
	Settlements []*Settlement `protobuf:"bytes,1,rep,name=settlements,proto3" json:"settlements,omitempty"`
	Remainder   uint64        `protobuf:"varint,2,opt,name=remainder,proto3" json:"remainder,omitempty"`
}

type distributeResultPB DistributeResult

func (m *distributeResultPB) Reset()         { *m = distributeResultPB{} }
func (m *distributeResultPB) String() string { return proto.CompactTextString(m) }
func (*distributeResultPB) ProtoMessage()    {}

func (m *DistributeResult) Marshal() ([]byte, error) {
	return proto.Marshal((*distributeResultPB)(m))
}
func (m *DistributeResult) Unmarshal(b []byte) error {
	return proto.Unmarshal(b, (*distributeResultPB)(m))
}

type CreateEscrowMsg struct {
	Metadata      *qfund.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	DepositAmount uint64          `protobuf:"varint,2,opt,name=deposit_amount,json=depositAmount,proto3" json:"deposit_amount,omitempty"`
}

type createEscrowMsgPB CreateEscrowMsg

func (m *createEscrowMsgPB) Reset()         { *m = createEscrowMsgPB{} }
func (m *createEscrowMsgPB) String() string { return proto.CompactTextString(m) }
func (*createEscrowMsgPB) ProtoMessage()    {}

func (m *CreateEscrowMsg) Marshal() ([]byte, error) { return proto.Marshal((*createEscrowMsgPB)(m)) }
func (m *CreateEscrowMsg) Unmarshal(b []byte) error {
	return proto.Unmarshal(b, (*createEscrowMsgPB)(m))
}

type CreatePoolMsg struct {
	Metadata *qfund.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

type createPoolMsgPB CreatePoolMsg

func (m *createPoolMsgPB) Reset()         { *m = createPoolMsgPB{} }
func (m *createPoolMsgPB) String() string { return proto.CompactTextString(m) }
func (*createPoolMsgPB) ProtoMessage()    {}

func (m *CreatePoolMsg) Marshal() ([]byte, error) { return proto.Marshal((*createPoolMsgPB)(m)) }
func (m *CreatePoolMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*createPoolMsgPB)(m)) }

type CreateProjectMsg struct {
	Metadata *qfund.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	PoolID   qfund.Address   `protobuf:"bytes,2,opt,name=pool_id,json=poolId,proto3" json:"pool_id,omitempty"`
	Name     string          `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
}

type createProjectMsgPB CreateProjectMsg

func (m *createProjectMsgPB) Reset()         { *m = createProjectMsgPB{} }
func (m *createProjectMsgPB) String() string { return proto.CompactTextString(m) }
func (*createProjectMsgPB) ProtoMessage()    {}

func (m *CreateProjectMsg) Marshal() ([]byte, error) { return proto.Marshal((*createProjectMsgPB)(m)) }
func (m *CreateProjectMsg) Unmarshal(b []byte) error {
	return proto.Unmarshal(b, (*createProjectMsgPB)(m))
}

type BindProjectMsg struct {
	Metadata  *qfund.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	EscrowID  qfund.Address   `protobuf:"bytes,2,opt,name=escrow_id,json=escrowId,proto3" json:"escrow_id,omitempty"`
	PoolID    qfund.Address   `protobuf:"bytes,3,opt,name=pool_id,json=poolId,proto3" json:"pool_id,omitempty"`
	ProjectID qfund.Address   `protobuf:"bytes,4,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
}

type bindProjectMsgPB BindProjectMsg

func (m *bindProjectMsgPB) Reset()         { *m = bindProjectMsgPB{} }
func (m *bindProjectMsgPB) String() string { return proto.CompactTextString(m) }
func (*bindProjectMsgPB) ProtoMessage()    {}

func (m *BindProjectMsg) Marshal() ([]byte, error) { return proto.Marshal((*bindProjectMsgPB)(m)) }
func (m *BindProjectMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*bindProjectMsgPB)(m)) }

type VoteMsg struct {
	Metadata  *qfund.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	PoolID    qfund.Address   `protobuf:"bytes,2,opt,name=pool_id,json=poolId,proto3" json:"pool_id,omitempty"`
	ProjectID qfund.Address   `protobuf:"bytes,3,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	Weight    uint64          `protobuf:"varint,4,opt,name=weight,proto3" json:"weight,omitempty"`
}

type voteMsgPB VoteMsg

func (m *voteMsgPB) Reset()         { *m = voteMsgPB{} }
func (m *voteMsgPB) String() string { return proto.CompactTextString(m) }
func (*voteMsgPB) ProtoMessage()    {}

func (m *VoteMsg) Marshal() ([]byte, error) { return proto.Marshal((*voteMsgPB)(m)) }
func (m *VoteMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*voteMsgPB)(m)) }

type DistributeMsg struct {
	Metadata *qfund.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	EscrowID qfund.Address   `protobuf:"bytes,2,opt,name=escrow_id,json=escrowId,proto3" json:"escrow_id,omitempty"`
	PoolID   qfund.Address   `protobuf:"bytes,3,opt,name=pool_id,json=poolId,proto3" json:"pool_id,omitempty"`
}

type distributeMsgPB DistributeMsg

func (m *distributeMsgPB) Reset()         { *m = distributeMsgPB{} }
func (m *distributeMsgPB) String() string { return proto.CompactTextString(m) }
func (*distributeMsgPB) ProtoMessage()    {}

func (m *DistributeMsg) Marshal() ([]byte, error) { return proto.Marshal((*distributeMsgPB)(m)) }
func (m *DistributeMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*distributeMsgPB)(m)) }

type UpdateConfigurationMsg struct {
	Metadata *qfund.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Patch    *Configuration  `protobuf:"bytes,2,opt,name=patch,proto3" json:"patch,omitempty"`
}

type updateConfigurationMsgPB UpdateConfigurationMsg

func (m *updateConfigurationMsgPB) Reset()         { *m = updateConfigurationMsgPB{} }
func (m *updateConfigurationMsgPB) String() string { return proto.CompactTextString(m) }
func (*updateConfigurationMsgPB) ProtoMessage()    {}

func (m *UpdateConfigurationMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*updateConfigurationMsgPB)(m))
}
func (m *UpdateConfigurationMsg) Unmarshal(b []byte) error {
	return proto.Unmarshal(b, (*updateConfigurationMsgPB)(m))
}
