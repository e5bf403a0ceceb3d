package sigs

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/crypto"
)

// Message layouts are declared in codec.proto.

type UserData struct {
	Metadata *qfund.Metadata   `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Pubkey   *crypto.PublicKey `protobuf:"bytes,2,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Sequence int64             `protobuf:"varint,3,opt,name=sequence,proto3" json:"sequence,omitempty"`
}

type userDataPB UserData

func (m *userDataPB) Reset()         { *m = userDataPB{} }
func (m *userDataPB) String() string { return proto.CompactTextString(m) }
func (*userDataPB) ProtoMessage()    {}

func (m *UserData) Marshal() ([]byte, error) { return proto.Marshal((*userDataPB)(m)) }
func (m *UserData) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*userDataPB)(m)) }

type StdSignature struct {
	Sequence  int64             `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Pubkey    *crypto.PublicKey `protobuf:"bytes,2,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Signature *crypto.Signature `protobuf:"bytes,4,opt,name=signature,proto3" json:"signature,omitempty"`
}

type stdSignaturePB StdSignature

func (m *stdSignaturePB) Reset()         { *m = stdSignaturePB{} }
func (m *stdSignaturePB) String() string { return proto.CompactTextString(m) }
func (*stdSignaturePB) ProtoMessage()    {}

func (m *StdSignature) Marshal() ([]byte, error) { return proto.Marshal((*stdSignaturePB)(m)) }
func (m *StdSignature) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*stdSignaturePB)(m)) }
