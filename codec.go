package qfund

import (
	"github.com/gogo/protobuf/proto"
)

// Metadata layout is declared in codec.proto.
type Metadata struct {
	Schema uint32 `protobuf:"varint,1,opt,name=schema,proto3" json:"schema,omitempty"`
}

type metadataPB Metadata

func (m *metadataPB) Reset()         { *m = metadataPB{} }
func (m *metadataPB) String() string { return proto.CompactTextString(m) }
func (*metadataPB) ProtoMessage()    {}

func (m *Metadata) Marshal() ([]byte, error) { return proto.Marshal((*metadataPB)(m)) }
func (m *Metadata) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*metadataPB)(m)) }
