package crypto

import (
	"github.com/gogo/protobuf/proto"
)

// Message layouts are declared in codec.proto. Each message has an unexported
// twin type without methods so that gogo/protobuf encodes it using the struct
// tags instead of calling back into Marshal.

type PublicKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

type publicKeyPB PublicKey

func (m *publicKeyPB) Reset()         { *m = publicKeyPB{} }
func (m *publicKeyPB) String() string { return proto.CompactTextString(m) }
func (*publicKeyPB) ProtoMessage()    {}

func (m *PublicKey) Marshal() ([]byte, error) { return proto.Marshal((*publicKeyPB)(m)) }
func (m *PublicKey) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*publicKeyPB)(m)) }

type PrivateKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

type privateKeyPB PrivateKey

func (m *privateKeyPB) Reset()         { *m = privateKeyPB{} }
func (m *privateKeyPB) String() string { return proto.CompactTextString(m) }
func (*privateKeyPB) ProtoMessage()    {}

func (m *PrivateKey) Marshal() ([]byte, error) { return proto.Marshal((*privateKeyPB)(m)) }
func (m *PrivateKey) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*privateKeyPB)(m)) }

type Signature struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

type signaturePB Signature

func (m *signaturePB) Reset()         { *m = signaturePB{} }
func (m *signaturePB) String() string { return proto.CompactTextString(m) }
func (*signaturePB) ProtoMessage()    {}

func (m *Signature) Marshal() ([]byte, error) { return proto.Marshal((*signaturePB)(m)) }
func (m *Signature) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*signaturePB)(m)) }
