package app

import (
	"reflect"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
	"github.com/iov-one/qfund/x/sigs"
)

// Tx is the transaction format used by the Executor. The message is
// serialized into the payload and decoded by TxDecoder.
type Tx struct {
	Signatures []*sigs.StdSignature
	Path       string
	Payload    []byte

	msg qfund.Msg
}

var _ qfund.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// Tx layout is declared in codec.proto.
type txPB struct {
	Signatures []*sigs.StdSignature `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`
	Path       string               `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	Payload    []byte               `protobuf:"bytes,3,opt,name=payload,proto3" json:"payload,omitempty"`
}

func (m *txPB) Reset()         { *m = txPB{} }
func (m *txPB) String() string { return proto.CompactTextString(m) }
func (*txPB) ProtoMessage()    {}

// NewTx returns a transaction carrying given message.
func NewTx(msg qfund.Msg) (*Tx, error) {
	raw, err := msg.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal message")
	}
	return &Tx{
		Path:    msg.Path(),
		Payload: raw,
		msg:     msg,
	}, nil
}

func (tx *Tx) Marshal() ([]byte, error) {
	return proto.Marshal(&txPB{
		Signatures: tx.Signatures,
		Path:       tx.Path,
		Payload:    tx.Payload,
	})
}

// Unmarshal loads the transaction envelope. The message is available only
// after decoding with TxDecoder.
func (tx *Tx) Unmarshal(raw []byte) error {
	var pb txPB
	if err := proto.Unmarshal(raw, &pb); err != nil {
		return err
	}
	*tx = Tx{
		Signatures: pb.Signatures,
		Path:       pb.Path,
		Payload:    pb.Payload,
	}
	return nil
}

func (tx *Tx) GetMsg() (qfund.Msg, error) {
	if tx.msg == nil {
		return nil, errors.Wrapf(errors.ErrMsg, "message %q not decoded", tx.Path)
	}
	return tx.msg, nil
}

func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the serialized transaction without signatures.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	return proto.Marshal(&txPB{
		Path:    tx.Path,
		Payload: tx.Payload,
	})
}

// TxDecoder decodes transactions carrying any of the registered messages.
type TxDecoder struct {
	msgs map[string]reflect.Type
}

// NewTxDecoder returns a decoder for given messages.
func NewTxDecoder(msgs ...qfund.Msg) *TxDecoder {
	d := &TxDecoder{msgs: make(map[string]reflect.Type)}
	d.Register(msgs...)
	return d
}

// Register adds messages that can be decoded. It panics if a message
// for the same path is already registered.
func (d *TxDecoder) Register(msgs ...qfund.Msg) {
	for _, m := range msgs {
		tp := reflect.TypeOf(m)
		if tp.Kind() != reflect.Ptr {
			panic("message must be a pointer: " + tp.String())
		}
		if _, ok := d.msgs[m.Path()]; ok {
			panic("message path already registered: " + m.Path())
		}
		d.msgs[m.Path()] = tp.Elem()
	}
}

// Decode unmarshals the transaction and its message.
func (d *TxDecoder) Decode(raw []byte) (qfund.Tx, error) {
	var tx Tx
	if err := tx.Unmarshal(raw); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "unmarshal transaction: %s", err)
	}
	tp, ok := d.msgs[tx.Path]
	if !ok {
		return nil, errors.Wrapf(errors.ErrMsg, "unknown message path %q", tx.Path)
	}
	msg := reflect.New(tp).Interface().(qfund.Msg)
	if err := msg.Unmarshal(tx.Payload); err != nil {
		return nil, errors.Wrapf(errors.ErrMsg, "unmarshal %q message: %s", tx.Path, err)
	}
	tx.msg = msg
	return &tx, nil
}
