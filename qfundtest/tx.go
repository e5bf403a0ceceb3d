package qfundtest

import (
	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
)

// Tx carries Msg, or fails with Err when it is set.
type Tx struct {
	Msg qfund.Msg
	Err error
}

var _ qfund.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (qfund.Msg, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	return tx.Msg, nil
}

// Marshal returns the serialized message. A Tx cannot be decoded back.
func (tx *Tx) Marshal() ([]byte, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	return msg.Marshal()
}

func (tx *Tx) Unmarshal([]byte) error {
	return errors.Wrap(errors.ErrHuman, "test transaction cannot be decoded")
}

// Msg is routed to RoutePath and serialized as Serialized. When Err is set
// Validate and the codec methods fail with it.
type Msg struct {
	RoutePath  string
	Serialized []byte
	Err        error
}

var _ qfund.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Marshal() ([]byte, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Serialized, nil
}

func (m *Msg) Unmarshal(raw []byte) error {
	if m.Err != nil {
		return m.Err
	}
	m.Serialized = raw
	return nil
}
