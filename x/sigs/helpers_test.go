package sigs

import (
	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/qfundtest"
)

// StdTx is a signed transaction carrying a mock message.
type StdTx struct {
	qfundtest.Tx
	Signatures []*StdSignature
}

var _ SignedTx = (*StdTx)(nil)
var _ qfund.Tx = (*StdTx)(nil)

func NewStdTx(payload []byte) *StdTx {
	msg := &qfundtest.Msg{RoutePath: "test/sigs", Serialized: payload}
	return &StdTx{Tx: qfundtest.Tx{Msg: msg}}
}

func (tx *StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx *StdTx) GetSignBytes() ([]byte, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	return msg.Marshal()
}

// SigCheckHandler stores the seen signers on each call
type SigCheckHandler struct {
	Signers []qfund.Condition
}

var _ qfund.Handler = (*SigCheckHandler)(nil)

func (s *SigCheckHandler) Check(ctx qfund.Context, store qfund.KVStore, tx qfund.Tx) (*qfund.CheckResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &qfund.CheckResult{}, nil
}

func (s *SigCheckHandler) Deliver(ctx qfund.Context, store qfund.KVStore, tx qfund.Tx) (*qfund.DeliverResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &qfund.DeliverResult{}, nil
}
