package qfundtest

import "github.com/iov-one/qfund"

// Handler returns CheckResult and DeliverResult, or CheckErr and DeliverErr
// when set. Every call is counted.
type Handler struct {
	calls
	CheckResult   qfund.CheckResult
	CheckErr      error
	DeliverResult qfund.DeliverResult
	DeliverErr    error
}

var _ qfund.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (*qfund.CheckResult, error) {
	h.check++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (*qfund.DeliverResult, error) {
	h.deliver++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

// WriteHandler writes Key and Value to the store on every call and then
// returns Err.
type WriteHandler struct {
	Key   []byte
	Value []byte
	Err   error
}

var _ qfund.Handler = (*WriteHandler)(nil)

func (h *WriteHandler) Check(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (*qfund.CheckResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	if h.Err != nil {
		return nil, h.Err
	}
	return &qfund.CheckResult{}, nil
}

func (h *WriteHandler) Deliver(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (*qfund.DeliverResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	if h.Err != nil {
		return nil, h.Err
	}
	return &qfund.DeliverResult{}, nil
}

// PanicHandler panics with Err on every call.
type PanicHandler struct {
	Err error
}

var _ qfund.Handler = PanicHandler{}

func (p PanicHandler) Check(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (*qfund.CheckResult, error) {
	panic(p.Err)
}

func (p PanicHandler) Deliver(ctx qfund.Context, db qfund.KVStore, tx qfund.Tx) (*qfund.DeliverResult, error) {
	panic(p.Err)
}
