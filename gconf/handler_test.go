package gconf

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
	"github.com/iov-one/qfund/qfundtest"
	"github.com/iov-one/qfund/qfundtest/assert"
	"github.com/iov-one/qfund/store"
)

func TestUpdateHandler(t *testing.T) {
	owner := qfundtest.NewCondition()
	stored := &myconfig{Owner: owner.Address(), Num: 5125, Str: "foobar"}

	cases := map[string]struct {
		Stored  *myconfig
		Msg     qfund.Msg
		Signers []qfund.Condition
		WantErr *errors.Error
		// Configuration expected in the store after delivery.
		Want *myconfig
	}{
		"owner replaces all values": {
			Stored:  stored,
			Msg:     &myconfigMsg{Patch: &myconfig{Owner: owner.Address(), Num: 333, Str: "boing!"}},
			Signers: []qfund.Condition{owner},
			Want:    &myconfig{Owner: owner.Address(), Num: 333, Str: "boing!"},
		},
		"zero values keep the stored value": {
			Stored:  stored,
			Msg:     &myconfigMsg{Patch: &myconfig{Str: "new"}},
			Signers: []qfund.Condition{owner},
			Want:    &myconfig{Owner: owner.Address(), Num: 5125, Str: "new"},
		},
		"only the owner can patch": {
			Stored:  stored,
			Msg:     &myconfigMsg{Patch: &myconfig{Num: 1}},
			Signers: []qfund.Condition{qfundtest.NewCondition()},
			WantErr: errors.ErrUnauthorized,
			Want:    stored,
		},
		"patched configuration must be valid": {
			Stored:  stored,
			Msg:     &myconfigMsg{Patch: &myconfig{Num: -1}},
			Signers: []qfund.Condition{owner},
			WantErr: errors.ErrInput,
			Want:    stored,
		},
		"nothing to patch": {
			Msg:     &myconfigMsg{Patch: &myconfig{Num: 1}},
			Signers: []qfund.Condition{owner},
			WantErr: errors.ErrNotFound,
		},
		"patch is required": {
			Stored:  stored,
			Msg:     &myconfigMsg{},
			Signers: []qfund.Condition{owner},
			WantErr: errors.ErrState,
			Want:    stored,
		},
		"message is not a patch": {
			Stored:  stored,
			Msg:     &qfundtest.Msg{RoutePath: "myconfig"},
			Signers: []qfund.Condition{owner},
			WantErr: errors.ErrMsg,
			Want:    stored,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			if tc.Stored != nil {
				assert.Nil(t, Save(db, "mypkg", tc.Stored))
			}

			auth := &qfundtest.CtxAuth{Key: "auth"}
			h := NewUpdateHandler("mypkg", func() Owned { return &myconfig{} }, auth)
			ctx := auth.SetConditions(context.Background(), tc.Signers...)
			tx := &qfundtest.Tx{Msg: tc.Msg}

			// Check never writes, even on success.
			_, err := h.Check(ctx, db, tx)
			assert.IsErr(t, tc.WantErr, err)
			if tc.Stored != nil {
				var got myconfig
				assert.Nil(t, Load(db, "mypkg", &got))
				assert.Equal(t, tc.Stored, &got)
			}

			_, err = h.Deliver(ctx, db, tx)
			assert.IsErr(t, tc.WantErr, err)
			if tc.Want != nil {
				var got myconfig
				assert.Nil(t, Load(db, "mypkg", &got))
				assert.Equal(t, tc.Want, &got)
			}
		})
	}
}

type myconfig struct {
	Owner qfund.Address
	Num   int64
	Str   string
}

func (c *myconfig) GetOwner() qfund.Address    { return c.Owner }
func (c *myconfig) Marshal() ([]byte, error)   { return json.Marshal(c) }
func (c *myconfig) Unmarshal(raw []byte) error { return json.Unmarshal(raw, c) }

func (c *myconfig) Validate() error {
	if err := c.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if c.Num < 0 {
		return errors.Wrap(errors.ErrInput, "negative number")
	}
	return nil
}

type myconfigMsg struct {
	Patch *myconfig
}

var _ PatchMsg = (*myconfigMsg)(nil)

func (m *myconfigMsg) Marshal() ([]byte, error)   { return json.Marshal(m) }
func (m *myconfigMsg) Unmarshal(raw []byte) error { return json.Unmarshal(raw, m) }
func (m *myconfigMsg) Path() string               { return "myconfig" }
func (m *myconfigMsg) Validate() error            { return nil }
func (m *myconfigMsg) ConfigPatch() Owned         { return m.Patch }
