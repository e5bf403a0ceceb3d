package matching

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
	"github.com/iov-one/qfund/gconf"
	"github.com/iov-one/qfund/store"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGenesis(t *testing.T) {
	Convey("Test initializer", t, func() {
		genesis := `
		{
			"conf": {
				"matching": {
					"metadata": {"schema": 1},
					"owner": "d2a1f84143a9754057e42db6d6c9f986fe0ff673",
					"max_payees": 10,
					"max_name_length": 32
				}
			},
			"matching": {
				"escrows": [
					{"creator": "b1ca7e78f74423ae01da3b51e676934d9105f282", "deposit_amount": 1000}
				],
				"pools": [
					{"creator": "b1ca7e78f74423ae01da3b51e676934d9105f282"},
					{"creator": "e28ae9a6eb94fc88b73eb7cbd6b87bf93eb9bef0"}
				]
			}
		}`
		var o qfund.Options
		err := json.Unmarshal([]byte(genesis), &o)
		So(err, ShouldBeNil)

		db := store.MemStore()
		var init Initializer
		err = init.FromGenesis(o, db)
		So(err, ShouldBeNil)

		Convey("Configuration is stored", func() {
			conf, err := LoadConfiguration(db)
			So(err, ShouldBeNil)
			So(conf.MaxPayees, ShouldEqual, 10)
			So(conf.MaxNameLength, ShouldEqual, 32)
			So(conf.Owner.String(), ShouldEqual, "D2A1F84143A9754057E42DB6D6C9F986FE0FF673")
		})

		Convey("Escrows and pools are created", func() {
			creator, err := qfund.ParseAddress("b1ca7e78f74423ae01da3b51e676934d9105f282")
			So(err, ShouldBeNil)

			ctrl := NewController()
			escrow, err := ctrl.EscrowByCreator(db, creator)
			So(err, ShouldBeNil)
			So(escrow.DepositAmount, ShouldEqual, 1000)
			So(escrow.PayeeAddresses, ShouldBeEmpty)

			pool, err := ctrl.PoolByCreator(db, creator)
			So(err, ShouldBeNil)
			So(pool.TotalVotes, ShouldEqual, 0)

			other, err := qfund.ParseAddress("e28ae9a6eb94fc88b73eb7cbd6b87bf93eb9bef0")
			So(err, ShouldBeNil)
			_, err = ctrl.EscrowByCreator(db, other)
			So(errors.ErrNotFound.Is(err), ShouldBeTrue)
		})
	})

	Convey("Test initializer without configuration", t, func() {
		db := store.MemStore()
		var init Initializer
		err := init.FromGenesis(qfund.Options{}, db)
		So(err, ShouldBeNil)

		var c Configuration
		err = gconf.Load(db, confPackageName, &c)
		So(errors.ErrNotFound.Is(err), ShouldBeTrue)

		conf, err := LoadConfiguration(db)
		So(err, ShouldBeNil)
		So(conf.MaxPayees, ShouldEqual, 255)
	})

	Convey("Test initializer with a duplicated escrow", t, func() {
		genesis := `
		{
			"matching": {
				"escrows": [
					{"creator": "b1ca7e78f74423ae01da3b51e676934d9105f282", "deposit_amount": 1},
					{"creator": "b1ca7e78f74423ae01da3b51e676934d9105f282", "deposit_amount": 2}
				]
			}
		}`
		var o qfund.Options
		So(json.Unmarshal([]byte(genesis), &o), ShouldBeNil)

		var init Initializer
		err := init.FromGenesis(o, store.MemStore())
		So(ErrAlreadyInitialized.Is(err), ShouldBeTrue)
	})
}
