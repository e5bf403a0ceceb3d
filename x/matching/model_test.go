package matching

import (
	"testing"

	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
	"github.com/iov-one/qfund/qfundtest"
	"github.com/iov-one/qfund/qfundtest/assert"
)

func TestModelValidate(t *testing.T) {
	addr := qfundtest.RandomAddr(t)
	meta := &qfund.Metadata{Schema: 1}

	cases := map[string]struct {
		Model    interface{ Validate() error }
		WantErrs map[string]*errors.Error
	}{
		"valid escrow": {
			Model: &Escrow{Metadata: meta, Creator: addr, DepositAmount: 1,
				PayeeAddresses: []qfund.Address{addr}, TotalProjects: 1},
			WantErrs: map[string]*errors.Error{
				"Creator":       nil,
				"TotalProjects": nil,
			},
		},
		"escrow counter out of sync": {
			Model: &Escrow{Metadata: meta, Creator: addr, DepositAmount: 1, TotalProjects: 2},
			WantErrs: map[string]*errors.Error{
				"TotalProjects": errors.ErrState,
			},
		},
		"escrow without a deposit": {
			Model: &Escrow{Metadata: meta, Creator: addr},
			WantErrs: map[string]*errors.Error{
				"DepositAmount": errors.ErrEmpty,
			},
		},
		"pool counter out of sync": {
			Model: &Pool{Metadata: meta, Creator: addr, Members: []qfund.Address{addr}},
			WantErrs: map[string]*errors.Error{
				"TotalProjects": errors.ErrState,
			},
		},
		"project bound without a pool": {
			Model: &Project{Metadata: meta, Owner: addr, Name: "x", InPool: true},
			WantErrs: map[string]*errors.Error{
				"InPool": errors.ErrState,
				"Name":   nil,
			},
		},
		"project amount without votes": {
			Model: &Project{Metadata: meta, Owner: addr, Name: "x", VoterAmount: 4},
			WantErrs: map[string]*errors.Error{
				"VoterAmount": errors.ErrState,
			},
		},
		"vote without weight": {
			Model: &Vote{Metadata: meta, Voter: addr, Pool: addr, Project: addr},
			WantErrs: map[string]*errors.Error{
				"Weight": errors.ErrEmpty,
				"Voter":  nil,
			},
		},
		"configuration without limits": {
			Model: &Configuration{Metadata: meta, Owner: addr},
			WantErrs: map[string]*errors.Error{
				"MaxPayees":     errors.ErrEmpty,
				"MaxNameLength": errors.ErrEmpty,
				"Owner":         nil,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.Model.Validate()
			for field, want := range tc.WantErrs {
				assert.FieldError(t, err, field, want)
			}
		})
	}
}

func TestConditionsAreUnique(t *testing.T) {
	a := qfundtest.RandomAddr(t)
	b := qfundtest.RandomAddr(t)

	ids := []qfund.Address{
		EscrowCondition(a).Address(),
		PoolCondition(a).Address(),
		ProjectCondition(a, b).Address(),
		ProjectCondition(b, a).Address(),
	}
	seen := make(map[string]bool)
	for _, id := range ids {
		if seen[string(id)] {
			t.Fatalf("duplicated address %s", id)
		}
		seen[string(id)] = true
	}
}
