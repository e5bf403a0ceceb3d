package matching

import (
	"math/big"

	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
)

// ProjectLookup resolves a payee of an escrow to the project it owns in
// given pool. ErrProjectNotFound is returned if the payee has no project.
type ProjectLookup interface {
	LookupProject(db qfund.ReadOnlyKVStore, poolID, payee qfund.Address) (qfund.Address, *Project, error)
}

// ProjectLookupFunc adapts a function to the ProjectLookup interface.
type ProjectLookupFunc func(db qfund.ReadOnlyKVStore, poolID, payee qfund.Address) (qfund.Address, *Project, error)

func (fn ProjectLookupFunc) LookupProject(db qfund.ReadOnlyKVStore, poolID, payee qfund.Address) (qfund.Address, *Project, error) {
	return fn(db, poolID, payee)
}

// DefaultLookup returns the default lookup, resolving a payee to the project
// stored under ProjectCondition(pool, payee).
func (c *Controller) DefaultLookup() ProjectLookup {
	return ProjectLookupFunc(func(db qfund.ReadOnlyKVStore, poolID, payee qfund.Address) (qfund.Address, *Project, error) {
		id := ProjectCondition(poolID, payee).Address()
		p, err := c.projects.GetProject(db, id)
		switch {
		case err == nil:
			return id, p, nil
		case errors.ErrNotFound.Is(err):
			return nil, nil, errors.Wrapf(ErrProjectNotFound, "pool %s", poolID)
		default:
			return nil, nil, err
		}
	})
}

// Distribute divides the escrow deposit between the escrow payees,
// proportionally to the votes their projects received in the pool. Each
// payee is processed once, in the order of the payee list. The computed
// share overwrites the distributed amount of the project, so calling
// Distribute again with unchanged votes gives the same result.
//
// All shares are computed before any project is written. Escrow and pool
// are not modified.
func (c *Controller) Distribute(db qfund.KVStore, escrowID, poolID qfund.Address, lookup ProjectLookup) (*DistributeResult, error) {
	escrow, err := c.escrows.GetEscrow(db, escrowID)
	if err != nil {
		return nil, err
	}
	pool, err := c.pools.GetPool(db, poolID)
	if err != nil {
		return nil, err
	}

	type pending struct {
		id      qfund.Address
		project *Project
	}
	var (
		updates   []pending
		res       DistributeResult
		total     = new(big.Int)
		processed = make(map[string]struct{}, len(escrow.PayeeAddresses))
	)
	for _, payee := range escrow.PayeeAddresses {
		if _, ok := processed[string(payee)]; ok {
			continue
		}
		processed[string(payee)] = struct{}{}

		id, project, err := lookup.LookupProject(db, poolID, payee)
		if err != nil {
			return nil, errors.Wrapf(err, "payee %s", payee)
		}
		share, err := ComputeShare(project.VotesCount, escrow.DepositAmount, pool.TotalVotes)
		if err != nil {
			return nil, errors.Wrapf(err, "payee %s", payee)
		}
		total.Add(total, new(big.Int).SetUint64(share))

		project.DistributedAmount = share
		updates = append(updates, pending{id: id, project: project})
		res.Settlements = append(res.Settlements, &Settlement{
			Payee:     payee,
			ProjectID: id,
			Share:     share,
		})
	}

	deposit := new(big.Int).SetUint64(escrow.DepositAmount)
	if total.Cmp(deposit) > 0 {
		return nil, errors.Wrapf(errors.ErrState, "distributed %s exceeds deposit %d", total, escrow.DepositAmount)
	}
	res.Remainder = deposit.Sub(deposit, total).Uint64()

	for _, u := range updates {
		if err := c.projects.Put(db, u.id, u.project); err != nil {
			return nil, errors.Wrap(err, "store project")
		}
	}
	return &res, nil
}

// ComputeShare returns votes * deposit / totalVotes rounded down. The
// product is computed without overflow, only the final result must fit in
// uint64.
func ComputeShare(votes, deposit, totalVotes uint64) (uint64, error) {
	if votes == 0 {
		return 0, nil
	}
	if totalVotes == 0 {
		return 0, errors.Wrapf(ErrDivisionByZero, "%d votes in a pool without votes", votes)
	}
	share := new(big.Int).SetUint64(votes)
	share.Mul(share, new(big.Int).SetUint64(deposit))
	share.Quo(share, new(big.Int).SetUint64(totalVotes))
	if !share.IsUint64() {
		return 0, errors.Wrapf(errors.ErrOverflow, "share %s", share)
	}
	return share.Uint64(), nil
}
