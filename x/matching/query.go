package matching

import (
	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
)

// EscrowByCreator returns the escrow owned by given creator.
func (c *Controller) EscrowByCreator(db qfund.ReadOnlyKVStore, creator qfund.Address) (*Escrow, error) {
	return c.escrows.GetEscrow(db, EscrowCondition(creator).Address())
}

// PoolByCreator returns the pool owned by given creator.
func (c *Controller) PoolByCreator(db qfund.ReadOnlyKVStore, creator qfund.Address) (*Pool, error) {
	return c.pools.GetPool(db, PoolCondition(creator).Address())
}

// ProjectOf returns the project registered by owner for given pool.
func (c *Controller) ProjectOf(db qfund.ReadOnlyKVStore, poolID, owner qfund.Address) (*Project, error) {
	return c.projects.GetProject(db, ProjectCondition(poolID, owner).Address())
}

// PoolProjects returns the projects of all pool members, in the order of
// binding.
func (c *Controller) PoolProjects(db qfund.ReadOnlyKVStore, poolID qfund.Address) ([]*Project, error) {
	pool, err := c.pools.GetPool(db, poolID)
	if err != nil {
		return nil, err
	}
	projects := make([]*Project, 0, len(pool.Members))
	for _, owner := range pool.Members {
		p, err := c.ProjectOf(db, poolID, owner)
		if err != nil {
			return nil, errors.Wrapf(err, "member %s", owner)
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// VotesByPool returns the receipts of all votes cast in given pool.
func (c *Controller) VotesByPool(db qfund.ReadOnlyKVStore, poolID qfund.Address) ([]*Vote, error) {
	return c.votes.ByPool(db, poolID)
}
