package matching

import (
	"math"

	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
)

// Controller implements the state transitions of escrows, pools, projects
// and votes. Each method validates all preconditions before writing
// anything, so a failed call leaves the store unchanged.
type Controller struct {
	escrows  EscrowBucket
	pools    PoolBucket
	projects ProjectBucket
	votes    VoteBucket
}

// NewController returns a controller using the default buckets.
func NewController() *Controller {
	return &Controller{
		escrows:  NewEscrowBucket(),
		pools:    NewPoolBucket(),
		projects: NewProjectBucket(),
		votes:    NewVoteBucket(),
	}
}

// CreateEscrow creates an escrow holding given deposit. Each creator can own
// a single escrow.
func (c *Controller) CreateEscrow(db qfund.KVStore, creator qfund.Address, deposit uint64) (qfund.Address, error) {
	if deposit == 0 {
		return nil, errors.Wrap(errors.ErrInput, "deposit amount must be greater than zero")
	}
	id := EscrowCondition(creator).Address()
	escrow := &Escrow{
		Metadata:      &qfund.Metadata{Schema: 1},
		Creator:       creator,
		DepositAmount: deposit,
	}
	if err := c.escrows.Create(db, id, escrow); err != nil {
		return nil, createErr(err, "escrow")
	}
	return id, nil
}

// CreatePool creates an empty pool. Each creator can own a single pool.
func (c *Controller) CreatePool(db qfund.KVStore, creator qfund.Address) (qfund.Address, error) {
	id := PoolCondition(creator).Address()
	pool := &Pool{
		Metadata: &qfund.Metadata{Schema: 1},
		Creator:  creator,
	}
	if err := c.pools.Create(db, id, pool); err != nil {
		return nil, createErr(err, "pool")
	}
	return id, nil
}

// CreateProject registers a project of given owner for given pool. The
// project is not bound to any pool until BindProjectToPool is called.
func (c *Controller) CreateProject(db qfund.KVStore, conf *Configuration, owner, poolID qfund.Address, name string) (qfund.Address, error) {
	if name == "" {
		return nil, errors.Wrap(errors.ErrEmpty, "project name")
	}
	if uint64(len(name)) > uint64(conf.MaxNameLength) {
		return nil, errors.Wrapf(errors.ErrInput, "project name longer than %d bytes", conf.MaxNameLength)
	}
	if err := c.pools.Has(db, poolID); err != nil {
		return nil, errors.Wrap(err, "pool")
	}
	id := ProjectCondition(poolID, owner).Address()
	project := &Project{
		Metadata: &qfund.Metadata{Schema: 1},
		Owner:    owner,
		Name:     name,
	}
	if err := c.projects.Create(db, id, project); err != nil {
		return nil, createErr(err, "project")
	}
	return id, nil
}

func createErr(err error, kind string) error {
	if errors.ErrDuplicate.Is(err) {
		return errors.Wrap(ErrAlreadyInitialized, kind)
	}
	return errors.Wrapf(err, "create %s", kind)
}

// BindProjectToPool makes the project a member of the pool and its owner a
// payee of the escrow. A project can be bound to a single pool only.
// Binding a project again to the same pool is a no-op.
func (c *Controller) BindProjectToPool(db qfund.KVStore, conf *Configuration, escrowID, poolID, projectID qfund.Address) error {
	escrow, err := c.escrows.GetEscrow(db, escrowID)
	if err != nil {
		return err
	}
	pool, err := c.pools.GetPool(db, poolID)
	if err != nil {
		return err
	}
	project, err := c.projects.GetProject(db, projectID)
	if err != nil {
		return err
	}

	if project.AssociatedPool != nil {
		if project.AssociatedPool.Equals(poolID) {
			return nil
		}
		return errors.Wrapf(ErrAlreadyBound, "bound to pool %s", project.AssociatedPool)
	}
	// Distribution resolves a payee through this address only.
	if !ProjectCondition(poolID, project.Owner).Address().Equals(projectID) {
		return errors.Wrapf(errors.ErrInput, "project %s is not registered for pool %s", projectID, poolID)
	}

	owner := project.Owner
	addMember := !pool.HasMember(owner)
	addPayee := !containsAddress(escrow.PayeeAddresses, owner)
	if addMember && pool.TotalProjects == math.MaxUint32 {
		return errors.Wrap(errors.ErrOverflow, "pool total projects")
	}
	if addPayee && escrow.TotalProjects >= conf.MaxPayees {
		return errors.Wrapf(errors.ErrOverflow, "escrow cannot have more than %d payees", conf.MaxPayees)
	}

	if addMember {
		pool.Members = append(pool.Members, owner)
		pool.TotalProjects++
	}
	if addPayee {
		escrow.PayeeAddresses = append(escrow.PayeeAddresses, owner)
		escrow.TotalProjects++
	}
	project.InPool = true
	project.AssociatedPool = poolID

	if err := c.pools.Put(db, poolID, pool); err != nil {
		return errors.Wrap(err, "store pool")
	}
	if err := c.escrows.Put(db, escrowID, escrow); err != nil {
		return errors.Wrap(err, "store escrow")
	}
	if err := c.projects.Put(db, projectID, project); err != nil {
		return errors.Wrap(err, "store project")
	}
	return nil
}

// CastVote records a vote of given weight for a project of the pool.
//
// The project is credited only if its owner is a member of the pool. The
// pool vote counter is incremented for every vote, credited or not. A
// receipt of the vote is stored and returned together with its key.
func (c *Controller) CastVote(db qfund.KVStore, voter, poolID, projectID qfund.Address, weight uint64) ([]byte, *Vote, error) {
	if weight == 0 {
		return nil, nil, errors.Wrap(errors.ErrInput, "vote weight must be greater than zero")
	}
	pool, err := c.pools.GetPool(db, poolID)
	if err != nil {
		return nil, nil, err
	}
	project, err := c.projects.GetProject(db, projectID)
	if err != nil {
		return nil, nil, err
	}

	members := make(map[string]struct{}, len(pool.Members))
	for _, m := range pool.Members {
		members[string(m)] = struct{}{}
	}
	_, credited := members[string(project.Owner)]

	if credited {
		if project.VotesCount == math.MaxUint64 {
			return nil, nil, errors.Wrap(errors.ErrOverflow, "project votes count")
		}
		if project.VoterAmount > math.MaxUint64-weight {
			return nil, nil, errors.Wrap(errors.ErrOverflow, "project voter amount")
		}
		project.VotesCount++
		project.VoterAmount += weight
	}
	if pool.TotalVotes == math.MaxUint64 {
		return nil, nil, errors.Wrap(errors.ErrOverflow, "pool total votes")
	}
	pool.TotalVotes++

	vote := &Vote{
		Metadata: &qfund.Metadata{Schema: 1},
		Voter:    voter,
		Pool:     poolID,
		Project:  projectID,
		Weight:   weight,
		Credited: credited,
	}
	if err := vote.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "vote")
	}

	if credited {
		if err := c.projects.Put(db, projectID, project); err != nil {
			return nil, nil, errors.Wrap(err, "store project")
		}
	}
	if err := c.pools.Put(db, poolID, pool); err != nil {
		return nil, nil, errors.Wrap(err, "store pool")
	}
	key, err := c.votes.Add(db, vote)
	if err != nil {
		return nil, nil, err
	}
	return key, vote, nil
}
