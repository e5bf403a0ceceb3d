package matching

import (
	"github.com/iov-one/qfund"
	"github.com/iov-one/qfund/errors"
	"github.com/iov-one/qfund/orm"
)

const (
	escrowBucketName  = "escrows"
	poolBucketName    = "pools"
	projectBucketName = "projects"
	voteBucketName    = "votes"
)

// EscrowCondition returns the condition of the escrow owned by given creator.
func EscrowCondition(creator qfund.Address) qfund.Condition {
	return qfund.NewCondition("matching", "escrow", creator)
}

// PoolCondition returns the condition of the pool owned by given creator.
func PoolCondition(creator qfund.Address) qfund.Condition {
	return qfund.NewCondition("matching", "pool", creator)
}

// ProjectCondition returns the condition of the project registered by owner
// for given pool.
func ProjectCondition(pool, owner qfund.Address) qfund.Condition {
	data := make([]byte, 0, len(pool)+len(owner))
	data = append(data, pool...)
	data = append(data, owner...)
	return qfund.NewCondition("matching", "project", data)
}

var _ orm.Model = (*Escrow)(nil)

func (e *Escrow) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", e.Metadata.Validate())
	errs = errors.AppendField(errs, "Creator", e.Creator.Validate())
	if e.DepositAmount == 0 {
		errs = errors.AppendField(errs, "DepositAmount", errors.ErrEmpty)
	}
	for i, a := range e.PayeeAddresses {
		if err := a.Validate(); err != nil {
			errs = errors.AppendField(errs, "PayeeAddresses", errors.Wrapf(err, "payee %d", i))
		}
	}
	if int(e.TotalProjects) != len(e.PayeeAddresses) {
		errs = errors.AppendField(errs, "TotalProjects", errors.Wrapf(errors.ErrState,
			"%d payees, counter %d", len(e.PayeeAddresses), e.TotalProjects))
	}
	return errs
}

var _ orm.Model = (*Pool)(nil)

func (p *Pool) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", p.Metadata.Validate())
	errs = errors.AppendField(errs, "Creator", p.Creator.Validate())
	for i, a := range p.Members {
		if err := a.Validate(); err != nil {
			errs = errors.AppendField(errs, "Members", errors.Wrapf(err, "member %d", i))
		}
	}
	if int(p.TotalProjects) != len(p.Members) {
		errs = errors.AppendField(errs, "TotalProjects", errors.Wrapf(errors.ErrState,
			"%d members, counter %d", len(p.Members), p.TotalProjects))
	}
	return errs
}

// HasMember returns true if given address is a member of this pool.
func (p *Pool) HasMember(a qfund.Address) bool {
	return containsAddress(p.Members, a)
}

var _ orm.Model = (*Project)(nil)

func (p *Project) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", p.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", p.Owner.Validate())
	if p.Name == "" {
		errs = errors.AppendField(errs, "Name", errors.ErrEmpty)
	}
	if p.InPool != (p.AssociatedPool != nil) {
		errs = errors.AppendField(errs, "InPool", errors.Wrap(errors.ErrState, "must match associated pool"))
	}
	if p.AssociatedPool != nil {
		errs = errors.AppendField(errs, "AssociatedPool", p.AssociatedPool.Validate())
	}
	if p.VotesCount == 0 && p.VoterAmount != 0 {
		errs = errors.AppendField(errs, "VoterAmount", errors.Wrap(errors.ErrState, "amount without votes"))
	}
	return errs
}

var _ orm.Model = (*Vote)(nil)

func (v *Vote) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", v.Metadata.Validate())
	errs = errors.AppendField(errs, "Voter", v.Voter.Validate())
	errs = errors.AppendField(errs, "Pool", v.Pool.Validate())
	errs = errors.AppendField(errs, "Project", v.Project.Validate())
	if v.Weight == 0 {
		errs = errors.AppendField(errs, "Weight", errors.ErrEmpty)
	}
	return errs
}

func containsAddress(list []qfund.Address, a qfund.Address) bool {
	for _, x := range list {
		if x.Equals(a) {
			return true
		}
	}
	return false
}

// EscrowBucket stores escrows under their condition address.
type EscrowBucket struct {
	orm.ModelBucket
}

func NewEscrowBucket() EscrowBucket {
	return EscrowBucket{orm.NewModelBucket(escrowBucketName, &Escrow{})}
}

// GetEscrow returns the escrow stored under given id or ErrNotFound.
func (b EscrowBucket) GetEscrow(db qfund.ReadOnlyKVStore, id qfund.Address) (*Escrow, error) {
	var e Escrow
	if err := b.One(db, id, &e); err != nil {
		return nil, errors.Wrap(err, "escrow")
	}
	return &e, nil
}

// PoolBucket stores pools under their condition address.
type PoolBucket struct {
	orm.ModelBucket
}

func NewPoolBucket() PoolBucket {
	return PoolBucket{orm.NewModelBucket(poolBucketName, &Pool{})}
}

// GetPool returns the pool stored under given id or ErrNotFound.
func (b PoolBucket) GetPool(db qfund.ReadOnlyKVStore, id qfund.Address) (*Pool, error) {
	var p Pool
	if err := b.One(db, id, &p); err != nil {
		return nil, errors.Wrap(err, "pool")
	}
	return &p, nil
}

// ProjectBucket stores projects under their condition address.
type ProjectBucket struct {
	orm.ModelBucket
}

func NewProjectBucket() ProjectBucket {
	return ProjectBucket{orm.NewModelBucket(projectBucketName, &Project{})}
}

// GetProject returns the project stored under given id or ErrNotFound.
func (b ProjectBucket) GetProject(db qfund.ReadOnlyKVStore, id qfund.Address) (*Project, error) {
	var p Project
	if err := b.One(db, id, &p); err != nil {
		return nil, errors.Wrap(err, "project")
	}
	return &p, nil
}

// VoteBucket stores vote receipts. Each key is the pool address followed by
// a sequence value, so that receipts of a pool can be listed in order.
type VoteBucket struct {
	orm.ModelBucket
	seq orm.Sequence
}

func NewVoteBucket() VoteBucket {
	return VoteBucket{
		ModelBucket: orm.NewModelBucket(voteBucketName, &Vote{}),
		seq:         orm.NewSequence(voteBucketName, "id"),
	}
}

// Add stores a new receipt and returns its key.
func (b VoteBucket) Add(db qfund.KVStore, v *Vote) ([]byte, error) {
	id, err := b.seq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "vote sequence")
	}
	key := append(v.Pool.Clone(), id...)
	if err := b.Create(db, key, v); err != nil {
		return nil, errors.Wrap(err, "store vote")
	}
	return key, nil
}

// ByPool returns all receipts of given pool, in the order of casting.
func (b VoteBucket) ByPool(db qfund.ReadOnlyKVStore, pool qfund.Address) ([]*Vote, error) {
	it, err := b.PrefixScan(db, pool, false)
	if err != nil {
		return nil, errors.Wrap(err, "scan")
	}
	defer it.Release()

	var votes []*Vote
	for {
		var v Vote
		switch _, err := it.Next(&v); {
		case err == nil:
			votes = append(votes, &v)
		case errors.ErrIteratorDone.Is(err):
			return votes, nil
		default:
			return nil, errors.Wrap(err, "next")
		}
	}
}
