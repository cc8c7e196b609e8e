package pause

import (
	"github.com/iov-one/pausegov"
	"github.com/iov-one/pausegov/errors"
	"github.com/iov-one/pausegov/gconf"
	"github.com/iov-one/pausegov/orm"
)

// confPkg is the gconf package name of the Configuration.
const confPkg = "pause"

// Keeper gives access to the governance state. All methods read the store
// at call time, so results always reflect the latest committed writes.
type Keeper struct {
	proposals orm.ModelBucket
	signers   orm.ModelBucket
	states    orm.ModelBucket
	cooldowns orm.ModelBucket
}

// NewKeeper returns a keeper using the default buckets.
func NewKeeper() *Keeper {
	return &Keeper{
		proposals: newProposalBucket(),
		signers:   newSignerBucket(),
		states:    newStateBucket(),
		cooldowns: newCooldownBucket(),
	}
}

// Config returns the current configuration.
func (k *Keeper) Config(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, confPkg, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

// IsAuthorizedSigner returns true if given address is in the registry.
func (k *Keeper) IsAuthorizedSigner(db pausegov.ReadOnlyKVStore, a pausegov.Address) (bool, error) {
	if len(a) == 0 {
		return false, nil
	}
	switch err := k.signers.Has(db, a); {
	case err == nil:
		return true, nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, err
	}
}

// Signers returns all authorized signers in address order.
func (k *Keeper) Signers(db pausegov.ReadOnlyKVStore) ([]*Signer, error) {
	var res []*Signer
	err := k.signers.Visit(db, func(key []byte, m orm.Model) error {
		res = append(res, m.(*Signer))
		return nil
	})
	return res, err
}

func (k *Keeper) signerCount(db pausegov.ReadOnlyKVStore) (int, error) {
	var n int
	err := k.signers.Visit(db, func([]byte, orm.Model) error {
		n++
		return nil
	})
	return n, err
}

// Proposal returns the proposal stored under given ID.
func (k *Keeper) Proposal(db pausegov.ReadOnlyKVStore, id []byte) (*Proposal, error) {
	var p Proposal
	switch err := k.proposals.One(db, id, &p); {
	case err == nil:
		return &p, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrProposalNotFound, "id %s", formatID(id))
	default:
		return nil, err
	}
}

// ProposalInfo is the status view of a proposal.
type ProposalInfo struct {
	ID            int64              `json:"id"`
	Type          ProposalType       `json:"type"`
	Proposer      pausegov.Address   `json:"proposer"`
	CreatedAt     pausegov.UnixTime  `json:"created_at"`
	Status        ProposalStatus     `json:"status"`
	Executed      bool               `json:"executed"`
	Cancelled     bool               `json:"cancelled"`
	CancelReason  CancelReason       `json:"cancel_reason,omitempty"`
	ApprovalCount int32              `json:"approval_count"`
	Approvers     []pausegov.Address `json:"approvers"`
}

// ProposalStatus returns the status view of the proposal with given ID.
func (k *Keeper) ProposalStatus(db pausegov.ReadOnlyKVStore, id []byte) (*ProposalInfo, error) {
	p, err := k.Proposal(db, id)
	if err != nil {
		return nil, err
	}
	n, err := orm.DecodeSequence(id)
	if err != nil {
		return nil, err
	}
	return &ProposalInfo{
		ID:            n,
		Type:          p.Type,
		Proposer:      p.Proposer,
		CreatedAt:     p.CreatedAt,
		Status:        p.Status,
		Executed:      p.Status == ProposalStatus_Executed,
		Cancelled:     p.Status == ProposalStatus_Cancelled,
		CancelReason:  p.CancelReason,
		ApprovalCount: int32(len(p.Approvers)),
		Approvers:     p.Approvers,
	}, nil
}

// IsQuorumMet returns true if the proposal has at least as many approvals
// as the current quorum threshold requires.
func (k *Keeper) IsQuorumMet(db pausegov.ReadOnlyKVStore, id []byte) (bool, error) {
	p, err := k.Proposal(db, id)
	if err != nil {
		return false, err
	}
	conf, err := k.Config(db)
	if err != nil {
		return false, err
	}
	return quorumMet(p, conf), nil
}

func quorumMet(p *Proposal, conf *Configuration) bool {
	return int32(len(p.Approvers)) >= conf.QuorumThreshold
}

// CanExecuteProposal returns true if the proposal with given ID could be
// executed at now.
func (k *Keeper) CanExecuteProposal(db pausegov.ReadOnlyKVStore, id []byte, now pausegov.UnixTime) (bool, error) {
	p, err := k.Proposal(db, id)
	if err != nil {
		return false, err
	}
	conf, err := k.Config(db)
	if err != nil {
		return false, err
	}
	return checkExecutable(p, conf, now) == nil, nil
}

// checkExecutable returns the first reason why the proposal cannot be
// executed at now. Expiry is reported before quorum.
func checkExecutable(p *Proposal, conf *Configuration, now pausegov.UnixTime) error {
	if err := checkActive(p); err != nil {
		return err
	}
	if p.Expired(now, conf.ProposalLifetime) {
		return errors.Wrapf(ErrProposalExpired, "expired at %s", p.CreatedAt.Add(conf.ProposalLifetime))
	}
	if !quorumMet(p, conf) {
		return errors.Wrapf(ErrQuorumNotMet, "%d of %d approvals", len(p.Approvers), conf.QuorumThreshold)
	}
	if !p.TimelockElapsed(now, conf.TimelockDuration) {
		return errors.Wrapf(ErrTimelockNotElapsed, "executable from %s", p.CreatedAt.Add(conf.TimelockDuration))
	}
	return nil
}

func checkActive(p *Proposal) error {
	switch p.Status {
	case ProposalStatus_Executed:
		return errors.Wrapf(ErrProposalAlreadyExecuted, "executed at %s", p.ExecutedAt)
	case ProposalStatus_Cancelled:
		return errors.Wrapf(ErrProposalAlreadyCancelled, "reason %s", p.CancelReason)
	}
	return nil
}

// PauseState returns the stored pause state. A zero state is returned if
// the ledger was never paused.
func (k *Keeper) PauseState(db pausegov.ReadOnlyKVStore) (*PauseState, error) {
	var s PauseState
	switch err := k.states.One(db, stateKey, &s); {
	case err == nil:
		return &s, nil
	case errors.ErrNotFound.Is(err):
		return &PauseState{}, nil
	default:
		return nil, err
	}
}

func (k *Keeper) savePauseState(db pausegov.KVStore, s *PauseState) error {
	_, err := k.states.Put(db, stateKey, s)
	return err
}

// PauseInfo is the pause state as seen at a given time.
type PauseInfo struct {
	Paused        bool                  `json:"paused"`
	PausedAt      pausegov.UnixTime     `json:"paused_at"`
	RemainingTime pausegov.UnixDuration `json:"remaining_time"`
	// Expired is true when the ledger is paused for longer than the
	// maximum pause duration, so transfers are no longer blocked.
	Expired bool `json:"expired"`
}

// PauseInfo returns the pause state at now.
func (k *Keeper) PauseInfo(db pausegov.ReadOnlyKVStore, now pausegov.UnixTime) (*PauseInfo, error) {
	s, err := k.PauseState(db)
	if err != nil {
		return nil, err
	}
	info := PauseInfo{Paused: s.Paused, PausedAt: s.PausedAt}
	if !s.Paused {
		return &info, nil
	}
	conf, err := k.Config(db)
	if err != nil {
		return nil, err
	}
	if remaining := s.PausedAt.Add(conf.MaxPauseDuration).Sub(now); remaining > 0 {
		info.RemainingTime = remaining
	}
	info.Expired = s.PauseExpired(now, conf.MaxPauseDuration)
	return &info, nil
}

// IsPaused returns true if transfers must be blocked at now.
func (k *Keeper) IsPaused(db pausegov.ReadOnlyKVStore, now pausegov.UnixTime) (bool, error) {
	info, err := k.PauseInfo(db, now)
	if err != nil {
		return false, err
	}
	return info.Paused && !info.Expired, nil
}

func (k *Keeper) cooldown(db pausegov.ReadOnlyKVStore, a pausegov.Address) (*Cooldown, error) {
	var c Cooldown
	switch err := k.cooldowns.One(db, a, &c); {
	case err == nil:
		return &c, nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, err
	}
}

// activeProposals returns all proposals that are neither executed nor
// cancelled, keyed by their ID in the ID order.
func (k *Keeper) activeProposals(db pausegov.ReadOnlyKVStore) ([][]byte, []*Proposal, error) {
	var (
		ids   [][]byte
		props []*Proposal
	)
	err := k.proposals.Visit(db, func(key []byte, m orm.Model) error {
		p := m.(*Proposal)
		if p.Status == ProposalStatus_Active {
			ids = append(ids, key)
			props = append(props, p)
		}
		return nil
	})
	return ids, props, err
}

// invalidateActive cancels every active proposal because of a quorum
// change. It returns the IDs of the cancelled proposals.
func (k *Keeper) invalidateActive(db pausegov.KVStore, now pausegov.UnixTime) ([][]byte, error) {
	ids, props, err := k.activeProposals(db)
	if err != nil {
		return nil, err
	}
	for i, p := range props {
		p.Status = ProposalStatus_Cancelled
		p.CancelReason = CancelReason_QuorumChanged
		p.CancelledAt = now
		if _, err := k.proposals.Put(db, ids[i], p); err != nil {
			return nil, errors.Wrapf(err, "invalidate proposal %s", formatID(ids[i]))
		}
	}
	return ids, nil
}

// stripApprovals removes the approvals of given signer from every active
// proposal. It returns the IDs of the modified proposals.
func (k *Keeper) stripApprovals(db pausegov.KVStore, a pausegov.Address) ([][]byte, error) {
	ids, props, err := k.activeProposals(db)
	if err != nil {
		return nil, err
	}
	var changed [][]byte
	for i, p := range props {
		if !p.RemoveApprover(a) {
			continue
		}
		if _, err := k.proposals.Put(db, ids[i], p); err != nil {
			return nil, errors.Wrapf(err, "update proposal %s", formatID(ids[i]))
		}
		changed = append(changed, ids[i])
	}
	return changed, nil
}

// LatestProposalID returns the ID of the most recently created proposal or
// zero if none was created.
func (k *Keeper) LatestProposalID(db pausegov.ReadOnlyKVStore) (int64, error) {
	seq := orm.NewSequence(bucketProposals, orm.SeqID)
	return seq.Latest(db)
}
