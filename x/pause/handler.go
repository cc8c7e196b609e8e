package pause

import (
	"fmt"
	"strconv"

	"github.com/iov-one/pausegov"
	"github.com/iov-one/pausegov/errors"
	"github.com/iov-one/pausegov/gconf"
	"github.com/iov-one/pausegov/orm"
	"github.com/iov-one/pausegov/x"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	TagAction     = "action"
	TagProposalID = "proposal_id"
	TagSigner     = "signer"
)

// Values of the action tag.
const (
	ActionProposalCreated     = "proposal_created"
	ActionProposalApproved    = "proposal_approved"
	ActionProposalExecuted    = "proposal_executed"
	ActionProposalCancelled   = "proposal_cancelled"
	ActionProposalInvalidated = "proposal_invalidated"
	ActionSignerAdded         = "signer_added"
	ActionSignerRemoved       = "signer_removed"
	ActionQuorumChanged       = "quorum_changed"
	ActionConfigUpdated       = "config_updated"
	ActionPaused              = "paused"
	ActionUnpaused            = "unpaused"
)

// RegisterQuery registers governance buckets and the configuration for
// querying.
func RegisterQuery(qr pausegov.QueryRouter) {
	k := NewKeeper()
	k.proposals.Register("pause/proposals", qr)
	k.signers.Register("pause/signers", qr)
	k.cooldowns.Register("pause/cooldowns", qr)
	k.states.Register("pause/state", qr)
	qr.Register("/pause/config", gconf.NewQueryHandler(confPkg))
}

// RegisterRoutes registers handlers for governance message processing.
func RegisterRoutes(r pausegov.Registry, auth x.Authenticator, k *Keeper) {
	base := handlerBase{auth: auth, k: k}
	r.Handle(pathCreateProposalMsg, &CreateProposalHandler{base})
	r.Handle(pathApproveProposalMsg, &ApproveProposalHandler{base})
	r.Handle(pathExecuteProposalMsg, &ExecuteProposalHandler{base})
	r.Handle(pathCancelProposalMsg, &CancelProposalHandler{base})
	r.Handle(pathAddSignerMsg, &AddSignerHandler{base})
	r.Handle(pathRemoveSignerMsg, &RemoveSignerHandler{base})
	r.Handle(pathUpdateQuorumMsg, &UpdateQuorumHandler{base})

	conf := &UpdateConfigHandler{base}
	r.Handle(pathUpdateTimelockMsg, conf)
	r.Handle(pathUpdateMaxPauseDurationMsg, conf)
	r.Handle(pathUpdateProposalLifetimeMsg, conf)
	r.Handle(pathUpdateProposalCooldownMsg, conf)
}

type handlerBase struct {
	auth x.Authenticator
	k    *Keeper
}

func (h handlerBase) now(ctx pausegov.Context) (pausegov.UnixTime, error) {
	t, ok := pausegov.BlockTime(ctx)
	if !ok {
		return 0, errors.Wrap(errors.ErrHuman, "block time not set")
	}
	return pausegov.AsUnixTime(t), nil
}

func (h handlerBase) caller(ctx pausegov.Context) pausegov.Address {
	return x.MainSigner(ctx, h.auth).Address()
}

// requireSigner returns the caller address if the caller is an authorized
// signer.
func (h handlerBase) requireSigner(ctx pausegov.Context, db pausegov.ReadOnlyKVStore) (pausegov.Address, error) {
	caller := h.caller(ctx)
	if len(caller) == 0 {
		return nil, errors.Wrap(ErrUnauthorizedSigner, "no caller")
	}
	ok, err := h.k.IsAuthorizedSigner(db, caller)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrapf(ErrUnauthorizedSigner, "%s", caller)
	}
	return caller, nil
}

// requireOwner returns the current configuration if the caller is its
// owner.
func (h handlerBase) requireOwner(ctx pausegov.Context, db pausegov.ReadOnlyKVStore) (*Configuration, error) {
	conf, err := h.k.Config(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Owner) {
		return nil, errors.Wrapf(ErrNotOwner, "owner is %s", conf.Owner)
	}
	return conf, nil
}

// CreateProposalHandler creates pause and unpause proposals.
type CreateProposalHandler struct {
	handlerBase
}

var _ pausegov.Handler = (*CreateProposalHandler)(nil)

func (h CreateProposalHandler) Check(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*pausegov.CheckResult, error) {
	if _, _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &pausegov.CheckResult{}, nil
}

func (h CreateProposalHandler) Deliver(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*pausegov.DeliverResult, error) {
	msg, signer, conf, now, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	proposal := Proposal{
		Type:           msg.Type,
		Proposer:       signer,
		CreatedAt:      now,
		QuorumSnapshot: conf.QuorumThreshold,
		Status:         ProposalStatus_Active,
	}
	id, err := h.k.proposals.Put(db, nil, &proposal)
	if err != nil {
		return nil, errors.Wrap(err, "cannot store proposal")
	}
	if _, err := h.k.cooldowns.Put(db, signer, &Cooldown{LastProposalAt: now}); err != nil {
		return nil, errors.Wrap(err, "cannot store cooldown")
	}

	return &pausegov.DeliverResult{
		Data: id,
		Log:  fmt.Sprintf("%s proposal %s created", msg.Type, formatID(id)),
		Tags: []common.KVPair{
			tag(TagAction, ActionProposalCreated),
			tag(TagProposalID, formatID(id)),
			tag(TagSigner, signer.String()),
		},
	}, nil
}

func (h CreateProposalHandler) validate(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*CreateProposalMsg, pausegov.Address, *Configuration, pausegov.UnixTime, error) {
	var msg CreateProposalMsg
	if err := pausegov.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, 0, errors.Wrap(err, "load msg")
	}
	now, err := h.now(ctx)
	if err != nil {
		return nil, nil, nil, 0, err
	}
	signer, err := h.requireSigner(ctx, db)
	if err != nil {
		return nil, nil, nil, 0, err
	}
	conf, err := h.k.Config(db)
	if err != nil {
		return nil, nil, nil, 0, err
	}

	cooldown, err := h.k.cooldown(db, signer)
	if err != nil {
		return nil, nil, nil, 0, errors.Wrap(err, "cannot load cooldown")
	}
	if cooldown != nil && cooldown.Active(now, conf.ProposalCooldown) {
		return nil, nil, nil, 0, errors.Wrapf(ErrProposalCooldownActive,
			"next proposal allowed at %s", cooldown.LastProposalAt.Add(conf.ProposalCooldown))
	}

	state, err := h.k.PauseState(db)
	if err != nil {
		return nil, nil, nil, 0, err
	}
	if err := checkPauseTransition(msg.Type, state); err != nil {
		return nil, nil, nil, 0, err
	}
	return &msg, signer, conf, now, nil
}

// checkPauseTransition returns an error if a proposal of given type cannot
// change the pause state.
func checkPauseTransition(t ProposalType, state *PauseState) error {
	switch t {
	case ProposalType_Pause:
		if state.Paused {
			return errors.Wrapf(ErrContractAlreadyPaused, "paused at %s", state.PausedAt)
		}
	case ProposalType_Unpause:
		if !state.Paused {
			return ErrContractNotPaused
		}
	default:
		return errors.Wrapf(errors.ErrInput, "unknown proposal type %d", int32(t))
	}
	return nil
}

// ApproveProposalHandler adds approvals to active proposals.
type ApproveProposalHandler struct {
	handlerBase
}

var _ pausegov.Handler = (*ApproveProposalHandler)(nil)

func (h ApproveProposalHandler) Check(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*pausegov.CheckResult, error) {
	if _, _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &pausegov.CheckResult{}, nil
}

func (h ApproveProposalHandler) Deliver(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*pausegov.DeliverResult, error) {
	msg, proposal, signer, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	proposal.Approvers = append(proposal.Approvers, signer)
	proposal.QuorumSnapshot = conf.QuorumThreshold
	if _, err := h.k.proposals.Put(db, msg.ProposalID, proposal); err != nil {
		return nil, errors.Wrap(err, "cannot store proposal")
	}

	return &pausegov.DeliverResult{
		Log: fmt.Sprintf("%d of %d approvals", len(proposal.Approvers), conf.QuorumThreshold),
		Tags: []common.KVPair{
			tag(TagAction, ActionProposalApproved),
			tag(TagProposalID, formatID(msg.ProposalID)),
			tag(TagSigner, signer.String()),
		},
	}, nil
}

func (h ApproveProposalHandler) validate(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*ApproveProposalMsg, *Proposal, pausegov.Address, *Configuration, error) {
	var msg ApproveProposalMsg
	if err := pausegov.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "load msg")
	}
	now, err := h.now(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	proposal, err := h.k.Proposal(db, msg.ProposalID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if err := checkActive(proposal); err != nil {
		return nil, nil, nil, nil, err
	}
	signer, err := h.requireSigner(ctx, db)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if proposal.HasApproved(signer) {
		return nil, nil, nil, nil, errors.Wrapf(ErrAlreadyApproved, "%s", signer)
	}
	conf, err := h.k.Config(db)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if proposal.Expired(now, conf.ProposalLifetime) {
		return nil, nil, nil, nil, errors.Wrapf(ErrProposalExpired,
			"expired at %s", proposal.CreatedAt.Add(conf.ProposalLifetime))
	}
	return &msg, proposal, signer, conf, nil
}

// ExecuteProposalHandler executes proposals and flips the pause state.
type ExecuteProposalHandler struct {
	handlerBase
}

var _ pausegov.Handler = (*ExecuteProposalHandler)(nil)

func (h ExecuteProposalHandler) Check(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*pausegov.CheckResult, error) {
	if _, _, _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &pausegov.CheckResult{}, nil
}

func (h ExecuteProposalHandler) Deliver(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*pausegov.DeliverResult, error) {
	msg, proposal, state, signer, now, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	proposal.Status = ProposalStatus_Executed
	proposal.ExecutedAt = now
	if _, err := h.k.proposals.Put(db, msg.ProposalID, proposal); err != nil {
		return nil, errors.Wrap(err, "cannot store proposal")
	}

	action := ActionPaused
	if proposal.Type == ProposalType_Pause {
		state.Paused = true
		state.PausedAt = now
	} else {
		action = ActionUnpaused
		state.Paused = false
		state.PausedAt = 0
	}
	state.LastProposalID = msg.ProposalID
	if err := h.k.savePauseState(db, state); err != nil {
		return nil, errors.Wrap(err, "cannot store pause state")
	}

	return &pausegov.DeliverResult{
		Log: action,
		Tags: []common.KVPair{
			tag(TagAction, ActionProposalExecuted),
			tag(TagProposalID, formatID(msg.ProposalID)),
			tag(TagSigner, signer.String()),
			tag(TagAction, action),
		},
	}, nil
}

func (h ExecuteProposalHandler) validate(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*ExecuteProposalMsg, *Proposal, *PauseState, pausegov.Address, pausegov.UnixTime, error) {
	var msg ExecuteProposalMsg
	if err := pausegov.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, nil, 0, errors.Wrap(err, "load msg")
	}
	now, err := h.now(ctx)
	if err != nil {
		return nil, nil, nil, nil, 0, err
	}
	proposal, err := h.k.Proposal(db, msg.ProposalID)
	if err != nil {
		return nil, nil, nil, nil, 0, err
	}
	if err := checkActive(proposal); err != nil {
		return nil, nil, nil, nil, 0, err
	}
	signer, err := h.requireSigner(ctx, db)
	if err != nil {
		return nil, nil, nil, nil, 0, err
	}
	conf, err := h.k.Config(db)
	if err != nil {
		return nil, nil, nil, nil, 0, err
	}
	if err := checkExecutable(proposal, conf, now); err != nil {
		return nil, nil, nil, nil, 0, err
	}
	state, err := h.k.PauseState(db)
	if err != nil {
		return nil, nil, nil, nil, 0, err
	}
	if err := checkPauseTransition(proposal.Type, state); err != nil {
		return nil, nil, nil, nil, 0, err
	}
	return &msg, proposal, state, signer, now, nil
}

// CancelProposalHandler allows the owner to cancel active proposals.
type CancelProposalHandler struct {
	handlerBase
}

var _ pausegov.Handler = (*CancelProposalHandler)(nil)

func (h CancelProposalHandler) Check(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*pausegov.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &pausegov.CheckResult{}, nil
}

func (h CancelProposalHandler) Deliver(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*pausegov.DeliverResult, error) {
	msg, proposal, now, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	proposal.Status = ProposalStatus_Cancelled
	proposal.CancelReason = CancelReason_Manual
	proposal.CancelNote = msg.Reason
	proposal.CancelledAt = now
	if _, err := h.k.proposals.Put(db, msg.ProposalID, proposal); err != nil {
		return nil, errors.Wrap(err, "cannot store proposal")
	}

	return &pausegov.DeliverResult{
		Log: msg.Reason,
		Tags: []common.KVPair{
			tag(TagAction, ActionProposalCancelled),
			tag(TagProposalID, formatID(msg.ProposalID)),
		},
	}, nil
}

func (h CancelProposalHandler) validate(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*CancelProposalMsg, *Proposal, pausegov.UnixTime, error) {
	var msg CancelProposalMsg
	if err := pausegov.LoadMsg(tx, &msg); err != nil {
		return nil, nil, 0, errors.Wrap(err, "load msg")
	}
	now, err := h.now(ctx)
	if err != nil {
		return nil, nil, 0, err
	}
	if _, err := h.requireOwner(ctx, db); err != nil {
		return nil, nil, 0, err
	}
	proposal, err := h.k.Proposal(db, msg.ProposalID)
	if err != nil {
		return nil, nil, 0, err
	}
	if err := checkActive(proposal); err != nil {
		return nil, nil, 0, err
	}
	return &msg, proposal, now, nil
}

// AddSignerHandler allows the owner to authorize new signers.
type AddSignerHandler struct {
	handlerBase
}

var _ pausegov.Handler = (*AddSignerHandler)(nil)

func (h AddSignerHandler) Check(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*pausegov.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &pausegov.CheckResult{}, nil
}

func (h AddSignerHandler) Deliver(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*pausegov.DeliverResult, error) {
	msg, now, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	signer := Signer{Address: msg.Signer, AddedAt: now}
	if _, err := h.k.signers.Put(db, msg.Signer, &signer); err != nil {
		return nil, errors.Wrap(err, "cannot store signer")
	}
	return &pausegov.DeliverResult{
		Tags: []common.KVPair{
			tag(TagAction, ActionSignerAdded),
			tag(TagSigner, msg.Signer.String()),
		},
	}, nil
}

func (h AddSignerHandler) validate(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*AddSignerMsg, pausegov.UnixTime, error) {
	var msg AddSignerMsg
	if err := pausegov.LoadMsg(tx, &msg); err != nil {
		return nil, 0, errors.Wrap(err, "load msg")
	}
	now, err := h.now(ctx)
	if err != nil {
		return nil, 0, err
	}
	if _, err := h.requireOwner(ctx, db); err != nil {
		return nil, 0, err
	}
	ok, err := h.k.IsAuthorizedSigner(db, msg.Signer)
	if err != nil {
		return nil, 0, err
	}
	if ok {
		return nil, 0, errors.Wrapf(ErrAlreadyAuthorized, "%s", msg.Signer)
	}
	return &msg, now, nil
}

// RemoveSignerHandler allows the owner to revoke signers. Approvals of the
// removed signer are stripped from every active proposal.
type RemoveSignerHandler struct {
	handlerBase
}

var _ pausegov.Handler = (*RemoveSignerHandler)(nil)

func (h RemoveSignerHandler) Check(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*pausegov.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &pausegov.CheckResult{}, nil
}

func (h RemoveSignerHandler) Deliver(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*pausegov.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.k.signers.Delete(db, msg.Signer); err != nil {
		return nil, errors.Wrap(err, "cannot delete signer")
	}
	changed, err := h.k.stripApprovals(db, msg.Signer)
	if err != nil {
		return nil, err
	}

	tags := []common.KVPair{
		tag(TagAction, ActionSignerRemoved),
		tag(TagSigner, msg.Signer.String()),
	}
	for _, id := range changed {
		tags = append(tags, tag(TagProposalID, formatID(id)))
	}
	return &pausegov.DeliverResult{
		Log:  fmt.Sprintf("approvals removed from %d proposals", len(changed)),
		Tags: tags,
	}, nil
}

func (h RemoveSignerHandler) validate(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*RemoveSignerMsg, error) {
	var msg RemoveSignerMsg
	if err := pausegov.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := h.requireOwner(ctx, db)
	if err != nil {
		return nil, err
	}
	ok, err := h.k.IsAuthorizedSigner(db, msg.Signer)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrapf(ErrNotAuthorized, "%s", msg.Signer)
	}
	n, err := h.k.signerCount(db)
	if err != nil {
		return nil, err
	}
	if int32(n-1) < conf.QuorumThreshold {
		return nil, errors.Wrapf(ErrInvalidQuorum,
			"%d signers left for quorum of %d", n-1, conf.QuorumThreshold)
	}
	return &msg, nil
}

// UpdateQuorumHandler allows the owner to change the quorum threshold.
// Every active proposal is cancelled.
type UpdateQuorumHandler struct {
	handlerBase
}

var _ pausegov.Handler = (*UpdateQuorumHandler)(nil)

func (h UpdateQuorumHandler) Check(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*pausegov.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &pausegov.CheckResult{}, nil
}

func (h UpdateQuorumHandler) Deliver(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*pausegov.DeliverResult, error) {
	msg, conf, now, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf.QuorumThreshold = msg.QuorumThreshold
	if err := gconf.Save(db, confPkg, conf); err != nil {
		return nil, errors.Wrap(err, "cannot store configuration")
	}
	invalidated, err := h.k.invalidateActive(db, now)
	if err != nil {
		return nil, err
	}

	tags := []common.KVPair{
		tag(TagAction, ActionQuorumChanged),
	}
	for _, id := range invalidated {
		tags = append(tags,
			tag(TagAction, ActionProposalInvalidated),
			tag(TagProposalID, formatID(id)),
		)
	}
	return &pausegov.DeliverResult{
		Log:  fmt.Sprintf("quorum %d, %d proposals invalidated", conf.QuorumThreshold, len(invalidated)),
		Tags: tags,
	}, nil
}

func (h UpdateQuorumHandler) validate(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*UpdateQuorumMsg, *Configuration, pausegov.UnixTime, error) {
	var msg UpdateQuorumMsg
	if err := pausegov.LoadMsg(tx, &msg); err != nil {
		return nil, nil, 0, errors.Wrap(err, "load msg")
	}
	now, err := h.now(ctx)
	if err != nil {
		return nil, nil, 0, err
	}
	conf, err := h.requireOwner(ctx, db)
	if err != nil {
		return nil, nil, 0, err
	}
	if msg.QuorumThreshold == conf.QuorumThreshold {
		return nil, nil, 0, errors.Wrapf(ErrInvalidQuorum, "quorum is already %d", conf.QuorumThreshold)
	}
	n, err := h.k.signerCount(db)
	if err != nil {
		return nil, nil, 0, err
	}
	if msg.QuorumThreshold > int32(n) {
		return nil, nil, 0, errors.Wrapf(ErrInvalidQuorum,
			"quorum %d greater than %d signers", msg.QuorumThreshold, n)
	}
	return &msg, conf, now, nil
}

// UpdateConfigHandler allows the owner to change the configured durations.
// Changes apply to active proposals as well.
type UpdateConfigHandler struct {
	handlerBase
}

var _ pausegov.Handler = (*UpdateConfigHandler)(nil)

func (h UpdateConfigHandler) Check(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*pausegov.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &pausegov.CheckResult{}, nil
}

func (h UpdateConfigHandler) Deliver(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*pausegov.DeliverResult, error) {
	conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := gconf.Save(db, confPkg, conf); err != nil {
		return nil, errors.Wrap(err, "cannot store configuration")
	}
	return &pausegov.DeliverResult{
		Log: conf.String(),
		Tags: []common.KVPair{
			tag(TagAction, ActionConfigUpdated),
		},
	}, nil
}

// validate returns the configuration with the requested change applied.
func (h UpdateConfigHandler) validate(ctx pausegov.Context, db pausegov.KVStore, tx pausegov.Tx) (*Configuration, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if msg == nil {
		return nil, errors.Wrap(errors.ErrMsg, "no message")
	}
	if err := msg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid message")
	}
	conf, err := h.requireOwner(ctx, db)
	if err != nil {
		return nil, err
	}

	switch m := msg.(type) {
	case *UpdateTimelockMsg:
		conf.TimelockDuration = m.Duration
	case *UpdateMaxPauseDurationMsg:
		conf.MaxPauseDuration = m.Duration
	case *UpdateProposalLifetimeMsg:
		conf.ProposalLifetime = m.Duration
	case *UpdateProposalCooldownMsg:
		conf.ProposalCooldown = m.Duration
	default:
		return nil, errors.Wrapf(errors.ErrType, "unsupported message %T", msg)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func tag(key, value string) common.KVPair {
	return common.KVPair{Key: []byte(key), Value: []byte(value)}
}

// formatID returns the decimal form of a sequence ID.
func formatID(id []byte) string {
	n, err := orm.DecodeSequence(id)
	if err != nil {
		return fmt.Sprintf("%X", id)
	}
	return strconv.FormatInt(n, 10)
}
