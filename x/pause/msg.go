package pause

import (
	"github.com/iov-one/pausegov"
	"github.com/iov-one/pausegov/errors"
)

const (
	pathCreateProposalMsg         = "pause/create_proposal"
	pathApproveProposalMsg        = "pause/approve_proposal"
	pathExecuteProposalMsg        = "pause/execute_proposal"
	pathCancelProposalMsg         = "pause/cancel_proposal"
	pathAddSignerMsg              = "pause/add_signer"
	pathRemoveSignerMsg           = "pause/remove_signer"
	pathUpdateQuorumMsg           = "pause/update_quorum"
	pathUpdateTimelockMsg         = "pause/update_timelock"
	pathUpdateMaxPauseDurationMsg = "pause/update_max_pause"
	pathUpdateProposalLifetimeMsg = "pause/update_lifetime"
	pathUpdateProposalCooldownMsg = "pause/update_cooldown"
)

var (
	_ pausegov.Msg = (*CreateProposalMsg)(nil)
	_ pausegov.Msg = (*ApproveProposalMsg)(nil)
	_ pausegov.Msg = (*ExecuteProposalMsg)(nil)
	_ pausegov.Msg = (*CancelProposalMsg)(nil)
	_ pausegov.Msg = (*AddSignerMsg)(nil)
	_ pausegov.Msg = (*RemoveSignerMsg)(nil)
	_ pausegov.Msg = (*UpdateQuorumMsg)(nil)
	_ pausegov.Msg = (*UpdateTimelockMsg)(nil)
	_ pausegov.Msg = (*UpdateMaxPauseDurationMsg)(nil)
	_ pausegov.Msg = (*UpdateProposalLifetimeMsg)(nil)
	_ pausegov.Msg = (*UpdateProposalCooldownMsg)(nil)
)

// CreateProposalMsg creates a new pause or unpause proposal. The caller
// must be an authorized signer.
type CreateProposalMsg struct {
	Type ProposalType `json:"type"`
}

func (CreateProposalMsg) Path() string { return pathCreateProposalMsg }

func (m *CreateProposalMsg) Validate() error {
	return errors.Field("Type", m.Type.Validate(), "invalid proposal type")
}

// ApproveProposalMsg adds the caller approval to a proposal.
type ApproveProposalMsg struct {
	ProposalID []byte `json:"proposal_id"`
}

func (ApproveProposalMsg) Path() string { return pathApproveProposalMsg }

func (m *ApproveProposalMsg) Validate() error {
	return errors.Field("ProposalID", validateID(m.ProposalID), "invalid proposal ID")
}

// ExecuteProposalMsg executes a proposal that gathered enough approvals.
type ExecuteProposalMsg struct {
	ProposalID []byte `json:"proposal_id"`
}

func (ExecuteProposalMsg) Path() string { return pathExecuteProposalMsg }

func (m *ExecuteProposalMsg) Validate() error {
	return errors.Field("ProposalID", validateID(m.ProposalID), "invalid proposal ID")
}

// CancelProposalMsg is used by the owner to cancel an active proposal.
type CancelProposalMsg struct {
	ProposalID []byte `json:"proposal_id"`
	Reason     string `json:"reason"`
}

func (CancelProposalMsg) Path() string { return pathCancelProposalMsg }

func (m *CancelProposalMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "ProposalID", validateID(m.ProposalID))
	switch n := len(m.Reason); {
	case n == 0:
		errs = errors.Append(errs, errors.Field("Reason", errors.ErrEmpty, "required"))
	case n > maxCancelNoteLength:
		errs = errors.Append(errs, errors.Field("Reason", errors.ErrInput, "must not be longer than %d characters", maxCancelNoteLength))
	}
	return errs
}

// AddSignerMsg is used by the owner to authorize a new signer.
type AddSignerMsg struct {
	Signer pausegov.Address `json:"signer"`
}

func (AddSignerMsg) Path() string { return pathAddSignerMsg }

func (m *AddSignerMsg) Validate() error {
	return errors.Field("Signer", validateSignerAddress(m.Signer), "invalid signer")
}

// RemoveSignerMsg is used by the owner to revoke a signer.
type RemoveSignerMsg struct {
	Signer pausegov.Address `json:"signer"`
}

func (RemoveSignerMsg) Path() string { return pathRemoveSignerMsg }

func (m *RemoveSignerMsg) Validate() error {
	return errors.Field("Signer", validateSignerAddress(m.Signer), "invalid signer")
}

// UpdateQuorumMsg is used by the owner to change the quorum threshold. All
// active proposals are cancelled.
type UpdateQuorumMsg struct {
	QuorumThreshold int32 `json:"quorum_threshold"`
}

func (UpdateQuorumMsg) Path() string { return pathUpdateQuorumMsg }

func (m *UpdateQuorumMsg) Validate() error {
	if m.QuorumThreshold < MinQuorum {
		return errors.Field("QuorumThreshold", ErrInvalidQuorum, "must be at least %d", MinQuorum)
	}
	return nil
}

// UpdateTimelockMsg is used by the owner to change the timelock duration.
type UpdateTimelockMsg struct {
	Duration pausegov.UnixDuration `json:"duration"`
}

func (UpdateTimelockMsg) Path() string { return pathUpdateTimelockMsg }

func (m *UpdateTimelockMsg) Validate() error {
	return errors.Field("Duration", validateDuration(m.Duration, MinTimelockDuration), "timelock")
}

// UpdateMaxPauseDurationMsg is used by the owner to change the maximum
// pause duration.
type UpdateMaxPauseDurationMsg struct {
	Duration pausegov.UnixDuration `json:"duration"`
}

func (UpdateMaxPauseDurationMsg) Path() string { return pathUpdateMaxPauseDurationMsg }

func (m *UpdateMaxPauseDurationMsg) Validate() error {
	return errors.Field("Duration", validateDuration(m.Duration, MinMaxPauseDuration), "max pause duration")
}

// UpdateProposalLifetimeMsg is used by the owner to change the proposal
// lifetime.
type UpdateProposalLifetimeMsg struct {
	Duration pausegov.UnixDuration `json:"duration"`
}

func (UpdateProposalLifetimeMsg) Path() string { return pathUpdateProposalLifetimeMsg }

func (m *UpdateProposalLifetimeMsg) Validate() error {
	return errors.Field("Duration", validateDuration(m.Duration, MinProposalLifetime), "proposal lifetime")
}

// UpdateProposalCooldownMsg is used by the owner to change the proposal
// cooldown.
type UpdateProposalCooldownMsg struct {
	Duration pausegov.UnixDuration `json:"duration"`
}

func (UpdateProposalCooldownMsg) Path() string { return pathUpdateProposalCooldownMsg }

func (m *UpdateProposalCooldownMsg) Validate() error {
	return errors.Field("Duration", validateDuration(m.Duration, MinProposalCooldown), "proposal cooldown")
}

func validateID(id []byte) error {
	if len(id) == 0 {
		return errors.ErrEmpty
	}
	if len(id) != 8 {
		return errors.Wrapf(errors.ErrInput, "want 8 bytes, got %d", len(id))
	}
	return nil
}
