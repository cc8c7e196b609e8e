package pause

import "github.com/iov-one/pausegov/errors"

// Pause governance errors take 1100-1119.
var (
	ErrUnauthorizedSigner       = errors.Register(1100, "unauthorized signer")
	ErrNotOwner                 = errors.Register(1101, "caller is not the owner")
	ErrProposalNotFound         = errors.Register(1102, "proposal not found")
	ErrProposalAlreadyExecuted  = errors.Register(1103, "proposal already executed")
	ErrProposalAlreadyCancelled = errors.Register(1104, "proposal already cancelled")
	ErrAlreadyApproved          = errors.Register(1105, "already approved")
	ErrContractAlreadyPaused    = errors.Register(1106, "contract already paused")
	ErrContractNotPaused        = errors.Register(1107, "contract not paused")
	ErrProposalCooldownActive   = errors.Register(1108, "proposal cooldown active")
	ErrTimelockNotElapsed       = errors.Register(1109, "timelock not elapsed")
	ErrProposalExpired          = errors.Register(1110, "proposal expired")
	ErrQuorumNotMet             = errors.Register(1111, "quorum not met")
	ErrInvalidQuorum            = errors.Register(1112, "invalid quorum")
	ErrAlreadyAuthorized        = errors.Register(1113, "signer already authorized")
	ErrNotAuthorized            = errors.Register(1114, "signer not authorized")
	ErrContractPaused           = errors.Register(1115, "contract paused")
)
