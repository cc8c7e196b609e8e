package pause

import (
	"encoding/json"
	"fmt"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/pausegov"
	"github.com/iov-one/pausegov/errors"
	"github.com/iov-one/pausegov/orm"
)

const (
	// MinQuorum is the smallest allowed quorum threshold.
	MinQuorum = 2

	MinTimelockDuration = pausegov.UnixDuration(60 * 60)
	MinMaxPauseDuration = pausegov.UnixDuration(24 * 60 * 60)
	MinProposalLifetime = pausegov.UnixDuration(7 * 24 * 60 * 60)
	MinProposalCooldown = pausegov.UnixDuration(60 * 60)

	// MaxDuration bounds every configured duration so that adding it to a
	// block time cannot overflow.
	MaxDuration = pausegov.UnixDuration(100 * 365 * 24 * 60 * 60)

	maxCancelNoteLength = 256
)

// ProposalType is the action a proposal executes.
type ProposalType int32

const (
	ProposalType_Invalid ProposalType = 0
	ProposalType_Pause   ProposalType = 1
	ProposalType_Unpause ProposalType = 2
)

var proposalTypeNames = map[ProposalType]string{
	ProposalType_Pause:   "pause",
	ProposalType_Unpause: "unpause",
}

func (t ProposalType) String() string {
	if n, ok := proposalTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("invalid(%d)", int32(t))
}

func (t ProposalType) Validate() error {
	if _, ok := proposalTypeNames[t]; !ok {
		return errors.Wrapf(errors.ErrInput, "unknown proposal type %d", int32(t))
	}
	return nil
}

// MarshalJSON renders the type by name.
func (t ProposalType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts the type name.
func (t *ProposalType) UnmarshalJSON(raw []byte) error {
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return errors.Wrap(errors.ErrInput, "proposal type must be a string")
	}
	for v, n := range proposalTypeNames {
		if n == name {
			*t = v
			return nil
		}
	}
	return errors.Wrapf(errors.ErrInput, "unknown proposal type %q", name)
}

// ProposalStatus is the lifecycle state of a proposal. Executed and
// Cancelled are terminal.
type ProposalStatus int32

const (
	ProposalStatus_Invalid   ProposalStatus = 0
	ProposalStatus_Active    ProposalStatus = 1
	ProposalStatus_Executed  ProposalStatus = 2
	ProposalStatus_Cancelled ProposalStatus = 3
)

var proposalStatusNames = map[ProposalStatus]string{
	ProposalStatus_Active:    "active",
	ProposalStatus_Executed:  "executed",
	ProposalStatus_Cancelled: "cancelled",
}

func (s ProposalStatus) String() string {
	if n, ok := proposalStatusNames[s]; ok {
		return n
	}
	return fmt.Sprintf("invalid(%d)", int32(s))
}

// MarshalJSON renders the status by name.
func (s ProposalStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// CancelReason tells why a proposal was cancelled.
type CancelReason int32

const (
	CancelReason_None          CancelReason = 0
	CancelReason_Manual        CancelReason = 1
	CancelReason_QuorumChanged CancelReason = 2
)

var cancelReasonNames = map[CancelReason]string{
	CancelReason_None:          "",
	CancelReason_Manual:        "manual",
	CancelReason_QuorumChanged: "quorum_changed",
}

func (r CancelReason) String() string {
	if n, ok := cancelReasonNames[r]; ok {
		return n
	}
	return fmt.Sprintf("invalid(%d)", int32(r))
}

// MarshalJSON renders the reason by name.
func (r CancelReason) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// Configuration is the owner mutable governance configuration. It is stored
// as the "pause" package configuration.
type Configuration struct {
	Owner            pausegov.Address      `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner"`
	QuorumThreshold  int32                 `protobuf:"varint,2,opt,name=quorum_threshold,proto3" json:"quorum_threshold"`
	TimelockDuration pausegov.UnixDuration `protobuf:"varint,3,opt,name=timelock_duration,proto3" json:"timelock_duration"`
	MaxPauseDuration pausegov.UnixDuration `protobuf:"varint,4,opt,name=max_pause_duration,proto3" json:"max_pause_duration"`
	ProposalLifetime pausegov.UnixDuration `protobuf:"varint,5,opt,name=proposal_lifetime,proto3" json:"proposal_lifetime"`
	ProposalCooldown pausegov.UnixDuration `protobuf:"varint,6,opt,name=proposal_cooldown,proto3" json:"proposal_cooldown"`
}

func (m *Configuration) Reset()         { *m = Configuration{} }
func (m *Configuration) String() string { return proto.CompactTextString(m) }
func (*Configuration) ProtoMessage()    {}

// DefaultConfiguration returns the configuration a new ledger starts with
// when the genesis does not override a value.
func DefaultConfiguration(owner pausegov.Address) Configuration {
	return Configuration{
		Owner:            owner,
		QuorumThreshold:  3,
		TimelockDuration: pausegov.UnixDuration(48 * 60 * 60),
		MaxPauseDuration: pausegov.UnixDuration(30 * 24 * 60 * 60),
		ProposalLifetime: MinProposalLifetime,
		ProposalCooldown: MinProposalCooldown,
	}
}

func (m *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	if m.QuorumThreshold < MinQuorum {
		errs = errors.Append(errs, errors.Field("QuorumThreshold", ErrInvalidQuorum, "must be at least %d", MinQuorum))
	}
	errs = errors.AppendField(errs, "TimelockDuration", validateDuration(m.TimelockDuration, MinTimelockDuration))
	errs = errors.AppendField(errs, "MaxPauseDuration", validateDuration(m.MaxPauseDuration, MinMaxPauseDuration))
	errs = errors.AppendField(errs, "ProposalLifetime", validateDuration(m.ProposalLifetime, MinProposalLifetime))
	errs = errors.AppendField(errs, "ProposalCooldown", validateDuration(m.ProposalCooldown, MinProposalCooldown))
	if m.ProposalLifetime <= m.TimelockDuration {
		errs = errors.Append(errs, errors.Field("ProposalLifetime", errors.ErrInput, "must be longer than the timelock"))
	}
	return errs
}

func validateDuration(d, min pausegov.UnixDuration) error {
	if d < min {
		return errors.Wrapf(errors.ErrInput, "must be at least %s", min)
	}
	if d > MaxDuration {
		return errors.Wrapf(errors.ErrInput, "must not be longer than %s", MaxDuration)
	}
	return nil
}

// Signer is an authorized signer. It is stored under its address.
type Signer struct {
	Address pausegov.Address  `protobuf:"bytes,1,opt,name=address,proto3" json:"address"`
	AddedAt pausegov.UnixTime `protobuf:"varint,2,opt,name=added_at,proto3" json:"added_at"`
}

func (m *Signer) Reset()         { *m = Signer{} }
func (m *Signer) String() string { return proto.CompactTextString(m) }
func (*Signer) ProtoMessage()    {}

func (m *Signer) Validate() error {
	return errors.Field("Address", validateSignerAddress(m.Address), "invalid signer")
}

// validateSignerAddress rejects malformed and all zero addresses.
func validateSignerAddress(a pausegov.Address) error {
	if err := a.Validate(); err != nil {
		return err
	}
	for _, b := range a {
		if b != 0 {
			return nil
		}
	}
	return errors.Wrap(errors.ErrEmpty, "zero address")
}

// Proposal is a request to pause or unpause. It is stored under its
// sequence ID and never deleted.
type Proposal struct {
	Type           ProposalType       `protobuf:"varint,1,opt,name=type,proto3" json:"type"`
	Proposer       pausegov.Address   `protobuf:"bytes,2,opt,name=proposer,proto3" json:"proposer"`
	CreatedAt      pausegov.UnixTime  `protobuf:"varint,3,opt,name=created_at,proto3" json:"created_at"`
	QuorumSnapshot int32              `protobuf:"varint,4,opt,name=quorum_snapshot,proto3" json:"quorum_snapshot"`
	Approvers      []pausegov.Address `protobuf:"bytes,5,rep,name=approvers,proto3" json:"approvers"`
	Status         ProposalStatus     `protobuf:"varint,6,opt,name=status,proto3" json:"status"`
	CancelReason   CancelReason       `protobuf:"varint,7,opt,name=cancel_reason,proto3" json:"cancel_reason,omitempty"`
	CancelNote     string             `protobuf:"bytes,8,opt,name=cancel_note,proto3" json:"cancel_note,omitempty"`
	ExecutedAt     pausegov.UnixTime  `protobuf:"varint,9,opt,name=executed_at,proto3" json:"executed_at,omitempty"`
	CancelledAt    pausegov.UnixTime  `protobuf:"varint,10,opt,name=cancelled_at,proto3" json:"cancelled_at,omitempty"`
}

func (m *Proposal) Reset()         { *m = Proposal{} }
func (m *Proposal) String() string { return proto.CompactTextString(m) }
func (*Proposal) ProtoMessage()    {}

func (m *Proposal) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Type", m.Type.Validate())
	errs = errors.AppendField(errs, "Proposer", m.Proposer.Validate())
	if m.CreatedAt.IsZero() {
		errs = errors.Append(errs, errors.Field("CreatedAt", errors.ErrEmpty, "required"))
	}
	if m.QuorumSnapshot < MinQuorum {
		errs = errors.Append(errs, errors.Field("QuorumSnapshot", ErrInvalidQuorum, "must be at least %d", MinQuorum))
	}
	for i, a := range m.Approvers {
		field := fmt.Sprintf("Approvers.%d", i)
		errs = errors.AppendField(errs, field, a.Validate())
		for _, b := range m.Approvers[:i] {
			if a.Equals(b) {
				errs = errors.Append(errs, errors.Field(field, errors.ErrDuplicate, "approved twice"))
			}
		}
	}

	switch m.Status {
	case ProposalStatus_Active:
		if m.CancelReason != CancelReason_None || !m.ExecutedAt.IsZero() || !m.CancelledAt.IsZero() {
			errs = errors.Append(errs, errors.Field("Status", errors.ErrState, "active proposal with a terminal mark"))
		}
	case ProposalStatus_Executed:
		if m.ExecutedAt.IsZero() {
			errs = errors.Append(errs, errors.Field("ExecutedAt", errors.ErrEmpty, "required"))
		}
		if m.CancelReason != CancelReason_None || !m.CancelledAt.IsZero() {
			errs = errors.Append(errs, errors.Field("Status", errors.ErrState, "executed proposal cannot be cancelled"))
		}
	case ProposalStatus_Cancelled:
		if m.CancelReason != CancelReason_Manual && m.CancelReason != CancelReason_QuorumChanged {
			errs = errors.Append(errs, errors.Field("CancelReason", errors.ErrInput, "unknown reason %d", int32(m.CancelReason)))
		}
		if m.CancelledAt.IsZero() {
			errs = errors.Append(errs, errors.Field("CancelledAt", errors.ErrEmpty, "required"))
		}
		if !m.ExecutedAt.IsZero() {
			errs = errors.Append(errs, errors.Field("Status", errors.ErrState, "cancelled proposal cannot be executed"))
		}
	default:
		errs = errors.Append(errs, errors.Field("Status", errors.ErrInput, "unknown status %d", int32(m.Status)))
	}
	if len(m.CancelNote) > maxCancelNoteLength {
		errs = errors.Append(errs, errors.Field("CancelNote", errors.ErrInput, "too long"))
	}
	return errs
}

// HasApproved returns true if given address approved this proposal.
func (m *Proposal) HasApproved(a pausegov.Address) bool {
	for _, ap := range m.Approvers {
		if ap.Equals(a) {
			return true
		}
	}
	return false
}

// RemoveApprover removes given address from the approvers. It returns
// false if the address did not approve.
func (m *Proposal) RemoveApprover(a pausegov.Address) bool {
	for i, ap := range m.Approvers {
		if ap.Equals(a) {
			m.Approvers = append(m.Approvers[:i:i], m.Approvers[i+1:]...)
			return true
		}
	}
	return false
}

// Expired returns true if the proposal lifetime has passed at now.
func (m *Proposal) Expired(now pausegov.UnixTime, lifetime pausegov.UnixDuration) bool {
	return now > m.CreatedAt.Add(lifetime)
}

// TimelockElapsed returns true if the proposal can be executed as far as
// the timelock is concerned.
func (m *Proposal) TimelockElapsed(now pausegov.UnixTime, timelock pausegov.UnixDuration) bool {
	return now >= m.CreatedAt.Add(timelock)
}

// PauseState is the ledger visible pause flag. It is a singleton.
type PauseState struct {
	Paused   bool              `protobuf:"varint,1,opt,name=paused,proto3" json:"paused"`
	PausedAt pausegov.UnixTime `protobuf:"varint,2,opt,name=paused_at,proto3" json:"paused_at"`
	// LastProposalID is the ID of the proposal that changed the state last.
	LastProposalID []byte `protobuf:"bytes,3,opt,name=last_proposal_id,proto3" json:"last_proposal_id,omitempty"`
}

func (m *PauseState) Reset()         { *m = PauseState{} }
func (m *PauseState) String() string { return proto.CompactTextString(m) }
func (*PauseState) ProtoMessage()    {}

func (m *PauseState) Validate() error {
	if m.Paused && m.PausedAt.IsZero() {
		return errors.Field("PausedAt", errors.ErrEmpty, "required when paused")
	}
	if !m.Paused && !m.PausedAt.IsZero() {
		return errors.Field("PausedAt", errors.ErrState, "must be cleared when not paused")
	}
	return nil
}

// PauseExpired returns true if the ledger is paused for longer than
// maxPause at now.
func (m *PauseState) PauseExpired(now pausegov.UnixTime, maxPause pausegov.UnixDuration) bool {
	return m.Paused && now >= m.PausedAt.Add(maxPause)
}

// Cooldown tracks when a signer created a proposal last. It is stored under
// the signer address.
type Cooldown struct {
	LastProposalAt pausegov.UnixTime `protobuf:"varint,1,opt,name=last_proposal_at,proto3" json:"last_proposal_at"`
}

func (m *Cooldown) Reset()         { *m = Cooldown{} }
func (m *Cooldown) String() string { return proto.CompactTextString(m) }
func (*Cooldown) ProtoMessage()    {}

func (m *Cooldown) Validate() error {
	if m.LastProposalAt.IsZero() {
		return errors.Field("LastProposalAt", errors.ErrEmpty, "required")
	}
	return nil
}

// Active returns true if a signer that created a proposal at
// LastProposalAt cannot create another one at now.
func (m *Cooldown) Active(now pausegov.UnixTime, cooldown pausegov.UnixDuration) bool {
	return now < m.LastProposalAt.Add(cooldown)
}

var (
	_ orm.Model = (*Configuration)(nil)
	_ orm.Model = (*Signer)(nil)
	_ orm.Model = (*Proposal)(nil)
	_ orm.Model = (*PauseState)(nil)
	_ orm.Model = (*Cooldown)(nil)
)

const (
	bucketProposals = "proposal"
	bucketSigners   = "signer"
	bucketState     = "state"
	bucketCooldowns = "cooldown"
)

// stateKey is the key of the PauseState singleton.
var stateKey = []byte("pause")

func newProposalBucket() orm.ModelBucket { return orm.NewModelBucket(bucketProposals, &Proposal{}) }
func newSignerBucket() orm.ModelBucket   { return orm.NewModelBucket(bucketSigners, &Signer{}) }
func newStateBucket() orm.ModelBucket    { return orm.NewModelBucket(bucketState, &PauseState{}) }
func newCooldownBucket() orm.ModelBucket { return orm.NewModelBucket(bucketCooldowns, &Cooldown{}) }
