package pause

import (
	"bytes"
	"context"
	"math"
	"testing"
	"time"

	"github.com/iov-one/pausegov"
	"github.com/iov-one/pausegov/errors"
	"github.com/iov-one/pausegov/orm"
	"github.com/iov-one/pausegov/pausetest"
	"github.com/iov-one/pausegov/pausetest/assert"
	"github.com/stretchr/testify/require"
)

func TestProposalIDsNeverRepeat(t *testing.T) {
	e := newEnv(t, 3, 2)
	s := e.signers

	var last int64
	for cycle := 0; cycle < 3; cycle++ {
		for _, typ := range []ProposalType{ProposalType_Pause, ProposalType_Unpause} {
			// A rejected proposal must not consume an ID.
			e.advance(testCooldown)
			_, err := e.deliver(pausetest.NewCondition(), &CreateProposalMsg{Type: typ})
			assert.IsErr(t, ErrUnauthorizedSigner, err)

			id := e.propose(s[0], typ)
			n, err := orm.DecodeSequence(id)
			require.NoError(t, err)
			require.Equal(t, last+1, n, "cycle %d", cycle)
			last = n

			e.approve(id, s[0], s[1])
			e.advance(testTimelock + time.Second)
			e.mustDeliver(s[2], &ExecuteProposalMsg{ProposalID: id})
			require.Equal(t, typ == ProposalType_Pause, e.isPaused())
		}
	}

	latest, err := e.k.LatestProposalID(e.db)
	require.NoError(t, err)
	require.Equal(t, last, latest)
}

func TestTerminalProposalsCannotChange(t *testing.T) {
	e := newEnv(t, 4, 2)
	s := e.signers

	executed := e.pauseLedger(2)

	e.advance(testCooldown)
	cancelled := e.propose(s[1], ProposalType_Unpause)
	e.approve(cancelled, s[1], s[2])
	e.mustDeliver(e.owner, &CancelProposalMsg{ProposalID: cancelled, Reason: "changed our mind"})
	e.advance(testTimelock + time.Second)

	cases := map[string]struct {
		msg     pausegov.Msg
		wantErr *errors.Error
	}{
		"approve executed": {
			msg:     &ApproveProposalMsg{ProposalID: executed},
			wantErr: ErrProposalAlreadyExecuted,
		},
		"execute executed": {
			msg:     &ExecuteProposalMsg{ProposalID: executed},
			wantErr: ErrProposalAlreadyExecuted,
		},
		"cancel executed": {
			msg:     &CancelProposalMsg{ProposalID: executed, Reason: "late"},
			wantErr: ErrProposalAlreadyExecuted,
		},
		"approve cancelled": {
			msg:     &ApproveProposalMsg{ProposalID: cancelled},
			wantErr: ErrProposalAlreadyCancelled,
		},
		"execute cancelled": {
			msg:     &ExecuteProposalMsg{ProposalID: cancelled},
			wantErr: ErrProposalAlreadyCancelled,
		},
		"cancel cancelled": {
			msg:     &CancelProposalMsg{ProposalID: cancelled, Reason: "twice"},
			wantErr: ErrProposalAlreadyCancelled,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			caller := s[3]
			if _, ok := tc.msg.(*CancelProposalMsg); ok {
				caller = e.owner
			}
			_, err := e.deliver(caller, tc.msg)
			assert.IsErr(t, tc.wantErr, err)
		})
	}

	require.Equal(t, ProposalStatus_Executed, e.proposal(executed).Status)
	p := e.proposal(cancelled)
	require.Equal(t, ProposalStatus_Cancelled, p.Status)
	require.Equal(t, CancelReason_Manual, p.CancelReason)
	require.Equal(t, "changed our mind", p.CancelNote)
	require.True(t, e.isPaused())
}

func TestCooldownIsPerSigner(t *testing.T) {
	e := newEnv(t, 3, 2)
	a, b := e.signers[0], e.signers[1]

	e.propose(a, ProposalType_Pause)
	// b is not blocked by a at the same instant.
	e.propose(b, ProposalType_Pause)

	_, err := e.deliver(a, &CreateProposalMsg{Type: ProposalType_Pause})
	assert.IsErr(t, ErrProposalCooldownActive, err)

	e.advance(testCooldown - time.Second)
	_, err = e.deliver(a, &CreateProposalMsg{Type: ProposalType_Pause})
	assert.IsErr(t, ErrProposalCooldownActive, err)

	e.advance(time.Second)
	e.propose(a, ProposalType_Pause)
}

func TestQuorumChangeInvalidatesProposals(t *testing.T) {
	cases := map[string]struct {
		approvals int
		newQuorum int32
	}{
		"raise, approvals below new quorum":    {approvals: 2, newQuorum: 4},
		"lower, approvals above new quorum":    {approvals: 3, newQuorum: 2},
		"lower, approvals equal to new quorum": {approvals: 2, newQuorum: 2},
		"raise, approvals equal to new quorum": {approvals: 4, newQuorum: 4},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			e := newEnv(t, 5, 3)
			s := e.signers

			id := e.propose(s[0], ProposalType_Pause)
			e.approve(id, s[:tc.approvals]...)
			e.mustDeliver(e.owner, &UpdateQuorumMsg{QuorumThreshold: tc.newQuorum})
			e.advance(testTimelock + time.Second)

			_, err := e.deliver(s[0], &ExecuteProposalMsg{ProposalID: id})
			assert.IsErr(t, ErrProposalAlreadyCancelled, err)

			cfg, err := e.k.Config(e.db)
			require.NoError(t, err)
			require.Equal(t, tc.newQuorum, cfg.QuorumThreshold)
		})
	}
}

func TestUpdateQuorum(t *testing.T) {
	cases := map[string]struct {
		caller  func(*env) pausegov.Condition
		quorum  int32
		wantErr *errors.Error
	}{
		"owner raises the quorum": {
			caller: func(e *env) pausegov.Condition { return e.owner },
			quorum: 4,
		},
		"quorum cannot be below two": {
			caller:  func(e *env) pausegov.Condition { return e.owner },
			quorum:  1,
			wantErr: ErrInvalidQuorum,
		},
		"quorum cannot exceed the signers": {
			caller:  func(e *env) pausegov.Condition { return e.owner },
			quorum:  5,
			wantErr: ErrInvalidQuorum,
		},
		"quorum must change": {
			caller:  func(e *env) pausegov.Condition { return e.owner },
			quorum:  3,
			wantErr: ErrInvalidQuorum,
		},
		"signer is not the owner": {
			caller:  func(e *env) pausegov.Condition { return e.signers[0] },
			quorum:  2,
			wantErr: ErrNotOwner,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			e := newEnv(t, 4, 3)
			res, err := e.deliver(tc.caller(e), &UpdateQuorumMsg{QuorumThreshold: tc.quorum})
			assert.IsErr(t, tc.wantErr, err)

			cfg, err := e.k.Config(e.db)
			require.NoError(t, err)
			if tc.wantErr == nil {
				require.Equal(t, tc.quorum, cfg.QuorumThreshold)
				require.Equal(t, []string{ActionQuorumChanged}, tagValues(res, TagAction))
			} else {
				require.Equal(t, int32(3), cfg.QuorumThreshold)
			}
		})
	}
}

func TestRemoveSignerStripsApprovals(t *testing.T) {
	e := newEnv(t, 5, 3)
	s := e.signers

	approved := e.propose(s[0], ProposalType_Pause)
	e.approve(approved, s[0], s[1], s[4])
	notApproved := e.propose(s[1], ProposalType_Pause)
	e.approve(notApproved, s[0], s[1])

	res := e.mustDeliver(e.owner, &RemoveSignerMsg{Signer: s[4].Address()})
	require.Equal(t, []string{ActionSignerRemoved}, tagValues(res, TagAction))
	require.Equal(t, []string{"1"}, tagValues(res, TagProposalID))

	info, err := e.k.ProposalStatus(e.db, approved)
	require.NoError(t, err)
	require.Equal(t, int32(2), info.ApprovalCount)
	require.Equal(t, []pausegov.Address{s[0].Address(), s[1].Address()}, info.Approvers)

	info, err = e.k.ProposalStatus(e.db, notApproved)
	require.NoError(t, err)
	require.Equal(t, int32(2), info.ApprovalCount)

	ok, err := e.k.IsAuthorizedSigner(e.db, s[4].Address())
	require.NoError(t, err)
	require.False(t, ok)

	// A removed signer cannot approve anymore.
	_, err = e.deliver(s[4], &ApproveProposalMsg{ProposalID: notApproved})
	assert.IsErr(t, ErrUnauthorizedSigner, err)

	// Nor create, nor execute.
	_, err = e.deliver(s[4], &CreateProposalMsg{Type: ProposalType_Pause})
	assert.IsErr(t, ErrUnauthorizedSigner, err)

	e.approve(approved, s[2])
	e.advance(testTimelock + time.Second)
	_, err = e.deliver(s[4], &ExecuteProposalMsg{ProposalID: approved})
	assert.IsErr(t, ErrUnauthorizedSigner, err)
	require.False(t, e.isPaused())

	// The same proposal is executable by a live signer.
	e.mustDeliver(s[2], &ExecuteProposalMsg{ProposalID: approved})
	require.True(t, e.isPaused())
}

func TestRemoveSigner(t *testing.T) {
	cases := map[string]struct {
		signers int
		quorum  int32
		remove  func(*env) pausegov.Address
		caller  func(*env) pausegov.Condition
		wantErr *errors.Error
	}{
		"remove keeps the quorum reachable": {
			signers: 4,
			quorum:  3,
			remove:  func(e *env) pausegov.Address { return e.signers[0].Address() },
			caller:  func(e *env) pausegov.Condition { return e.owner },
		},
		"remove would strand the quorum": {
			signers: 3,
			quorum:  3,
			remove:  func(e *env) pausegov.Address { return e.signers[0].Address() },
			caller:  func(e *env) pausegov.Condition { return e.owner },
			wantErr: ErrInvalidQuorum,
		},
		"unknown signer": {
			signers: 4,
			quorum:  3,
			remove:  func(e *env) pausegov.Address { return pausetest.NewCondition().Address() },
			caller:  func(e *env) pausegov.Condition { return e.owner },
			wantErr: ErrNotAuthorized,
		},
		"zero address": {
			signers: 4,
			quorum:  3,
			remove:  func(e *env) pausegov.Address { return make(pausegov.Address, pausegov.AddressLength) },
			caller:  func(e *env) pausegov.Condition { return e.owner },
			wantErr: errors.ErrEmpty,
		},
		"not the owner": {
			signers: 4,
			quorum:  3,
			remove:  func(e *env) pausegov.Address { return e.signers[0].Address() },
			caller:  func(e *env) pausegov.Condition { return e.signers[1] },
			wantErr: ErrNotOwner,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			e := newEnv(t, tc.signers, tc.quorum)
			_, err := e.deliver(tc.caller(e), &RemoveSignerMsg{Signer: tc.remove(e)})
			assert.IsErr(t, tc.wantErr, err)

			signers, err := e.k.Signers(e.db)
			require.NoError(t, err)
			want := tc.signers
			if tc.wantErr == nil {
				want--
			}
			require.Len(t, signers, want)
		})
	}
}

func TestAddSigner(t *testing.T) {
	e := newEnv(t, 2, 2)
	newcomer := pausetest.NewCondition()

	// Not a signer yet.
	_, err := e.deliver(newcomer, &CreateProposalMsg{Type: ProposalType_Pause})
	assert.IsErr(t, ErrUnauthorizedSigner, err)

	_, err = e.deliver(e.signers[0], &AddSignerMsg{Signer: newcomer.Address()})
	assert.IsErr(t, ErrNotOwner, err)

	res := e.mustDeliver(e.owner, &AddSignerMsg{Signer: newcomer.Address()})
	require.Equal(t, []string{newcomer.Address().String()}, tagValues(res, TagSigner))

	_, err = e.deliver(e.owner, &AddSignerMsg{Signer: newcomer.Address()})
	assert.IsErr(t, ErrAlreadyAuthorized, err)

	_, err = e.deliver(e.owner, &AddSignerMsg{})
	assert.IsErr(t, errors.ErrEmpty, err)

	signers, err := e.k.Signers(e.db)
	require.NoError(t, err)
	require.Len(t, signers, 3)
	e.propose(newcomer, ProposalType_Pause)

	// A quorum of three is reachable now.
	e.mustDeliver(e.owner, &UpdateQuorumMsg{QuorumThreshold: 3})
}

func TestExecutionGating(t *testing.T) {
	cases := map[string]struct {
		approvals int
		wait      time.Duration
		wantErr   *errors.Error
	}{
		"all conditions met": {
			approvals: 3,
			wait:      testTimelock,
		},
		"quorum not met": {
			approvals: 2,
			wait:      testTimelock,
			wantErr:   ErrQuorumNotMet,
		},
		"timelock one second short": {
			approvals: 3,
			wait:      testTimelock - time.Second,
			wantErr:   ErrTimelockNotElapsed,
		},
		"last second of the lifetime": {
			approvals: 3,
			wait:      testLifetime,
		},
		"lifetime exceeded": {
			approvals: 3,
			wait:      testLifetime + time.Second,
			wantErr:   ErrProposalExpired,
		},
		"expiry is reported before quorum": {
			approvals: 0,
			wait:      testLifetime + time.Second,
			wantErr:   ErrProposalExpired,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			e := newEnv(t, 5, 3)
			s := e.signers
			id := e.propose(s[0], ProposalType_Pause)
			e.approve(id, s[:tc.approvals]...)
			e.advance(tc.wait)

			can, err := e.k.CanExecuteProposal(e.db, id, e.unixNow())
			require.NoError(t, err)
			require.Equal(t, tc.wantErr == nil, can)

			_, err = e.deliver(s[4], &ExecuteProposalMsg{ProposalID: id})
			assert.IsErr(t, tc.wantErr, err)
			require.Equal(t, tc.wantErr == nil, e.isPaused())
		})
	}
}

func TestExecutePauseStateGuards(t *testing.T) {
	e := newEnv(t, 4, 2)
	s := e.signers

	// Two pause proposals race, only the first one executes.
	first := e.propose(s[0], ProposalType_Pause)
	second := e.propose(s[1], ProposalType_Pause)
	e.approve(first, s[0], s[1])
	e.approve(second, s[2], s[3])
	e.advance(testTimelock + time.Second)

	e.mustDeliver(s[0], &ExecuteProposalMsg{ProposalID: first})
	_, err := e.deliver(s[1], &ExecuteProposalMsg{ProposalID: second})
	assert.IsErr(t, ErrContractAlreadyPaused, err)

	// Pausing again is rejected at creation.
	e.advance(testCooldown)
	_, err = e.deliver(s[2], &CreateProposalMsg{Type: ProposalType_Pause})
	assert.IsErr(t, ErrContractAlreadyPaused, err)

	unpause := e.propose(s[2], ProposalType_Unpause)
	e.approve(unpause, s[2], s[3])
	e.advance(testTimelock + time.Second)
	res := e.mustDeliver(s[3], &ExecuteProposalMsg{ProposalID: unpause})
	require.Equal(t, []string{ActionProposalExecuted, ActionUnpaused}, tagValues(res, TagAction))
	require.False(t, e.isPaused())

	state, err := e.k.PauseState(e.db)
	require.NoError(t, err)
	require.True(t, state.PausedAt.IsZero())
	require.Equal(t, unpause, state.LastProposalID)

	e.advance(testCooldown)
	_, err = e.deliver(s[0], &CreateProposalMsg{Type: ProposalType_Unpause})
	assert.IsErr(t, ErrContractNotPaused, err)
}

func TestApproveErrors(t *testing.T) {
	e := newEnv(t, 3, 2)
	s := e.signers
	id := e.propose(s[0], ProposalType_Pause)
	e.approve(id, s[0])

	_, err := e.deliver(s[0], &ApproveProposalMsg{ProposalID: id})
	assert.IsErr(t, ErrAlreadyApproved, err)

	_, err = e.deliver(s[1], &ApproveProposalMsg{ProposalID: pausetest.SequenceID(99)})
	assert.IsErr(t, ErrProposalNotFound, err)

	_, err = e.deliver(pausetest.NewCondition(), &ApproveProposalMsg{ProposalID: id})
	assert.IsErr(t, ErrUnauthorizedSigner, err)

	_, err = e.deliver(nil, &ApproveProposalMsg{ProposalID: id})
	assert.IsErr(t, ErrUnauthorizedSigner, err)

	_, err = e.deliver(s[1], &ApproveProposalMsg{})
	assert.IsErr(t, errors.ErrEmpty, err)

	require.Len(t, e.proposal(id).Approvers, 1)
}

func TestCancelProposal(t *testing.T) {
	e := newEnv(t, 3, 2)
	id := e.propose(e.signers[0], ProposalType_Pause)

	_, err := e.deliver(e.signers[0], &CancelProposalMsg{ProposalID: id, Reason: "mine"})
	assert.IsErr(t, ErrNotOwner, err)

	_, err = e.deliver(e.owner, &CancelProposalMsg{ProposalID: id})
	assert.IsErr(t, errors.ErrEmpty, err)

	_, err = e.deliver(e.owner, &CancelProposalMsg{ProposalID: id, Reason: string(bytes.Repeat([]byte("x"), 257))})
	assert.IsErr(t, errors.ErrInput, err)

	_, err = e.deliver(e.owner, &CancelProposalMsg{ProposalID: pausetest.SequenceID(7), Reason: "gone"})
	assert.IsErr(t, ErrProposalNotFound, err)

	res := e.mustDeliver(e.owner, &CancelProposalMsg{ProposalID: id, Reason: "no longer needed"})
	require.Equal(t, []string{ActionProposalCancelled}, tagValues(res, TagAction))
	require.Equal(t, []string{"1"}, tagValues(res, TagProposalID))

	info, err := e.k.ProposalStatus(e.db, id)
	require.NoError(t, err)
	require.True(t, info.Cancelled)
	require.False(t, info.Executed)
}

func TestUpdateDurations(t *testing.T) {
	cases := map[string]struct {
		msg     pausegov.Msg
		owner   bool
		wantErr *errors.Error
		check   func(*testing.T, *Configuration)
	}{
		"timelock": {
			msg:   &UpdateTimelockMsg{Duration: pausegov.AsUnixDuration(2 * time.Hour)},
			owner: true,
			check: func(t *testing.T, c *Configuration) {
				require.Equal(t, pausegov.AsUnixDuration(2*time.Hour), c.TimelockDuration)
			},
		},
		"timelock below minimum": {
			msg:     &UpdateTimelockMsg{Duration: pausegov.AsUnixDuration(time.Minute)},
			owner:   true,
			wantErr: errors.ErrInput,
		},
		"timelock not shorter than the lifetime": {
			msg:     &UpdateTimelockMsg{Duration: pausegov.AsUnixDuration(testLifetime)},
			owner:   true,
			wantErr: errors.ErrInput,
		},
		"max pause": {
			msg:   &UpdateMaxPauseDurationMsg{Duration: pausegov.AsUnixDuration(72 * time.Hour)},
			owner: true,
			check: func(t *testing.T, c *Configuration) {
				require.Equal(t, pausegov.AsUnixDuration(72*time.Hour), c.MaxPauseDuration)
			},
		},
		"max pause overflowing the block time": {
			msg:     &UpdateMaxPauseDurationMsg{Duration: pausegov.UnixDuration(math.MaxInt64)},
			owner:   true,
			wantErr: errors.ErrInput,
		},
		"max pause below minimum": {
			msg:     &UpdateMaxPauseDurationMsg{Duration: pausegov.AsUnixDuration(time.Hour)},
			owner:   true,
			wantErr: errors.ErrInput,
		},
		"lifetime": {
			msg:   &UpdateProposalLifetimeMsg{Duration: pausegov.AsUnixDuration(14 * 24 * time.Hour)},
			owner: true,
			check: func(t *testing.T, c *Configuration) {
				require.Equal(t, pausegov.AsUnixDuration(14*24*time.Hour), c.ProposalLifetime)
			},
		},
		"lifetime overflowing the block time": {
			msg:     &UpdateProposalLifetimeMsg{Duration: pausegov.UnixDuration(math.MaxInt64)},
			owner:   true,
			wantErr: errors.ErrInput,
		},
		"lifetime below minimum": {
			msg:     &UpdateProposalLifetimeMsg{Duration: pausegov.AsUnixDuration(24 * time.Hour)},
			owner:   true,
			wantErr: errors.ErrInput,
		},
		"cooldown": {
			msg:   &UpdateProposalCooldownMsg{Duration: pausegov.AsUnixDuration(3 * time.Hour)},
			owner: true,
			check: func(t *testing.T, c *Configuration) {
				require.Equal(t, pausegov.AsUnixDuration(3*time.Hour), c.ProposalCooldown)
			},
		},
		"timelock above maximum": {
			msg:     &UpdateTimelockMsg{Duration: MaxDuration + 1},
			owner:   true,
			wantErr: errors.ErrInput,
		},
		"cooldown above maximum": {
			msg:     &UpdateProposalCooldownMsg{Duration: pausegov.UnixDuration(math.MaxInt64)},
			owner:   true,
			wantErr: errors.ErrInput,
		},
		"cooldown below minimum": {
			msg:     &UpdateProposalCooldownMsg{Duration: pausegov.AsUnixDuration(time.Minute)},
			owner:   true,
			wantErr: errors.ErrInput,
		},
		"not the owner": {
			msg:     &UpdateProposalCooldownMsg{Duration: pausegov.AsUnixDuration(3 * time.Hour)},
			wantErr: ErrNotOwner,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			e := newEnv(t, 3, 2)
			caller := e.signers[0]
			if tc.owner {
				caller = e.owner
			}
			res, err := e.deliver(caller, tc.msg)
			assert.IsErr(t, tc.wantErr, err)

			cfg, err := e.k.Config(e.db)
			require.NoError(t, err)
			if tc.check != nil {
				require.Equal(t, []string{ActionConfigUpdated}, tagValues(res, TagAction))
				tc.check(t, cfg)
			}
		})
	}
}

func TestLongestDurationsKeepGovernanceWorking(t *testing.T) {
	e := newEnv(t, 3, 2)
	s := e.signers
	e.mustDeliver(e.owner, &UpdateMaxPauseDurationMsg{Duration: MaxDuration})
	e.mustDeliver(e.owner, &UpdateProposalLifetimeMsg{Duration: MaxDuration})

	e.pauseLedger(2)
	paused, err := e.k.IsPaused(e.db, e.unixNow())
	require.NoError(t, err)
	require.True(t, paused)

	info, err := e.k.PauseInfo(e.db, e.unixNow())
	require.NoError(t, err)
	require.False(t, info.Expired)
	require.Equal(t, MaxDuration, info.RemainingTime)

	// A fresh proposal is not expired.
	id := e.propose(s[1], ProposalType_Unpause)
	e.approve(id, s[1], s[2])
	require.False(t, e.proposal(id).Expired(e.unixNow(), MaxDuration))
}

func TestDurationChangesApplyLive(t *testing.T) {
	e := newEnv(t, 3, 2)
	s := e.signers
	id := e.propose(s[0], ProposalType_Pause)
	e.approve(id, s[0], s[1])

	e.advance(2 * time.Hour)
	_, err := e.deliver(s[0], &ExecuteProposalMsg{ProposalID: id})
	assert.IsErr(t, ErrTimelockNotElapsed, err)

	// Shortening the timelock applies to the outstanding proposal.
	e.mustDeliver(e.owner, &UpdateTimelockMsg{Duration: pausegov.AsUnixDuration(time.Hour)})
	e.mustDeliver(s[0], &ExecuteProposalMsg{ProposalID: id})
	require.True(t, e.isPaused())
}

func TestMissingBlockTime(t *testing.T) {
	e := newEnv(t, 3, 2)
	h := e.routes[pathCreateProposalMsg]
	ctx := e.auth.SetConditions(context.Background(), e.signers[0])

	tx := &pausetest.Tx{Msg: &CreateProposalMsg{Type: ProposalType_Pause}}
	_, err := h.Deliver(ctx, e.db, tx)
	assert.IsErr(t, errors.ErrHuman, err)

	latest, err := e.k.LatestProposalID(e.db)
	require.NoError(t, err)
	require.Equal(t, int64(0), latest)
}

func TestReadsDoNotModifyState(t *testing.T) {
	e := newEnv(t, 5, 3)
	s := e.signers
	id := e.propose(s[0], ProposalType_Pause)
	e.approve(id, s[0], s[1], s[2])
	e.advance(testTimelock + time.Second)

	before := dump(t, e.db)
	var (
		firstStatus *ProposalInfo
		firstCan    bool
		firstMet    bool
	)
	for i := 0; i < 3; i++ {
		status, err := e.k.ProposalStatus(e.db, id)
		require.NoError(t, err)
		can, err := e.k.CanExecuteProposal(e.db, id, e.unixNow())
		require.NoError(t, err)
		met, err := e.k.IsQuorumMet(e.db, id)
		require.NoError(t, err)
		_, err = e.k.PauseInfo(e.db, e.unixNow())
		require.NoError(t, err)
		_, err = e.k.Signers(e.db)
		require.NoError(t, err)

		if i == 0 {
			firstStatus, firstCan, firstMet = status, can, met
			continue
		}
		require.Equal(t, firstStatus, status)
		require.Equal(t, firstCan, can)
		require.Equal(t, firstMet, met)
	}
	require.True(t, firstCan)
	require.True(t, firstMet)
	require.Equal(t, before, dump(t, e.db))

	// Check never writes either.
	h := e.routes[pathExecuteProposalMsg]
	_, err := h.Check(e.context(s[0]), e.db, &pausetest.Tx{Msg: &ExecuteProposalMsg{ProposalID: id}})
	require.NoError(t, err)
	require.Equal(t, before, dump(t, e.db))
}

func TestRejectedCallsLeaveNoTrace(t *testing.T) {
	e := newEnv(t, 3, 3)
	id := e.propose(e.signers[0], ProposalType_Pause)
	before := dump(t, e.db)

	rejected := []struct {
		caller pausegov.Condition
		msg    pausegov.Msg
	}{
		{e.signers[0], &CreateProposalMsg{Type: ProposalType_Pause}},
		{e.signers[1], &ExecuteProposalMsg{ProposalID: id}},
		{e.owner, &RemoveSignerMsg{Signer: e.signers[1].Address()}},
		{e.owner, &UpdateQuorumMsg{QuorumThreshold: 4}},
		{e.signers[1], &UpdateQuorumMsg{QuorumThreshold: 2}},
	}
	for i, r := range rejected {
		if _, err := e.deliver(r.caller, r.msg); err == nil {
			t.Fatalf("call %d (%s) must fail", i, r.msg.Path())
		}
	}
	require.Equal(t, before, dump(t, e.db))
}

func dump(t testing.TB, db pausegov.ReadOnlyKVStore) []pausegov.Model {
	t.Helper()
	itr, err := db.Iterator(nil, nil)
	require.NoError(t, err)
	models, err := orm.ConsumeIterator(itr)
	require.NoError(t, err)
	return models
}
