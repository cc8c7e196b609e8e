package pause

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/iov-one/pausegov"
	"github.com/iov-one/pausegov/errors"
	"github.com/iov-one/pausegov/pausetest"
	"github.com/iov-one/pausegov/pausetest/assert"
)

func TestConfigurationValidation(t *testing.T) {
	owner := pausetest.RandomAddr(t)

	cases := map[string]struct {
		conf     Configuration
		wantErrs map[string]*errors.Error
	}{
		"default is valid": {
			conf: DefaultConfiguration(owner),
			wantErrs: map[string]*errors.Error{
				"Owner":            nil,
				"QuorumThreshold":  nil,
				"TimelockDuration": nil,
				"ProposalLifetime": nil,
			},
		},
		"missing owner": {
			conf: DefaultConfiguration(nil),
			wantErrs: map[string]*errors.Error{
				"Owner": errors.ErrEmpty,
			},
		},
		"quorum of one": {
			conf: func() Configuration {
				c := DefaultConfiguration(owner)
				c.QuorumThreshold = 1
				return c
			}(),
			wantErrs: map[string]*errors.Error{
				"QuorumThreshold": ErrInvalidQuorum,
			},
		},
		"durations below minimum": {
			conf: func() Configuration {
				c := DefaultConfiguration(owner)
				c.TimelockDuration = pausegov.AsUnixDuration(time.Minute)
				c.MaxPauseDuration = pausegov.AsUnixDuration(time.Hour)
				c.ProposalCooldown = pausegov.AsUnixDuration(time.Second)
				return c
			}(),
			wantErrs: map[string]*errors.Error{
				"TimelockDuration": errors.ErrInput,
				"MaxPauseDuration": errors.ErrInput,
				"ProposalCooldown": errors.ErrInput,
				"ProposalLifetime": nil,
			},
		},
		"durations above maximum": {
			conf: func() Configuration {
				c := DefaultConfiguration(owner)
				c.TimelockDuration = MaxDuration + 1
				c.MaxPauseDuration = pausegov.UnixDuration(math.MaxInt64)
				c.ProposalLifetime = pausegov.UnixDuration(math.MaxInt64)
				c.ProposalCooldown = pausegov.UnixDuration(math.MaxInt64)
				return c
			}(),
			wantErrs: map[string]*errors.Error{
				"TimelockDuration": errors.ErrInput,
				"MaxPauseDuration": errors.ErrInput,
				"ProposalLifetime": errors.ErrInput,
				"ProposalCooldown": errors.ErrInput,
			},
		},
		"longest durations": {
			conf: func() Configuration {
				c := DefaultConfiguration(owner)
				c.MaxPauseDuration = MaxDuration
				c.ProposalLifetime = MaxDuration
				c.ProposalCooldown = MaxDuration
				return c
			}(),
			wantErrs: map[string]*errors.Error{
				"MaxPauseDuration": nil,
				"ProposalLifetime": nil,
				"ProposalCooldown": nil,
			},
		},
		"lifetime not longer than timelock": {
			conf: func() Configuration {
				c := DefaultConfiguration(owner)
				c.TimelockDuration = c.ProposalLifetime
				return c
			}(),
			wantErrs: map[string]*errors.Error{
				"TimelockDuration": nil,
				"ProposalLifetime": errors.ErrInput,
			},
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.conf.Validate()
			for field, wantErr := range tc.wantErrs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}

func TestProposalValidation(t *testing.T) {
	a, b := pausetest.RandomAddr(t), pausetest.RandomAddr(t)
	now := pausegov.AsUnixTime(time.Now())

	active := func() Proposal {
		return Proposal{
			Type:           ProposalType_Pause,
			Proposer:       a,
			CreatedAt:      now,
			QuorumSnapshot: 2,
			Approvers:      []pausegov.Address{a, b},
			Status:         ProposalStatus_Active,
		}
	}

	cases := map[string]struct {
		proposal Proposal
		field    string
		wantErr  *errors.Error
	}{
		"valid active proposal": {
			proposal: active(),
			field:    "Status",
		},
		"duplicated approval": {
			proposal: func() Proposal {
				p := active()
				p.Approvers = append(p.Approvers, a)
				return p
			}(),
			field:   "Approvers.2",
			wantErr: errors.ErrDuplicate,
		},
		"unknown type": {
			proposal: func() Proposal {
				p := active()
				p.Type = ProposalType_Invalid
				return p
			}(),
			field:   "Type",
			wantErr: errors.ErrInput,
		},
		"active with a cancel reason": {
			proposal: func() Proposal {
				p := active()
				p.CancelReason = CancelReason_Manual
				return p
			}(),
			field:   "Status",
			wantErr: errors.ErrState,
		},
		"executed without a time": {
			proposal: func() Proposal {
				p := active()
				p.Status = ProposalStatus_Executed
				return p
			}(),
			field:   "ExecutedAt",
			wantErr: errors.ErrEmpty,
		},
		"cancelled without a reason": {
			proposal: func() Proposal {
				p := active()
				p.Status = ProposalStatus_Cancelled
				p.CancelledAt = now
				return p
			}(),
			field:   "CancelReason",
			wantErr: errors.ErrInput,
		},
		"valid cancelled proposal": {
			proposal: func() Proposal {
				p := active()
				p.Status = ProposalStatus_Cancelled
				p.CancelReason = CancelReason_QuorumChanged
				p.CancelledAt = now
				return p
			}(),
			field: "CancelReason",
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.FieldError(t, tc.proposal.Validate(), tc.field, tc.wantErr)
		})
	}
}

func TestProposalApprovers(t *testing.T) {
	a, b, c := pausetest.RandomAddr(t), pausetest.RandomAddr(t), pausetest.RandomAddr(t)
	p := Proposal{Approvers: []pausegov.Address{a, b, c}}

	assert.Equal(t, true, p.HasApproved(b))
	assert.Equal(t, true, p.RemoveApprover(b))
	assert.Equal(t, false, p.HasApproved(b))
	assert.Equal(t, false, p.RemoveApprover(b))
	assert.Equal(t, []pausegov.Address{a, c}, p.Approvers)
}

func TestProposalTimeBoundaries(t *testing.T) {
	created := pausegov.AsUnixTime(time.Date(2019, 4, 1, 0, 0, 0, 0, time.UTC))
	p := Proposal{CreatedAt: created}
	timelock := pausegov.AsUnixDuration(testTimelock)
	lifetime := pausegov.AsUnixDuration(testLifetime)

	assert.Equal(t, false, p.TimelockElapsed(created.Add(timelock-1), timelock))
	assert.Equal(t, true, p.TimelockElapsed(created.Add(timelock), timelock))
	assert.Equal(t, false, p.Expired(created.Add(lifetime), lifetime))
	assert.Equal(t, true, p.Expired(created.Add(lifetime+1), lifetime))
}

func TestPauseStateExpiry(t *testing.T) {
	pausedAt := pausegov.AsUnixTime(time.Date(2019, 4, 1, 0, 0, 0, 0, time.UTC))
	maxPause := pausegov.AsUnixDuration(testMaxPause)

	s := PauseState{Paused: true, PausedAt: pausedAt}
	assert.Nil(t, s.Validate())
	assert.Equal(t, false, s.PauseExpired(pausedAt.Add(maxPause-1), maxPause))
	assert.Equal(t, true, s.PauseExpired(pausedAt.Add(maxPause), maxPause))

	unpaused := PauseState{}
	assert.Nil(t, unpaused.Validate())
	assert.Equal(t, false, unpaused.PauseExpired(pausedAt.Add(maxPause), maxPause))

	assert.FieldError(t, (&PauseState{Paused: true}).Validate(), "PausedAt", errors.ErrEmpty)
	assert.FieldError(t, (&PauseState{PausedAt: pausedAt}).Validate(), "PausedAt", errors.ErrState)
}

func TestCooldownActive(t *testing.T) {
	last := pausegov.AsUnixTime(time.Date(2019, 4, 1, 0, 0, 0, 0, time.UTC))
	cd := pausegov.AsUnixDuration(testCooldown)
	c := Cooldown{LastProposalAt: last}

	assert.Equal(t, true, c.Active(last, cd))
	assert.Equal(t, true, c.Active(last.Add(cd-1), cd))
	assert.Equal(t, false, c.Active(last.Add(cd), cd))
}

func TestProposalTypeJSON(t *testing.T) {
	raw, err := json.Marshal(ProposalType_Unpause)
	assert.Nil(t, err)
	assert.Equal(t, `"unpause"`, string(raw))

	var pt ProposalType
	assert.Nil(t, json.Unmarshal([]byte(`"pause"`), &pt))
	assert.Equal(t, ProposalType_Pause, pt)

	assert.IsErr(t, errors.ErrInput, json.Unmarshal([]byte(`"halt"`), &pt))
	assert.IsErr(t, errors.ErrInput, json.Unmarshal([]byte(`1`), &pt))
}
