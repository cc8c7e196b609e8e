package pause

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/iov-one/pausegov"
	"github.com/iov-one/pausegov/errors"
	"github.com/iov-one/pausegov/pausetest"
	"github.com/iov-one/pausegov/store"
	"github.com/iov-one/pausegov/x/utils"
)

// testTimelock and friends are the configuration every env starts with.
const (
	testTimelock = 48 * time.Hour
	testMaxPause = 30 * 24 * time.Hour
	testLifetime = 7 * 24 * time.Hour
	testCooldown = time.Hour
)

type routes map[string]pausegov.Handler

func (r routes) Handle(path string, h pausegov.Handler) {
	if _, ok := r[path]; ok {
		panic("duplicated route " + path)
	}
	r[path] = h
}

// env is a governed ledger with an owner and a number of signers, driven
// by a manual clock.
type env struct {
	t       testing.TB
	db      pausegov.CacheableKVStore
	k       *Keeper
	routes  routes
	auth    *pausetest.CtxAuth
	now     time.Time
	owner   pausegov.Condition
	signers []pausegov.Condition
}

func newEnv(t testing.TB, signers int, quorum int32) *env {
	t.Helper()

	e := &env{
		t:      t,
		db:     store.MemStore(),
		k:      NewKeeper(),
		routes: make(routes),
		auth:   &pausetest.CtxAuth{Key: "auth"},
		now:    time.Date(2019, 4, 1, 12, 0, 0, 0, time.UTC),
		owner:  pausetest.NewCondition(),
	}
	addrs := make([]pausegov.Address, signers)
	for i := range addrs {
		c := pausetest.NewCondition()
		e.signers = append(e.signers, c)
		addrs[i] = c.Address()
	}

	genesis := map[string]interface{}{
		"conf": map[string]interface{}{
			"pause": Configuration{
				Owner:            e.owner.Address(),
				QuorumThreshold:  quorum,
				TimelockDuration: pausegov.AsUnixDuration(testTimelock),
				MaxPauseDuration: pausegov.AsUnixDuration(testMaxPause),
				ProposalLifetime: pausegov.AsUnixDuration(testLifetime),
				ProposalCooldown: pausegov.AsUnixDuration(testCooldown),
			},
		},
		"pause": GenesisState{Signers: addrs},
	}
	raw, err := json.Marshal(genesis)
	if err != nil {
		t.Fatalf("cannot serialize genesis: %s", err)
	}
	var opts pausegov.Options
	if err := json.Unmarshal(raw, &opts); err != nil {
		t.Fatalf("cannot deserialize genesis: %s", err)
	}
	var ini Initializer
	if err := ini.FromGenesis(opts, e.db); err != nil {
		t.Fatalf("genesis: %+v", err)
	}

	RegisterRoutes(e.routes, e.auth, e.k)
	return e
}

func (e *env) advance(d time.Duration) {
	e.now = e.now.Add(d)
}

func (e *env) unixNow() pausegov.UnixTime {
	return pausegov.AsUnixTime(e.now)
}

func (e *env) context(caller pausegov.Condition) pausegov.Context {
	ctx := pausegov.WithBlockTime(context.Background(), e.now)
	if caller != nil {
		ctx = e.auth.SetConditions(ctx, caller)
	}
	return ctx
}

// deliver checks and delivers the message the way the ledger host does.
// Check must agree with Deliver about the result.
func (e *env) deliver(caller pausegov.Condition, msg pausegov.Msg) (*pausegov.DeliverResult, error) {
	e.t.Helper()

	h, ok := e.routes[msg.Path()]
	if !ok {
		e.t.Fatalf("no handler for %q", msg.Path())
	}
	h = pausetest.Decorate(h, utils.NewSavepoint().OnCheck().OnDeliver())
	tx := &pausetest.Tx{Msg: msg}

	cache := e.db.CacheWrap()
	_, checkErr := h.Check(e.context(caller), cache, tx)
	cache.Discard()

	res, err := h.Deliver(e.context(caller), e.db, tx)
	if (checkErr == nil) != (err == nil) || errors.Code(checkErr) != errors.Code(err) {
		e.t.Fatalf("check and deliver disagree: %v != %v", checkErr, err)
	}
	return res, err
}

// mustDeliver is deliver that fails the test on error.
func (e *env) mustDeliver(caller pausegov.Condition, msg pausegov.Msg) *pausegov.DeliverResult {
	e.t.Helper()
	res, err := e.deliver(caller, msg)
	if err != nil {
		e.t.Fatalf("%s: %+v", msg.Path(), err)
	}
	return res
}

// propose creates a proposal and returns its ID.
func (e *env) propose(caller pausegov.Condition, t ProposalType) []byte {
	e.t.Helper()
	res := e.mustDeliver(caller, &CreateProposalMsg{Type: t})
	return res.Data
}

func (e *env) approve(id []byte, callers ...pausegov.Condition) {
	e.t.Helper()
	for _, c := range callers {
		e.mustDeliver(c, &ApproveProposalMsg{ProposalID: id})
	}
}

func (e *env) proposal(id []byte) *Proposal {
	e.t.Helper()
	p, err := e.k.Proposal(e.db, id)
	if err != nil {
		e.t.Fatalf("cannot load proposal: %+v", err)
	}
	return p
}

func (e *env) isPaused() bool {
	e.t.Helper()
	s, err := e.k.PauseState(e.db)
	if err != nil {
		e.t.Fatalf("cannot load pause state: %+v", err)
	}
	return s.Paused
}

// pauseLedger runs a full pause proposal with the first quorum signers.
func (e *env) pauseLedger(quorum int) []byte {
	e.t.Helper()
	id := e.propose(e.signers[0], ProposalType_Pause)
	e.approve(id, e.signers[:quorum]...)
	e.advance(testTimelock + time.Second)
	e.mustDeliver(e.signers[0], &ExecuteProposalMsg{ProposalID: id})
	return id
}

func tagValues(res *pausegov.DeliverResult, key string) []string {
	var vals []string
	for _, t := range res.Tags {
		if string(t.Key) == key {
			vals = append(vals, string(t.Value))
		}
	}
	return vals
}
