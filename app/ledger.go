package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/iov-one/pausegov"
	"github.com/iov-one/pausegov/errors"
	"github.com/iov-one/pausegov/x"
	"github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

// Ledger hosts the governance state. Messages are processed one at a time
// under a single lock. Each call gets the block time from the ledger clock
// and the caller attached to its context. A successful delivery is
// committed before the next message is accepted, a failed one leaves no
// trace.
type Ledger struct {
	mu sync.Mutex

	// name is returned by Info
	name string

	store   *CommitStore
	handler pausegov.Handler
	queries pausegov.QueryRouter
	init    pausegov.Initializer
	clock   func() time.Time
	logger  log.Logger
	metrics *Metrics

	// chainID is loaded from the store and saved once by InitChain
	chainID string
}

// NewLedger loads the latest committed state of given store.
func NewLedger(name string, store pausegov.CommitKVStore, handler pausegov.Handler, queries pausegov.QueryRouter, metrics *Metrics) (*Ledger, error) {
	cs, err := NewCommitStore(store)
	if err != nil {
		return nil, err
	}
	chainID, err := loadChainID(cs.DeliverStore())
	if err != nil {
		return nil, err
	}
	return &Ledger{
		name:    name,
		store:   cs,
		handler: handler,
		queries: queries,
		clock:   time.Now,
		logger:  log.NewNopLogger(),
		metrics: metrics,
		chainID: chainID,
	}, nil
}

// WithInit sets the genesis initializer used by InitChain.
func (l *Ledger) WithInit(init pausegov.Initializer) *Ledger {
	l.init = init
	return l
}

// WithLogger sets the logger passed to every handler.
func (l *Ledger) WithLogger(logger log.Logger) *Ledger {
	l.logger = logger
	return l
}

// WithClock sets the source of the block time.
func (l *Ledger) WithClock(clock func() time.Time) *Ledger {
	l.clock = clock
	return l
}

// ChainID returns the chain ID set by the genesis or an empty string.
func (l *Ledger) ChainID() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.chainID
}

// Info returns the name of the ledger and the last commit.
func (l *Ledger) Info() (string, pausegov.CommitID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	id, err := l.store.CommitInfo()
	return l.name, id, err
}

// InitChain loads the genesis. It can be called only once for the lifetime
// of the store.
func (l *Ledger) InitChain(gen Genesis) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.chainID != "" {
		return errors.Wrapf(errors.ErrState, "genesis already loaded for chain %s", l.chainID)
	}
	if l.init == nil {
		return errors.Wrap(errors.ErrHuman, "no initializer")
	}

	db := l.store.DeliverStore()
	if err := saveChainID(db, gen.ChainID); err != nil {
		l.store.Rollback()
		return err
	}
	if err := l.init.FromGenesis(gen.AppState, db); err != nil {
		l.store.Rollback()
		return errors.Wrap(err, "genesis")
	}
	id, err := l.store.Commit()
	if err != nil {
		return errors.Wrap(err, "commit genesis")
	}
	l.chainID = gen.ChainID
	l.logger.Info("Genesis loaded",
		"chain_id", gen.ChainID,
		"height", id.Version,
		"hash", fmt.Sprintf("%X", id.Hash))
	return nil
}

// Check validates the message against the committed state without
// changing it.
func (l *Ledger) Check(caller pausegov.Condition, msg pausegov.Msg) (*pausegov.CheckResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ctx, err := l.context(caller)
	if err != nil {
		return nil, err
	}
	cache := l.store.CheckStore().CacheWrap()
	defer cache.Discard()
	return l.handler.Check(ctx, cache, &Tx{Msg: msg})
}

// Deliver processes the message and commits the result.
func (l *Ledger) Deliver(caller pausegov.Condition, msg pausegov.Msg) (*pausegov.DeliverResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.chainID == "" {
		return nil, errors.Wrap(errors.ErrState, "genesis not loaded")
	}
	ctx, err := l.context(caller)
	if err != nil {
		return nil, err
	}

	tx := &Tx{Msg: msg}
	path := pausegov.GetPath(tx)
	res, err := l.handler.Deliver(ctx, l.store.DeliverStore(), tx)
	if err != nil {
		l.store.Rollback()
		l.metrics.observeReject(path, err)
		return nil, err
	}

	id, err := l.store.Commit()
	if err != nil {
		return nil, errors.Wrap(err, "commit")
	}
	l.logger.Info("Commit synced",
		"path", path,
		"height", id.Version,
		"hash", fmt.Sprintf("%X", id.Hash),
		"tags", formatTags(res.Tags))
	l.metrics.observeDeliver(path, res, id.Version)
	return res, nil
}

// context returns the context of the next block.
func (l *Ledger) context(caller pausegov.Condition) (pausegov.Context, error) {
	id, err := l.store.CommitInfo()
	if err != nil {
		return nil, errors.Wrap(err, "commit info")
	}
	ctx := pausegov.WithLogger(context.Background(), l.logger)
	if l.chainID != "" {
		ctx = pausegov.WithChainID(ctx, l.chainID)
	}
	ctx = pausegov.WithHeight(ctx, id.Version+1)
	ctx = pausegov.WithBlockTime(ctx, l.clock())
	if caller != nil {
		ctx = x.WithCaller(ctx, caller)
	}
	return ctx, nil
}

/*
Query gets data from the committed state.

Path may be "/<bucket>" and may be followed by "?prefix" to make a prefix
query. Data is the key or the key prefix.
*/
func (l *Ledger) Query(path string, data []byte) ([]pausegov.Model, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	path, mod := splitPath(path)
	qh := l.queries.Handler(path)
	if qh == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "unexpected query path: %v", path)
	}
	db := l.store.committed.CacheWrap()
	defer db.Discard()
	return qh.Query(db, mod, data)
}

// View calls fn with a read only view of the committed state and the
// current time of the ledger clock.
func (l *Ledger) View(fn func(db pausegov.ReadOnlyKVStore, now time.Time) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	db := l.store.committed.CacheWrap()
	defer db.Discard()
	return fn(db, l.clock())
}

// splitPath splits out the real path along with the query
// modifier (everything after the ?)
func splitPath(path string) (string, string) {
	var mod string
	chunks := strings.SplitN(path, "?", 2)
	if len(chunks) == 2 {
		path = chunks[0]
		mod = chunks[1]
	}
	return path, mod
}

func formatTags(tags []common.KVPair) string {
	pairs := make([]string, len(tags))
	for i, t := range tags {
		pairs[i] = string(t.Key) + "=" + string(t.Value)
	}
	return strings.Join(pairs, ",")
}
