package app

import (
	"github.com/iov-one/pausegov"
	"github.com/iov-one/pausegov/x"
	"github.com/iov-one/pausegov/x/pause"
	"github.com/iov-one/pausegov/x/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tendermint/tendermint/libs/log"
)

// Name is the ledger name and the metrics namespace.
const Name = "pausegov"

// Stack registers the governance routes with given router and returns the
// handler processing every message.
func Stack(k *pause.Keeper, r *Router) pausegov.Handler {
	pause.RegisterRoutes(r, x.CallerAuth{}, k)
	return ChainDecorators(
		utils.NewRecovery(),
		utils.NewLogging(),
		utils.NewSavepoint().OnDeliver(),
		utils.NewPathTagger(),
		pause.NewGate(k),
	).WithHandler(r)
}

// QueryRouter returns a router with every governance query registered.
func QueryRouter() pausegov.QueryRouter {
	qr := pausegov.NewQueryRouter()
	qr.RegisterAll(pause.RegisterQuery)
	return qr
}

// NewGovernance returns a ledger running the governance extension on given
// store. Metrics are registered with reg.
func NewGovernance(store pausegov.CommitKVStore, logger log.Logger, reg prometheus.Registerer) (*Ledger, error) {
	metrics, err := NewMetrics(Name, reg)
	if err != nil {
		return nil, err
	}
	h := Stack(pause.NewKeeper(), NewRouter())
	l, err := NewLedger(Name, store, h, QueryRouter(), metrics)
	if err != nil {
		return nil, err
	}
	return l.WithInit(ChainInitializers(&pause.Initializer{})).WithLogger(logger), nil
}
