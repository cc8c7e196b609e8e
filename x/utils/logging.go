package utils

import (
	"time"

	"github.com/iov-one/pausegov"
	"github.com/iov-one/pausegov/errors"
)

// Logging is a decorator to log messages as they pass through
type Logging struct{}

var _ pausegov.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> error, success -> debug
func (r Logging) Check(ctx pausegov.Context, store pausegov.KVStore, tx pausegov.Tx, next pausegov.Checker) (*pausegov.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (r Logging) Deliver(ctx pausegov.Context, store pausegov.KVStore, tx pausegov.Tx, next pausegov.Deliverer) (*pausegov.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, false)
	return res, err
}

// logDuration writes information about the time and result to the logger
func logDuration(ctx pausegov.Context, tx pausegov.Tx, start time.Time, msg string, err error, lowPrio bool) {
	delta := time.Since(start)
	logger := pausegov.GetLogger(ctx).With(
		"path", pausegov.GetPath(tx),
		"duration", delta/time.Microsecond,
	)

	// Although message can be empty, we still want to emit a log entry
	// because it contains other relevant information beside the message.

	if err != nil {
		logger.Error(msg, "err", err, "code", errors.Code(err))
		return
	}
	if lowPrio {
		logger.Debug(msg)
	} else {
		logger.Info(msg)
	}
}
