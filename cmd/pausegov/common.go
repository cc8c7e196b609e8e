package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"
	"time"

	"github.com/iov-one/pausegov"
	"github.com/iov-one/pausegov/app"
	"github.com/iov-one/pausegov/crypto"
	"github.com/iov-one/pausegov/errors"
	"github.com/iov-one/pausegov/store/iavl"
	"github.com/prometheus/client_golang/prometheus"
	amino "github.com/tendermint/go-amino"
	"github.com/tendermint/tendermint/libs/log"
)

// clock is the source of the block time. Tests replace it to move the
// ledger time forward.
var clock = time.Now

var cdc = amino.NewCodec()

// openLedger loads the ledger kept in the home directory. Returned close
// function must be called to release the database.
func openLedger(home string) (*app.Ledger, func(), error) {
	db, err := iavl.NewCommitStore(home, "state")
	if err != nil {
		return nil, nil, err
	}
	l, err := app.NewGovernance(db, newLogger(), prometheus.NewRegistry())
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return l.WithClock(clock), db.Close, nil
}

// newLogger returns a logger writing to stderr. The level is controlled by
// the PAUSEGOV_LOG_LEVEL environment variable.
func newLogger() log.Logger {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stderr)).
		With("module", "pausegov")
	lvl, err := log.AllowLevel(env("PAUSEGOV_LOG_LEVEL", "error"))
	if err != nil {
		lvl = log.AllowError()
	}
	return log.NewFilter(logger, lvl)
}

// loadKey reads the hex encoded private key from given file.
func loadKey(path string) (*crypto.PrivateKey, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "read private key file: %s", err)
	}
	return crypto.DecodePrivateKey(strings.TrimSpace(string(raw)))
}

// deliver sends the message to the ledger on behalf of the key owner and
// writes the result tags to the output.
func deliver(output io.Writer, home, keyPath string, msg pausegov.Msg) error {
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	key, err := loadKey(keyPath)
	if err != nil {
		return err
	}
	l, closeDB, err := openLedger(home)
	if err != nil {
		return err
	}
	defer closeDB()

	res, err := l.Deliver(key.Condition(), msg)
	if err != nil {
		return err
	}
	for _, t := range res.Tags {
		fmt.Fprintf(output, "%s=%s\n", t.Key, t.Value)
	}
	return nil
}

// view runs fn against the committed ledger state.
func view(home string, fn func(db pausegov.ReadOnlyKVStore, now pausegov.UnixTime) error) error {
	l, closeDB, err := openLedger(home)
	if err != nil {
		return err
	}
	defer closeDB()
	return l.View(func(db pausegov.ReadOnlyKVStore, now time.Time) error {
		return fn(db, pausegov.AsUnixTime(now))
	})
}

// writeJSON writes an indented JSON representation of given value.
func writeJSON(output io.Writer, v interface{}) error {
	raw, err := cdc.MarshalJSONIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "serialize")
	}
	_, err = fmt.Fprintln(output, string(raw))
	return err
}
