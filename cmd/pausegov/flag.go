package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/iov-one/pausegov"
	"github.com/iov-one/pausegov/errors"
	"github.com/iov-one/pausegov/orm"
)

// flHome registers the flag pointing to the ledger state directory.
func flHome(fl *flag.FlagSet) *string {
	return fl.String("home", env("PAUSEGOV_HOME", os.Getenv("HOME")+"/.pausegov"),
		"Directory the ledger state is kept in. You can use PAUSEGOV_HOME environment variable to set it.")
}

// flKey registers the flag pointing to the private key file of the caller.
func flKey(fl *flag.FlagSet) *string {
	return fl.String("key", env("PAUSEGOV_PRIV_KEY", os.Getenv("HOME")+"/.pausegov.priv.key"),
		"Path to the private key file of the caller. You can use PAUSEGOV_PRIV_KEY environment variable to set it.")
}

// flAddress returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flAddress(fl *flag.FlagSet, name, defaultVal, usage string) *pausegov.Address {
	var a pausegov.Address
	if defaultVal != "" {
		var err error
		a, err = pausegov.ParseAddress(defaultVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q address flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var((*flagAddress)(&a), name, usage)
	return &a
}

type flagAddress pausegov.Address

func (a flagAddress) String() string {
	if len(a) == 0 {
		return ""
	}
	return pausegov.Address(a).String()
}

func (a *flagAddress) Set(raw string) error {
	addr, err := pausegov.ParseAddress(raw)
	if err != nil {
		return err
	}
	*a = flagAddress(addr)
	return nil
}

// flDuration registers a duration flag. Both Go duration notation ("48h")
// and a number of seconds are accepted.
func flDuration(fl *flag.FlagSet, name string, usage string) *pausegov.UnixDuration {
	var d pausegov.UnixDuration
	fl.Var((*flagDuration)(&d), name, usage)
	return &d
}

type flagDuration pausegov.UnixDuration

func (d flagDuration) String() string {
	return pausegov.UnixDuration(d).String()
}

func (d *flagDuration) Set(raw string) error {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*d = flagDuration(n)
		return nil
	}
	dur, err := time.ParseDuration(raw)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "invalid duration %q", raw)
	}
	*d = flagDuration(pausegov.AsUnixDuration(dur))
	return nil
}

// flProposalID registers a proposal ID flag given in its decimal form.
func flProposalID(fl *flag.FlagSet) *[]byte {
	var id []byte
	fl.Var((*flagSequence)(&id), "id", "Proposal ID.")
	return &id
}

type flagSequence []byte

func (s flagSequence) String() string {
	if len(s) == 0 {
		return ""
	}
	n, err := orm.DecodeSequence(s)
	if err != nil {
		return fmt.Sprintf("%X", []byte(s))
	}
	return strconv.FormatInt(n, 10)
}

func (s *flagSequence) Set(raw string) error {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return errors.Wrapf(errors.ErrInput, "invalid proposal ID %q", raw)
	}
	*s = orm.EncodeSequence(n)
	return nil
}

// flQuorum registers a quorum threshold flag. Values that do not fit the
// stored threshold are rejected instead of being truncated.
func flQuorum(fl *flag.FlagSet, name string, usage string) *int32 {
	var q int32
	fl.Var((*flagQuorum)(&q), name, usage)
	return &q
}

type flagQuorum int32

func (q flagQuorum) String() string {
	return strconv.FormatInt(int64(q), 10)
}

func (q *flagQuorum) Set(raw string) error {
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || n <= 0 {
		return errors.Wrapf(errors.ErrInput, "invalid quorum %q", raw)
	}
	*q = flagQuorum(n)
	return nil
}
