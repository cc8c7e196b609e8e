package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/pausegov"
	"github.com/iov-one/pausegov/errors"
	"github.com/iov-one/pausegov/x/pause"
)

func cmdStatus(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the status of a proposal.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl = flHome(fl)
		idFl   = flProposalID(fl)
	)
	fl.Parse(args)

	if len(*idFl) == 0 {
		return errors.Wrap(errors.ErrEmpty, "proposal ID is required")
	}
	return view(*homeFl, func(db pausegov.ReadOnlyKVStore, now pausegov.UnixTime) error {
		info, err := pause.NewKeeper().ProposalStatus(db, *idFl)
		if err != nil {
			return err
		}
		return writeJSON(output, info)
	})
}

// executability is the output of the can-execute command.
type executability struct {
	ProposalID int64  `json:"proposal_id"`
	QuorumMet  bool   `json:"quorum_met"`
	CanExecute bool   `json:"can_execute"`
	CheckedAt  string `json:"checked_at"`
}

func cmdCanExecute(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print if a proposal can be executed now.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl = flHome(fl)
		idFl   = flProposalID(fl)
	)
	fl.Parse(args)

	if len(*idFl) == 0 {
		return errors.Wrap(errors.ErrEmpty, "proposal ID is required")
	}
	return view(*homeFl, func(db pausegov.ReadOnlyKVStore, now pausegov.UnixTime) error {
		k := pause.NewKeeper()
		info, err := k.ProposalStatus(db, *idFl)
		if err != nil {
			return err
		}
		quorum, err := k.IsQuorumMet(db, *idFl)
		if err != nil {
			return err
		}
		ok, err := k.CanExecuteProposal(db, *idFl, now)
		if err != nil {
			return err
		}
		return writeJSON(output, executability{
			ProposalID: info.ID,
			QuorumMet:  quorum,
			CanExecute: ok,
			CheckedAt:  now.String(),
		})
	})
}

func cmdPauseInfo(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the pause state together with the time left until the pause expires.
`)
		fl.PrintDefaults()
	}
	homeFl := flHome(fl)
	fl.Parse(args)

	return view(*homeFl, func(db pausegov.ReadOnlyKVStore, now pausegov.UnixTime) error {
		info, err := pause.NewKeeper().PauseInfo(db, now)
		if err != nil {
			return err
		}
		return writeJSON(output, info)
	})
}

func cmdConfig(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the governance configuration.
`)
		fl.PrintDefaults()
	}
	homeFl := flHome(fl)
	fl.Parse(args)

	return view(*homeFl, func(db pausegov.ReadOnlyKVStore, now pausegov.UnixTime) error {
		conf, err := pause.NewKeeper().Config(db)
		if err != nil {
			return err
		}
		return writeJSON(output, conf)
	})
}

func cmdSigners(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print addresses of all authorized signers, one per line.
`)
		fl.PrintDefaults()
	}
	homeFl := flHome(fl)
	fl.Parse(args)

	return view(*homeFl, func(db pausegov.ReadOnlyKVStore, now pausegov.UnixTime) error {
		signers, err := pause.NewKeeper().Signers(db)
		if err != nil {
			return err
		}
		for _, s := range signers {
			if _, err := fmt.Fprintln(output, s.Address); err != nil {
				return err
			}
		}
		return nil
	})
}
