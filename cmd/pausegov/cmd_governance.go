package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/pausegov"
	"github.com/iov-one/pausegov/x/pause"
)

func cmdProposePause(input io.Reader, output io.Writer, args []string) error {
	return proposeCmd(pause.ProposalType_Pause, `
Create a proposal to pause transfers.

Only an authorized signer can create a proposal. A new proposal has no
approvals, the proposer approves it like any other signer.
`, output, args)
}

func cmdProposeUnpause(input io.Reader, output io.Writer, args []string) error {
	return proposeCmd(pause.ProposalType_Unpause, `
Create a proposal to resume transfers.

Only an authorized signer can create a proposal. A new proposal has no
approvals, the proposer approves it like any other signer.
`, output, args)
}

func proposeCmd(t pause.ProposalType, usage string, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		fl.PrintDefaults()
	}
	var (
		homeFl    = flHome(fl)
		keyPathFl = flKey(fl)
	)
	fl.Parse(args)

	return deliver(output, *homeFl, *keyPathFl, &pause.CreateProposalMsg{Type: t})
}

func cmdApprove(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Approve an active proposal. Each signer can approve a proposal only once.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl    = flHome(fl)
		keyPathFl = flKey(fl)
		idFl      = flProposalID(fl)
	)
	fl.Parse(args)

	return deliver(output, *homeFl, *keyPathFl, &pause.ApproveProposalMsg{ProposalID: *idFl})
}

func cmdExecute(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Execute a proposal that gathered enough approvals and whose timelock has
elapsed.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl    = flHome(fl)
		keyPathFl = flKey(fl)
		idFl      = flProposalID(fl)
	)
	fl.Parse(args)

	return deliver(output, *homeFl, *keyPathFl, &pause.ExecuteProposalMsg{ProposalID: *idFl})
}

func cmdCancel(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Cancel an active proposal. Only the owner can cancel a proposal.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl    = flHome(fl)
		keyPathFl = flKey(fl)
		idFl      = flProposalID(fl)
		reasonFl  = fl.String("reason", "", "Reason of the cancellation.")
	)
	fl.Parse(args)

	return deliver(output, *homeFl, *keyPathFl, &pause.CancelProposalMsg{
		ProposalID: *idFl,
		Reason:     *reasonFl,
	})
}

func cmdAddSigner(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Authorize a new signer. Only the owner can change the signer registry.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl    = flHome(fl)
		keyPathFl = flKey(fl)
		signerFl  = flAddress(fl, "signer", "", "Address of the signer.")
	)
	fl.Parse(args)

	return deliver(output, *homeFl, *keyPathFl, &pause.AddSignerMsg{Signer: *signerFl})
}

func cmdRemoveSigner(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Revoke a signer. Approvals of the signer are removed from all active
proposals. A signer cannot be removed if the quorum could no longer be met.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl    = flHome(fl)
		keyPathFl = flKey(fl)
		signerFl  = flAddress(fl, "signer", "", "Address of the signer.")
	)
	fl.Parse(args)

	return deliver(output, *homeFl, *keyPathFl, &pause.RemoveSignerMsg{Signer: *signerFl})
}

func cmdSetQuorum(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Change the number of approvals required to execute a proposal. All active
proposals are cancelled.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl    = flHome(fl)
		keyPathFl = flKey(fl)
		quorumFl  = flQuorum(fl, "quorum", "New quorum threshold.")
	)
	fl.Parse(args)

	return deliver(output, *homeFl, *keyPathFl, &pause.UpdateQuorumMsg{QuorumThreshold: *quorumFl})
}

func cmdSetTimelock(input io.Reader, output io.Writer, args []string) error {
	return durationCmd(`
Change the time that must pass between a proposal creation and its
execution.
`, output, args, func(d pausegov.UnixDuration) pausegov.Msg {
		return &pause.UpdateTimelockMsg{Duration: d}
	})
}

func cmdSetMaxPause(input io.Reader, output io.Writer, args []string) error {
	return durationCmd(`
Change the time after which a pause stops blocking transfers.
`, output, args, func(d pausegov.UnixDuration) pausegov.Msg {
		return &pause.UpdateMaxPauseDurationMsg{Duration: d}
	})
}

func cmdSetLifetime(input io.Reader, output io.Writer, args []string) error {
	return durationCmd(`
Change the time after which a not executed proposal expires.
`, output, args, func(d pausegov.UnixDuration) pausegov.Msg {
		return &pause.UpdateProposalLifetimeMsg{Duration: d}
	})
}

func cmdSetCooldown(input io.Reader, output io.Writer, args []string) error {
	return durationCmd(`
Change the minimal time between two proposals created by the same signer.
`, output, args, func(d pausegov.UnixDuration) pausegov.Msg {
		return &pause.UpdateProposalCooldownMsg{Duration: d}
	})
}

func durationCmd(usage string, output io.Writer, args []string, newMsg func(pausegov.UnixDuration) pausegov.Msg) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage+"\nOnly the owner can change the configuration.\n")
		fl.PrintDefaults()
	}
	var (
		homeFl     = flHome(fl)
		keyPathFl  = flKey(fl)
		durationFl = flDuration(fl, "duration", `New duration, for example "48h" or a number of seconds.`)
	)
	fl.Parse(args)

	return deliver(output, *homeFl, *keyPathFl, newMsg(*durationFl))
}
