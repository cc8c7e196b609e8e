package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/iov-one/pausegov"
	"github.com/iov-one/pausegov/errors"
)

// commands is a register of all available commands that can be executed by
// this program. The name is used to match with the first argument given.
//
// A command function is given stdin, stdout and the command line arguments
// except the program name and the command name. It is the responsibility
// of the command function to parse the arguments using the flag package.
// A command function is expected to read and write only to provided input
// and output.
var commands = map[string]func(input io.Reader, output io.Writer, args []string) error{
	"add-signer":      cmdAddSigner,
	"approve":         cmdApprove,
	"can-execute":     cmdCanExecute,
	"cancel":          cmdCancel,
	"config":          cmdConfig,
	"execute":         cmdExecute,
	"init":            cmdInit,
	"keyaddr":         cmdKeyaddr,
	"keygen":          cmdKeygen,
	"pause-info":      cmdPauseInfo,
	"propose-pause":   cmdProposePause,
	"propose-unpause": cmdProposeUnpause,
	"remove-signer":   cmdRemoveSigner,
	"set-cooldown":    cmdSetCooldown,
	"set-lifetime":    cmdSetLifetime,
	"set-max-pause":   cmdSetMaxPause,
	"set-quorum":      cmdSetQuorum,
	"set-timelock":    cmdSetTimelock,
	"signers":         cmdSigners,
	"status":          cmdStatus,
	"version":         cmdVersion,
}

func main() {
	if len(os.Args) == 1 {
		fmt.Fprintf(os.Stderr, "%s operates the pause governance ledger.\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [<flags>]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		fmt.Fprintf(os.Stderr, "Run '%s <command> -help' to learn more about each command.\n", os.Args[0])
		os.Exit(2)
	}
	run, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		os.Exit(2)
	}

	// Skip two first arguments. Second argument is the command name that
	// we just consumed.
	if err := run(os.Stdin, os.Stdout, os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// formatError returns the registered error code together with the message.
func formatError(err error) string {
	code, log := errors.Info(err, false)
	return fmt.Sprintf("error %d: %s", code, log)
}

func availableCmds() []string {
	available := make([]string, 0, len(commands))
	for name := range commands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

func cmdVersion(in io.Reader, out io.Writer, args []string) error {
	_, err := fmt.Fprintln(out, pausegov.Version())
	return err
}
