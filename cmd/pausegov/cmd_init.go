package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iov-one/pausegov/app"
	"github.com/iov-one/pausegov/errors"
)

func cmdInit(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create the ledger state from a genesis file.

The genesis declares the owner, the signers and the governance durations.
A ledger can be initialized only once.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl    = flHome(fl)
		genesisFl = fl.String("genesis", "genesis.json", "Path to the genesis file.")
	)
	fl.Parse(args)

	gen, err := app.LoadGenesis(*genesisFl)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*homeFl, 0700); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot create home directory: %s", err)
	}
	l, closeDB, err := openLedger(*homeFl)
	if err != nil {
		return err
	}
	defer closeDB()

	if err := l.InitChain(gen); err != nil {
		return err
	}
	_, id, err := l.Info()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(output, "chain %s initialized at height %d\n", gen.ChainID, id.Version)
	return err
}
