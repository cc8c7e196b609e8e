package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iov-one/pausegov/crypto"
	"github.com/iov-one/pausegov/errors"
)

func cmdKeygen(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Generate a new private key.

When successful a new file with hex encoded private key is created. This
command fails if the private key file already exists.

A key can be derived from a hex encoded master seed. Without a seed a random
key is created.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = flKey(fl)
		seedFl    = fl.String("seed", "", "Optional hex encoded master seed to derive the key from.")
		pathFl    = fl.String("path", "m/44'/234'/0'", "Derivation path used together with the seed.")
	)
	fl.Parse(args)

	if _, err := os.Stat(*keyPathFl); !os.IsNotExist(err) {
		// Do not allow to overwrite already existing private key. User
		// must manually delete it first.
		return errors.Wrapf(errors.ErrDuplicate, "private key file %q already exists, delete this file and try again", *keyPathFl)
	}

	var (
		key *crypto.PrivateKey
		err error
	)
	if *seedFl == "" {
		key, err = crypto.GenPrivateKey()
	} else {
		seed, decErr := hex.DecodeString(*seedFl)
		if decErr != nil {
			return errors.Wrap(errors.ErrInput, "seed must be hex encoded")
		}
		key, err = crypto.DeriveForPath(seed, *pathFl)
	}
	if err != nil {
		return err
	}

	fd, err := os.OpenFile(*keyPathFl, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot create private key file: %s", err)
	}
	defer fd.Close()

	if _, err := fmt.Fprintln(fd, key.Encode()); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot write private key: %s", err)
	}
	if err := fd.Close(); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot close private key file: %s", err)
	}
	return nil
}

func cmdKeyaddr(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out the address associated with your private key.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = flKey(fl)
		bech32Fl  = fl.Bool("bech32", false, "Print the bech32 form instead of hex.")
	)
	fl.Parse(args)

	key, err := loadKey(*keyPathFl)
	if err != nil {
		return err
	}
	addr := key.Address()
	if !*bech32Fl {
		_, err = fmt.Fprintln(output, addr)
		return err
	}
	b, err := addr.Bech32()
	if err != nil {
		return errors.Wrap(err, "bech32")
	}
	_, err = fmt.Fprintln(output, b)
	return err
}
