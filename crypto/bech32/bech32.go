// Package bech32 encodes ledger addresses in the bech32 form shown to
// operators, for example pgov1...
package bech32

import (
	"strings"

	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/pausegov/errors"
)

// EncodeAddress returns the bech32 form of an address under the given
// human readable prefix.
func EncodeAddress(hrp string, addr []byte) (string, error) {
	if hrp == "" {
		return "", errors.Wrap(errors.ErrInput, "missing prefix")
	}
	if len(addr) == 0 {
		return "", errors.Wrap(errors.ErrEmpty, "address")
	}
	data, err := bech32.ConvertBits(addr, 8, 5, true)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInput, "convert bits: %s", err)
	}
	enc, err := bech32.Encode(hrp, data)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInput, "bech32 encode: %s", err)
	}
	return enc, nil
}

// DecodeAddress parses a bech32 encoded address. The human readable part
// must equal hrp, so an address meant for another network is refused.
// Length checks are left to the caller.
func DecodeAddress(hrp, enc string) ([]byte, error) {
	got, data, err := bech32.Decode(enc)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "bech32 decode: %s", err)
	}
	// The library lowercases the prefix of valid input.
	if got != strings.ToLower(hrp) {
		return nil, errors.Wrapf(errors.ErrInput, "prefix %q, want %q", got, hrp)
	}
	addr, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "convert bits: %s", err)
	}
	return addr, nil
}
