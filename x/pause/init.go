package pause

import (
	"fmt"

	"github.com/iov-one/pausegov"
	"github.com/iov-one/pausegov/errors"
	"github.com/iov-one/pausegov/gconf"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ pausegov.Initializer = (*Initializer)(nil)

// GenesisState is the "pause" section of the genesis file.
type GenesisState struct {
	Signers  []pausegov.Address `json:"signers"`
	Paused   bool               `json:"paused"`
	PausedAt pausegov.UnixTime  `json:"paused_at"`
}

// FromGenesis loads the signers, the pause state and the "pause" package
// configuration. The quorum threshold must not exceed the number of
// signers.
func (*Initializer) FromGenesis(opts pausegov.Options, db pausegov.KVStore) error {
	var state GenesisState
	if err := opts.ReadOptions("pause", &state); err != nil {
		return errors.Wrap(errors.ErrInput, "read pause genesis: "+err.Error())
	}

	k := NewKeeper()
	for i, a := range state.Signers {
		if err := validateSignerAddress(a); err != nil {
			return errors.Field(fmt.Sprintf("Signers.%d", i), err, "invalid signer")
		}
		for _, b := range state.Signers[:i] {
			if a.Equals(b) {
				return errors.Field(fmt.Sprintf("Signers.%d", i), errors.ErrDuplicate, "signer %s", a)
			}
		}
		if _, err := k.signers.Put(db, a, &Signer{Address: a}); err != nil {
			return errors.Wrapf(err, "cannot save signer %d", i)
		}
	}

	// Values missing from the genesis keep their defaults.
	conf := DefaultConfiguration(nil)
	if err := gconf.InitConfig(db, opts, confPkg, &conf); err != nil {
		return errors.Wrap(err, "init config")
	}
	if int(conf.QuorumThreshold) > len(state.Signers) {
		return errors.Wrapf(ErrInvalidQuorum,
			"quorum %d greater than %d signers", conf.QuorumThreshold, len(state.Signers))
	}

	if state.Paused || !state.PausedAt.IsZero() {
		ps := PauseState{Paused: state.Paused, PausedAt: state.PausedAt}
		if err := k.savePauseState(db, &ps); err != nil {
			return errors.Wrap(err, "cannot save pause state")
		}
	}
	return nil
}
