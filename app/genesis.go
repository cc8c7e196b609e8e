package app

import (
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/pausegov"
	"github.com/iov-one/pausegov/errors"
)

// Genesis file format. AppState is passed to the initializers.
type Genesis struct {
	ChainID  string           `json:"chain_id"`
	AppState pausegov.Options `json:"app_state"`
}

// LoadGenesis tries to load a given file into a Genesis struct
func LoadGenesis(filePath string) (Genesis, error) {
	var gen Genesis

	raw, err := ioutil.ReadFile(filePath)
	if err != nil {
		return gen, errors.Wrapf(errors.ErrInput, "loading genesis file: %s", err)
	}
	if err := json.Unmarshal(raw, &gen); err != nil {
		return gen, errors.Wrapf(errors.ErrInput, "unmarshaling genesis file: %s", err)
	}
	return gen, nil
}

// ChainInitializers lets you initialize many extensions with one function
func ChainInitializers(inits ...pausegov.Initializer) pausegov.Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []pausegov.Initializer
}

// FromGenesis will pass opts to all Initializers in the list,
// aborting at the first error.
func (c chainInitializer) FromGenesis(opts pausegov.Options, kv pausegov.KVStore) error {
	for _, i := range c.inits {
		if err := i.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}
