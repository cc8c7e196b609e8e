package crypto

import (
	"bytes"
	"encoding/hex"

	"github.com/iov-one/pausegov"
	"github.com/iov-one/pausegov/errors"
	"github.com/stellar/go/exp/crypto/derivation"
	"golang.org/x/crypto/ed25519"
)

// ExtensionName is used for the conditions we get from keys.
const ExtensionName = "sigs"

// PrivateKey is an ed25519 key that identifies a ledger caller. Keys are
// never used to sign anything, the ledger trusts the caller identity it is
// given. A key only provides a stable condition and address.
type PrivateKey struct {
	key ed25519.PrivateKey
}

// GenPrivateKey returns a random new private key.
func GenPrivateKey() (*PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, errors.Wrap(err, "generate key")
	}
	return &PrivateKey{key: priv}, nil
}

// PrivateKeyFromSeed will deterministically generate a private key from
// a given 32 byte seed. Use if you have a strong source of external
// randomness, or for deterministic keys in test cases.
func PrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, errors.Wrapf(errors.ErrInput, "seed must be %d bytes", ed25519.SeedSize)
	}
	return &PrivateKey{key: ed25519.NewKeyFromSeed(seed)}, nil
}

// DeriveForPath derives a private key from the master seed using the
// SLIP-0010 ed25519 derivation, for example path "m/44'/234'/0'".
func DeriveForPath(seed []byte, path string) (*PrivateKey, error) {
	k, err := derivation.DeriveForPath(path, seed)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "derive path %q: %s", path, err)
	}
	return PrivateKeyFromSeed(k.Key)
}

// DecodePrivateKey parses a hex encoded key. Both the 32 byte seed and the
// full 64 byte private key are accepted.
func DecodePrivateKey(hexKey string) (*PrivateKey, error) {
	raw, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, "cannot decode hex")
	}
	switch len(raw) {
	case ed25519.SeedSize:
		return PrivateKeyFromSeed(raw)
	case ed25519.PrivateKeySize:
		key := ed25519.NewKeyFromSeed(raw[:ed25519.SeedSize])
		if !bytes.Equal(key[ed25519.SeedSize:], raw[ed25519.SeedSize:]) {
			return nil, errors.Wrap(errors.ErrInput, "public key does not match the seed")
		}
		return &PrivateKey{key: key}, nil
	default:
		return nil, errors.Wrapf(errors.ErrInput, "invalid key length %d", len(raw))
	}
}

// Encode returns the hex representation of the full private key.
func (k *PrivateKey) Encode() string {
	return hex.EncodeToString(k.key)
}

// PublicKey returns the public part of this key.
func (k *PrivateKey) PublicKey() ed25519.PublicKey {
	return k.key.Public().(ed25519.PublicKey)
}

// Condition encodes the public key into a ledger condition.
func (k *PrivateKey) Condition() pausegov.Condition {
	return pausegov.NewCondition(ExtensionName, "ed25519", k.PublicKey())
}

// Address returns the address of the key condition.
func (k *PrivateKey) Address() pausegov.Address {
	return k.Condition().Address()
}
