package pausetest

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/iov-one/pausegov"
	"github.com/iov-one/pausegov/crypto"
)

// NewCondition returns the condition of a freshly generated ed25519 key.
func NewCondition() pausegov.Condition {
	key, err := crypto.GenPrivateKey()
	if err != nil {
		panic(err)
	}
	return key.Condition()
}

// RandomAddr returns a valid random address generated on the fly.
func RandomAddr(t testing.TB) pausegov.Address {
	t.Helper()
	raw := make([]byte, pausegov.AddressLength)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("cannot generate a random address: %s", err)
	}
	a := pausegov.Address(raw)
	if err := a.Validate(); err != nil {
		t.Fatalf("generated address is not valid: %s", err)
	}
	return a
}

// DecodeAddr takes a hex encoded address string and returns its raw
// representation. This function ensures that returned value is a valid
// address.
func DecodeAddr(t testing.TB, encoded string) pausegov.Address {
	t.Helper()
	raw, err := hex.DecodeString(encoded)
	if err != nil {
		t.Fatalf("cannot decode hex string: %s", err)
	}
	a := pausegov.Address(raw)
	if err := a.Validate(); err != nil {
		t.Fatalf("decoded string is not a valid address: %s", err)
	}
	return a
}

// SequenceID returns an ID encoded as if it was generated by the bucket
// sequence call.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
