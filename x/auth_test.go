package x

import (
	"context"
	"testing"

	"github.com/iov-one/pausegov"
	"github.com/stretchr/testify/assert"
)

func TestCallerAuth(t *testing.T) {
	a := pausegov.NewCondition("sigs", "ed25519", []byte("alice"))
	b := pausegov.NewCondition("sigs", "ed25519", []byte("bob"))
	c := pausegov.NewCondition("sigs", "ed25519", []byte("carol"))

	auth := CallerAuth{}
	bg := context.Background()
	assert.Nil(t, MainSigner(bg, auth))
	assert.False(t, auth.HasAddress(bg, a.Address()))

	ctx := WithCaller(bg, a, b)
	assert.Equal(t, a, MainSigner(ctx, auth))
	assert.True(t, auth.HasAddress(ctx, b.Address()))
	assert.False(t, auth.HasAddress(ctx, c.Address()))
	assert.Equal(t, []pausegov.Address{a.Address(), b.Address()}, GetAddresses(ctx, auth))

	assert.True(t, HasAllAddresses(ctx, auth, []pausegov.Address{a.Address(), b.Address()}))
	assert.False(t, HasAllAddresses(ctx, auth, []pausegov.Address{a.Address(), c.Address()}))
}

type staticAuth []pausegov.Condition

func (s staticAuth) GetConditions(pausegov.Context) []pausegov.Condition { return s }

func (s staticAuth) HasAddress(_ pausegov.Context, addr pausegov.Address) bool {
	for _, c := range s {
		if c.Address().Equals(addr) {
			return true
		}
	}
	return false
}

func TestChainAuth(t *testing.T) {
	a := pausegov.NewCondition("sigs", "ed25519", []byte("alice"))
	b := pausegov.NewCondition("sigs", "ed25519", []byte("bob"))

	ctx := WithCaller(context.Background(), a)
	auth := ChainAuth(CallerAuth{}, staticAuth{b})

	assert.Equal(t, []pausegov.Condition{a, b}, auth.GetConditions(ctx))
	assert.True(t, auth.HasAddress(ctx, a.Address()))
	assert.True(t, auth.HasAddress(ctx, b.Address()))
	assert.False(t, auth.HasAddress(ctx, pausegov.NewCondition("sigs", "ed25519", []byte("x")).Address()))
}
