package x

import (
	"context"

	"github.com/iov-one/pausegov"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of
// handlers, so we can plug in another authentication system.
type Authenticator interface {
	// GetConditions reveals all Conditions fulfilled,
	// you may want GetAddresses helper
	GetConditions(pausegov.Context) []pausegov.Condition
	// HasAddress checks if any condition matches this address
	HasAddress(pausegov.Context, pausegov.Address) bool
}

// Validater is any struct that can be validated.
// Not the same as a Validator, which votes on the blocks.
type Validater interface {
	Validate() error
}

// MultiAuth chains together many Authenticators into one
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticator
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetConditions combines all Conditions from all Authenticators
func (m MultiAuth) GetConditions(ctx pausegov.Context) []pausegov.Condition {
	var res []pausegov.Condition
	for _, impl := range m.impls {
		add := impl.GetConditions(ctx)
		if len(add) > 0 {
			res = append(res, add...)
		}
	}
	return res
}

// HasAddress returns true iff any Authenticator support this
func (m MultiAuth) HasAddress(ctx pausegov.Context, addr pausegov.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// GetAddresses wraps the GetConditions method of any Authenticator
func GetAddresses(ctx pausegov.Context, auth Authenticator) []pausegov.Address {
	perms := auth.GetConditions(ctx)
	addrs := make([]pausegov.Address, len(perms))
	for i, p := range perms {
		addrs[i] = p.Address()
	}
	return addrs
}

// MainSigner returns the first permission if any, otherwise nil
func MainSigner(ctx pausegov.Context, auth Authenticator) pausegov.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// HasAllAddresses returns true if all elements in required are
// also in context.
func HasAllAddresses(ctx pausegov.Context, auth Authenticator, required []pausegov.Address) bool {
	for _, r := range required {
		if !auth.HasAddress(ctx, r) {
			return false
		}
	}
	return true
}

type callerKey struct{}

// CallerAuth reveals the caller identity that the ledger host attached to
// the context. The host is trusted to attach only verified identities.
type CallerAuth struct{}

var _ Authenticator = CallerAuth{}

// WithCaller attaches the conditions of the verified caller to the context.
// The first condition is the main signer.
func WithCaller(ctx pausegov.Context, conds ...pausegov.Condition) pausegov.Context {
	return context.WithValue(ctx, callerKey{}, conds)
}

// GetConditions returns the conditions attached with WithCaller.
func (CallerAuth) GetConditions(ctx pausegov.Context) []pausegov.Condition {
	conds, _ := ctx.Value(callerKey{}).([]pausegov.Condition)
	return conds
}

// HasAddress returns true if any attached condition has the given address.
func (a CallerAuth) HasAddress(ctx pausegov.Context, addr pausegov.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
