package pausetest

import (
	"context"
	"fmt"

	"github.com/iov-one/pausegov"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of referenced conditions.
// You can use either Signer or Signers (or both) attributes to reference
// conditions. Each time all signers (regardless which attribute) are
// considered and Signer always comes first, so it is the main signer.
type Auth struct {
	// Signer represents an authentication of a single signer.
	Signer pausegov.Condition

	// Signers represents an authentication of multiple signers.
	Signers []pausegov.Condition
}

func (a *Auth) GetConditions(pausegov.Context) []pausegov.Condition {
	if a.Signer == nil {
		return a.Signers
	}
	conds := make([]pausegov.Condition, 0, len(a.Signers)+1)
	conds = append(conds, a.Signer)
	return append(conds, a.Signers...)
}

func (a *Auth) HasAddress(ctx pausegov.Context, addr pausegov.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve permissions.
type CtxAuth struct {
	// Key used to set and retrieve conditions from the context. For
	// convenience only string type keys are allowed.
	Key string
}

func (a *CtxAuth) SetConditions(ctx pausegov.Context, permissions ...pausegov.Condition) pausegov.Context {
	return context.WithValue(ctx, a.Key, permissions)
}

func (a *CtxAuth) GetConditions(ctx pausegov.Context) []pausegov.Condition {
	val := ctx.Value(a.Key)
	if val == nil {
		return nil
	}
	conds, ok := val.([]pausegov.Condition)
	if !ok {
		panic(fmt.Sprintf("instead of []pausegov.Condition got %T", val))
	}
	return conds
}

func (a *CtxAuth) HasAddress(ctx pausegov.Context, addr pausegov.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
