package splittest

import (
	"context"
	"fmt"

	"github.com/iov-one/paysplit"
)

// Auth is a mock implementing split.Authenticator interface.
//
// This structure authenticates any of referenced addresses. You can use
// either Signer or Signers (or both) attributes to reference addresses.
type Auth struct {
	// Signer represents an authentication of a single signer.
	Signer paysplit.Address

	// Signers represents an authentication of multiple signers.
	Signers []paysplit.Address
}

func (a *Auth) HasAddress(ctx context.Context, addr paysplit.Address) bool {
	for _, s := range a.Signers {
		if addr.Equals(s) {
			return true
		}
	}
	if a.Signer == nil {
		return false
	}
	return addr.Equals(a.Signer)
}

// CtxAuth is a mock implementing split.Authenticator interface.
//
// This implementation is using context to store and retrieve permissions.
type CtxAuth struct {
	// Key used to set and retrieve addresses from the context. For
	// convinience only string type keys are allowed.
	Key string
}

func (a *CtxAuth) SetAddresses(ctx context.Context, addrs ...paysplit.Address) context.Context {
	return context.WithValue(ctx, a.Key, addrs)
}

func (a *CtxAuth) GetAddresses(ctx context.Context) []paysplit.Address {
	val := ctx.Value(a.Key)
	if val == nil {
		return nil
	}
	addrs, ok := val.([]paysplit.Address)
	if !ok {
		panic(fmt.Sprintf("instead of []paysplit.Address got %T", val))
	}
	return addrs
}

func (a *CtxAuth) HasAddress(ctx context.Context, addr paysplit.Address) bool {
	for _, s := range a.GetAddresses(ctx) {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}
