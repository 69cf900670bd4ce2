package split

import (
	"context"

	"github.com/iov-one/paysplit"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. It must fail closed: an address that cannot be proven
// returns false.
type Authenticator interface {
	// HasAddress checks if the given address has authorized the call.
	HasAddress(ctx context.Context, addr paysplit.Address) bool
}

// Transferrer moves amount from source to destination. Authority is the
// address that authorized the movement.
//
// A Transferrer is a black box for the engine. Any returned error aborts
// the split.
type Transferrer interface {
	Transfer(ctx context.Context, source, destination, authority paysplit.Address, amount uint64) error
}

// TokenProgram is a Transferrer for fungible assets that can also describe
// its token accounts.
type TokenProgram interface {
	Transferrer

	// AccountInfo returns the owner and the mint of a token account.
	// errors.ErrNotFound is returned if the account does not exist.
	AccountInfo(ctx context.Context, account paysplit.Address) (owner, mint paysplit.Address, err error)
}

// MultiAuth chains together many Authenticators into one.
func MultiAuth(authenticators ...Authenticator) Authenticator {
	return multiAuth(authenticators)
}

type multiAuth []Authenticator

func (m multiAuth) HasAddress(ctx context.Context, addr paysplit.Address) bool {
	for _, a := range m {
		if a.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}
