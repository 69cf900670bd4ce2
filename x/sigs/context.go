package sigs

import (
	"context"

	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/errors"
)

type contextKey int // local to the sigs module

const (
	contextKeySigners contextKey = iota
)

// withSigners is a private method, as only this module
// can add a signer
func withSigners(ctx context.Context, signers []paysplit.Address) context.Context {
	return context.WithValue(ctx, contextKeySigners, signers)
}

// Authenticate returns a context carrying the addresses of all signers of
// the payload. The chain id is taken from the context. Sequences of all
// signers are incremented in db.
func Authenticate(ctx context.Context, db paysplit.KVStore, payload []byte, sigs []*StdSignature) (context.Context, error) {
	signers, err := VerifySignatures(db, payload, paysplit.GetChainID(ctx), sigs)
	if err != nil {
		return ctx, errors.Wrap(err, "cannot verify signatures")
	}
	paysplit.GetLogger(ctx).Debug("signatures verified", "signers", len(signers))
	return withSigners(ctx, signers), nil
}

// Authenticator reads the signers recorded in the context by Authenticate.
type Authenticator struct{}

// GetSigners returns who signed the current Context.
// May be empty
func (Authenticator) GetSigners(ctx context.Context) []paysplit.Address {
	// (val, ok) form to return nil instead of panic if unset
	val, _ := ctx.Value(contextKeySigners).([]paysplit.Address)
	return val
}

// HasAddress returns true if addr signed the current Context.
func (a Authenticator) HasAddress(ctx context.Context, addr paysplit.Address) bool {
	for _, s := range a.GetSigners(ctx) {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}
