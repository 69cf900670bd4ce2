package paysplit

import (
	"context"
	"regexp"

	"github.com/iov-one/paysplit/errors"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	// DefaultLogger is used for all context that have not set anything
	// themselves.
	DefaultLogger = log.NewNopLogger()

	// IsValidChainID is the RegExp to ensure valid chain IDs
	IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString
)

type contextKey int

const (
	contextKeyLogger contextKey = iota
	contextKeyChainID
)

// WithLogger sets the logger for this context.
func WithLogger(ctx context.Context, logger log.Logger) context.Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// WithLogInfo accepts keyvalue pairs, and returns another context like this,
// after passing all the keyvals to the Logger.
func WithLogInfo(ctx context.Context, keyvals ...interface{}) context.Context {
	logger := GetLogger(ctx).With(keyvals...)
	return WithLogger(ctx, logger)
}

// GetLogger returns the currently set logger, or DefaultLogger if none was
// set.
func GetLogger(ctx context.Context) log.Logger {
	val, _ := ctx.Value(contextKeyLogger).(log.Logger)
	if val == nil {
		return DefaultLogger
	}
	return val
}

// WithChainID sets the chain id for the Context. Signatures are bound to the
// chain id, so that they cannot be replayed on another network.
func WithChainID(ctx context.Context, chainID string) (context.Context, error) {
	if !IsValidChainID(chainID) {
		return ctx, errors.Wrapf(errors.ErrInput, "chain id %q", chainID)
	}
	return context.WithValue(ctx, contextKeyChainID, chainID), nil
}

// GetChainID returns the chain id set on the context, or an empty string.
func GetChainID(ctx context.Context) string {
	val, _ := ctx.Value(contextKeyChainID).(string)
	return val
}
