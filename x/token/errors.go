package token

import "github.com/iov-one/paysplit/errors"

var (
	// ErrMintMismatch is returned when moving funds between accounts that
	// hold different assets.
	ErrMintMismatch = errors.Register(1101, "mint mismatch")
)
