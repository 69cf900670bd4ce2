package sigs

import "github.com/iov-one/paysplit/errors"

var (
	ErrInvalidSequence = errors.Register(1201, "invalid sequence number")
)
