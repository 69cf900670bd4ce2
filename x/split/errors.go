package split

import (
	"fmt"

	"github.com/iov-one/paysplit/errors"
)

var (
	// ErrLengthMismatch is returned when the number of destinations is
	// different from the number of amount or weight entries.
	ErrLengthMismatch = errors.Register(1001, "length mismatch")

	// ErrInvalidWeightSum is returned when proportional weights cannot
	// be used to compute shares.
	ErrInvalidWeightSum = errors.Register(1002, "invalid weight sum")

	// ErrMissingAssetContext is returned when the accounts required by the
	// selected asset mode are not provided.
	ErrMissingAssetContext = errors.Register(1003, "missing asset context")

	// ErrAssetMismatch is returned when the funding account holds a
	// different asset than declared.
	ErrAssetMismatch = errors.Register(1004, "asset mismatch")

	// ErrTransferFailed is the kind of every TransferError.
	ErrTransferFailed = errors.Register(1005, "transfer failed")
)

// TransferError is returned when a single transfer of a split fails. Index
// is the position of the destination that was not paid. All destinations
// before it were paid, none after it was attempted.
type TransferError struct {
	Index int
	Err   error
}

var _ error = (*TransferError)(nil)

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer %d: %s: %s", e.Index, ErrTransferFailed.Error(), e.Err)
}

// Cause returns the error returned by the transfer primitive.
func (e *TransferError) Cause() error {
	return e.Err
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// Is allows ErrTransferFailed.Is to match this error.
func (e *TransferError) Is(target error) bool {
	return target == ErrTransferFailed
}

func (e *TransferError) Code() uint32 {
	return ErrTransferFailed.Code()
}

// FailedIndex returns the position of the failed transfer if err was
// caused by a TransferError.
func FailedIndex(err error) (int, bool) {
	for err != nil {
		if te, ok := err.(*TransferError); ok {
			return te.Index, true
		}
		c, ok := err.(interface{ Cause() error })
		if !ok {
			return 0, false
		}
		err = c.Cause()
	}
	return 0, false
}
