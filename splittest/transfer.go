package splittest

import (
	"context"
	"sync"

	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/errors"
)

// ErrFault is returned by a Transferrer configured to fail.
var ErrFault = errors.ErrHuman.New("injected transfer fault")

// Call is a single recorded Transfer call.
type Call struct {
	Source      paysplit.Address
	Destination paysplit.Address
	Authority   paysplit.Address
	Amount      uint64
}

// Transferrer is a mock implementing split.Transferrer interface. It
// records every call, in order, and can be configured to fail.
//
// Transferrer is safe for concurrent use.
type Transferrer struct {
	// FailAt is the number of the call (counting from zero) that fails.
	// Negative value disables failures. Use NewTransferrer to get an
	// instance that never fails.
	FailAt int
	// Err is returned by the failing call. ErrFault is used if not set.
	Err error

	mu       sync.Mutex
	attempts int
	calls    []Call
}

// NewTransferrer returns a transferrer that never fails.
func NewTransferrer() *Transferrer {
	return &Transferrer{FailAt: -1}
}

// FailingTransferrer returns a transferrer whose call number n (counting
// from zero) fails.
func FailingTransferrer(n int) *Transferrer {
	return &Transferrer{FailAt: n}
}

func (t *Transferrer) Transfer(ctx context.Context, src, dst, authority paysplit.Address, amount uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.attempts++
	if t.attempts-1 == t.FailAt {
		if t.Err != nil {
			return t.Err
		}
		return ErrFault
	}
	t.calls = append(t.calls, Call{
		Source:      src,
		Destination: dst,
		Authority:   authority,
		Amount:      amount,
	})
	return nil
}

// Calls returns all successful calls in the order they were made.
func (t *Transferrer) Calls() []Call {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Call(nil), t.calls...)
}

// Attempts returns the number of Transfer calls, including failed ones.
func (t *Transferrer) Attempts() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.attempts
}
