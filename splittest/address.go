package splittest

import (
	"encoding/binary"
	"sync/atomic"
	"testing"

	"github.com/iov-one/paysplit"
)

var addressSeq uint64

// NewAddress returns a new, unique, valid address.
func NewAddress() paysplit.Address {
	var data [8]byte
	binary.BigEndian.PutUint64(data[:], atomic.AddUint64(&addressSeq, 1))
	return paysplit.DeriveAddress("test", "addr", data[:])
}

// ParseAddress takes an address in a human readable format and returns its
// binary representation. This function is a test helper that is using
// paysplit.ParseAddress function functionality.
func ParseAddress(t testing.TB, encodedAddress string) paysplit.Address {
	t.Helper()

	addr, err := paysplit.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}
