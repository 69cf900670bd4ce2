package split

import (
	"github.com/iov-one/paysplit"
)

// Denominator used by percentage splits.
const PercentDenominator = 100

// AssetMode selects what is being distributed. It is either Native or
// Fungible. A nil AssetMode is Native.
type AssetMode interface {
	isAssetMode()
}

// Native distributes the base currency. Funds are moved from the payer
// address directly to each destination address.
type Native struct{}

func (Native) isAssetMode() {}

// Fungible distributes a token. Funds are moved from FundingAccount, a
// token account owned by the payer and holding Mint, to the TokenAccount of
// each destination, using Program.
type Fungible struct {
	FundingAccount paysplit.Address
	Mint           paysplit.Address
	Program        TokenProgram
}

func (*Fungible) isAssetMode() {}

// Destination is a single recipient of a split.
type Destination struct {
	// Address receives native currency transfers.
	Address paysplit.Address `json:"address"`
	// TokenAccount receives fungible asset transfers.
	TokenAccount paysplit.Address `json:"token_account,omitempty"`
}

// AmountSpec describes how much every destination receives. It is either
// Fixed or Proportional.
type AmountSpec interface {
	// entries returns the number of amount entries, to be matched with
	// destinations.
	entries() int
}

// Fixed is a list of explicit amounts, one per destination.
type Fixed []uint64

func (f Fixed) entries() int { return len(f) }

// Proportional shares Total between destinations according to their
// weights. A destination receives floor(Total * weight / Denominator). A
// zero Denominator means the sum of all weights.
type Proportional struct {
	Total       uint64
	Weights     []uint64
	Denominator uint64
}

func (p *Proportional) entries() int { return len(p.Weights) }

// Request is a single split invocation.
type Request struct {
	Payer        paysplit.Address
	Asset        AssetMode
	Destinations []Destination
	Amounts      AmountSpec
}

// Destinations returns a native mode destination list for given addresses.
func Destinations(addrs ...paysplit.Address) []Destination {
	dests := make([]Destination, len(addrs))
	for i, a := range addrs {
		dests[i] = Destination{Address: a}
	}
	return dests
}

// TransferInstruction is a single computed transfer. Index is the position
// of the destination in the request.
type TransferInstruction struct {
	Index       int              `json:"index"`
	Source      paysplit.Address `json:"source"`
	Destination paysplit.Address `json:"destination"`
	Authority   paysplit.Address `json:"authority"`
	Amount      uint64           `json:"amount"`
}

// Receipt describes an executed split.
type Receipt struct {
	Instructions []TransferInstruction `json:"instructions"`
	// Total is the amount the payer was asked to distribute. For fixed
	// splits it is the sum of all amounts.
	Total uint64 `json:"total"`
	// Distributed is the sum of all transferred amounts.
	Distributed uint64 `json:"distributed"`
	// Residual is Total - Distributed, the rounding loss of a
	// proportional split that stays with the payer.
	Residual uint64 `json:"residual"`
}
