package split

import (
	"github.com/holiman/uint256"
	"github.com/iov-one/paysplit/coin"
	"github.com/iov-one/paysplit/errors"
)

// computeAmounts returns the amount each destination receives and the total
// the payer was asked to distribute. It expects validated amounts.
func computeAmounts(spec AmountSpec) ([]uint64, uint64, error) {
	switch s := spec.(type) {
	case Fixed:
		total, err := coin.Sum(s...)
		if err != nil {
			return nil, 0, err
		}
		amounts := make([]uint64, len(s))
		copy(amounts, s)
		return amounts, total, nil
	case *Proportional:
		amounts, err := proportionalAmounts(s.Total, s.Weights, s.Denominator)
		return amounts, s.Total, err
	default:
		return nil, 0, errors.Wrapf(errors.ErrType, "amounts %T", spec)
	}
}

// proportionalAmounts computes floor(total * weight / denominator) for each
// weight. A zero denominator is replaced by the sum of all weights, computed
// without overflow.
//
// Rounding loss is not redistributed, so the sum of all amounts is never
// greater than the total.
func proportionalAmounts(total uint64, weights []uint64, denominator uint64) ([]uint64, error) {
	denom := uint256.NewInt(denominator)
	if denominator == 0 {
		denom = coin.WideSum(weights...)
	}
	if denom.IsZero() {
		return nil, errors.Wrap(ErrInvalidWeightSum, "zero denominator")
	}

	amounts := make([]uint64, len(weights))
	for i, w := range weights {
		a, err := coin.MulDivWide(total, w, denom)
		if err != nil {
			return nil, errors.Wrapf(err, "weight %d", i)
		}
		amounts[i] = a
	}
	return amounts, nil
}
