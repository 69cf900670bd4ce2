/*
Package coin implements overflow safe arithmetic on integer amounts.

All amounts are expressed in the smallest indivisible unit of an asset (for
example lamports or token base units) and are stored as uint64 values.
*/
package coin

import (
	"github.com/holiman/uint256"
	"github.com/iov-one/paysplit/errors"
)

// Add returns the sum of two amounts. ErrOverflow is returned if the result
// does not fit into uint64.
func Add(a, b uint64) (uint64, error) {
	c := a + b
	if c < a {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d + %d", a, b)
	}
	return c, nil
}

// Sub returns a - b. ErrInsufficientAmount is returned if b is greater than a.
func Sub(a, b uint64) (uint64, error) {
	if b > a {
		return 0, errors.Wrapf(errors.ErrInsufficientAmount, "%d - %d", a, b)
	}
	return a - b, nil
}

// Sum returns the sum of all given amounts. ErrOverflow is returned if the
// result does not fit into uint64.
func Sum(values ...uint64) (uint64, error) {
	var total uint64
	for _, v := range values {
		var err error
		if total, err = Add(total, v); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// WideSum returns the exact sum of all given amounts. It never overflows.
func WideSum(values ...uint64) *uint256.Int {
	sum := new(uint256.Int)
	for _, v := range values {
		sum.Add(sum, uint256.NewInt(v))
	}
	return sum
}

// MulDiv returns floor(a * b / c).
//
// The product is computed using a 256 bit intermediate value and can never
// overflow. ErrOverflow is returned only when the final result does not fit
// into uint64. Division by zero returns ErrInput.
func MulDiv(a, b, c uint64) (uint64, error) {
	return MulDivWide(a, b, uint256.NewInt(c))
}

// MulDivWide is MulDiv with a 256 bit divisor, for example a WideSum.
func MulDivWide(a, b uint64, c *uint256.Int) (uint64, error) {
	if c.IsZero() {
		return 0, errors.Wrap(errors.ErrInput, "division by zero")
	}
	x := new(uint256.Int).Mul(uint256.NewInt(a), uint256.NewInt(b))
	x.Div(x, c)
	if !x.IsUint64() {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d * %d / %s", a, b, c.ToBig())
	}
	return x.Uint64(), nil
}
