package split

import (
	"context"

	"github.com/holiman/uint256"
	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/coin"
	"github.com/iov-one/paysplit/errors"
)

// validate checks that the request can be executed. It does not modify any
// state. The only external calls are read only token account lookups.
func validate(ctx context.Context, conf Configuration, req *Request) error {
	if req == nil {
		return errors.Wrap(errors.ErrEmpty, "request")
	}
	if req.Amounts == nil {
		return errors.Field("Amounts", errors.ErrEmpty, "required")
	}
	if n, m := len(req.Destinations), req.Amounts.entries(); n != m {
		return errors.Wrapf(ErrLengthMismatch, "%d destinations, %d amount entries", n, m)
	}
	if n := len(req.Destinations); n > conf.MaxDestinations {
		return errors.Field("Destinations", errors.ErrInput, "too many destinations: %d > %d", n, conf.MaxDestinations)
	}
	if err := req.Payer.Validate(); err != nil {
		return errors.Field("Payer", err, "invalid payer")
	}

	switch a := req.Amounts.(type) {
	case Fixed:
		if _, err := coin.Sum(a...); err != nil {
			return errors.Field("Amounts", err, "cannot sum amounts")
		}
	case *Proportional:
		if err := validateWeights(a); err != nil {
			return err
		}
	default:
		return errors.Wrapf(errors.ErrType, "amounts %T", req.Amounts)
	}

	switch a := req.Asset.(type) {
	case nil, Native, *Native:
		return validateNative(req.Destinations)
	case *Fungible:
		if a == nil {
			return errors.Wrap(ErrMissingAssetContext, "fungible asset")
		}
		if err := validateFungible(a, req.Destinations); err != nil {
			return err
		}
		return validateFundingAccount(ctx, a, req.Payer)
	default:
		return errors.Wrapf(errors.ErrType, "asset %T", req.Asset)
	}
}

func validateWeights(p *Proportional) error {
	// Only existing weights are summed.
	sum := coin.WideSum(p.Weights...)
	if sum.IsZero() {
		return errors.Wrap(ErrInvalidWeightSum, "weight sum must be greater than zero")
	}
	if p.Denominator != 0 && sum.Gt(uint256.NewInt(p.Denominator)) {
		return errors.Wrapf(ErrInvalidWeightSum, "weight sum %s exceeds %d", sum.ToBig(), p.Denominator)
	}
	return nil
}

func validateNative(dests []Destination) error {
	var errs error
	for i, d := range dests {
		errs = errors.AppendField(errs, errors.Path("Destinations", i, "Address"), addressErr(d.Address))
	}
	return errs
}

func validateFungible(f *Fungible, dests []Destination) error {
	var errs error
	errs = errors.AppendField(errs, "FundingAccount", addressErr(f.FundingAccount))
	errs = errors.AppendField(errs, "Mint", addressErr(f.Mint))
	if f.Program == nil {
		errs = errors.AppendField(errs, "Program", ErrMissingAssetContext)
	}
	for i, d := range dests {
		errs = errors.AppendField(errs, errors.Path("Destinations", i, "TokenAccount"), addressErr(d.TokenAccount))
	}
	return errs
}

// addressErr returns ErrMissingAssetContext for an absent address and
// ErrInput for a malformed one.
func addressErr(a paysplit.Address) error {
	if a.IsEmpty() {
		return ErrMissingAssetContext
	}
	return a.Validate()
}

func validateFundingAccount(ctx context.Context, f *Fungible, payer paysplit.Address) error {
	owner, mint, err := f.Program.AccountInfo(ctx, f.FundingAccount)
	if err != nil {
		return errors.Wrapf(err, "funding account %s", f.FundingAccount)
	}
	if !owner.Equals(payer) {
		return errors.Wrapf(errors.ErrUnauthorized, "funding account %s is owned by %s", f.FundingAccount, owner)
	}
	if !mint.Equals(f.Mint) {
		return errors.Wrapf(ErrAssetMismatch, "funding account holds %s, not %s", mint, f.Mint)
	}
	return nil
}
