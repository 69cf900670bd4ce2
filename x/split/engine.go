package split

import (
	"context"

	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/coin"
	"github.com/iov-one/paysplit/errors"
)

// Engine executes splits. It keeps no state between invocations and can be
// shared as long as every invocation uses its own transfer collaborators.
type Engine struct {
	auth   Authenticator
	native Transferrer
	conf   Configuration
}

// NewEngine returns an engine that authorizes payers with auth and moves
// native currency with native. A nil native Transferrer disables native
// splits.
func NewEngine(auth Authenticator, native Transferrer, conf Configuration) *Engine {
	return &Engine{
		auth:   auth,
		native: native,
		conf:   conf,
	}
}

// FixedSplit transfers amounts[i] to destinations[i].
func (e *Engine) FixedSplit(
	ctx context.Context,
	payer paysplit.Address,
	asset AssetMode,
	destinations []Destination,
	amounts []uint64,
) (*Receipt, error) {
	return e.Execute(ctx, &Request{
		Payer:        payer,
		Asset:        asset,
		Destinations: destinations,
		Amounts:      Fixed(amounts),
	})
}

// ProportionalSplit transfers floor(total * weights[i] / sum(weights)) to
// destinations[i].
func (e *Engine) ProportionalSplit(
	ctx context.Context,
	payer paysplit.Address,
	asset AssetMode,
	destinations []Destination,
	weights []uint64,
	total uint64,
) (*Receipt, error) {
	return e.Execute(ctx, &Request{
		Payer:        payer,
		Asset:        asset,
		Destinations: destinations,
		Amounts:      &Proportional{Total: total, Weights: weights},
	})
}

// PercentageSplit transfers floor(total * percentages[i] / 100) to
// destinations[i]. Percentages must not sum to more than 100.
func (e *Engine) PercentageSplit(
	ctx context.Context,
	payer paysplit.Address,
	asset AssetMode,
	destinations []Destination,
	percentages []uint64,
	total uint64,
) (*Receipt, error) {
	return e.Execute(ctx, &Request{
		Payer:        payer,
		Asset:        asset,
		Destinations: destinations,
		Amounts: &Proportional{
			Total:       total,
			Weights:     percentages,
			Denominator: PercentDenominator,
		},
	})
}

// Validate returns the first reason the request cannot be executed. It has
// no side effects.
func (e *Engine) Validate(ctx context.Context, req *Request) error {
	if err := validate(ctx, e.conf, req); err != nil {
		return err
	}
	_, err := e.transferrer(req.Asset)
	return err
}

// Plan validates the request and returns the transfers it would issue,
// without issuing any of them.
func (e *Engine) Plan(ctx context.Context, req *Request) ([]TransferInstruction, error) {
	if err := e.Validate(ctx, req); err != nil {
		return nil, err
	}
	amounts, _, err := computeAmounts(req.Amounts)
	if err != nil {
		return nil, errors.Wrap(err, "cannot compute amounts")
	}
	return instructions(req, amounts), nil
}

// Execute authorizes the payer, validates the request and issues all
// transfers in order. The first failing transfer stops the split and a
// TransferError is returned. Transfers that already happened are not
// reverted.
func (e *Engine) Execute(ctx context.Context, req *Request) (*Receipt, error) {
	if req == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "request")
	}
	if e.auth == nil || !e.auth.HasAddress(ctx, req.Payer) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "payer %s", req.Payer)
	}
	if err := e.Validate(ctx, req); err != nil {
		return nil, err
	}
	amounts, total, err := computeAmounts(req.Amounts)
	if err != nil {
		return nil, errors.Wrap(err, "cannot compute amounts")
	}
	transfer, _ := e.transferrer(req.Asset)
	instrs := instructions(req, amounts)

	logger := paysplit.GetLogger(ctx).With("payer", req.Payer.String())
	var distributed uint64
	for _, in := range instrs {
		if err := ctx.Err(); err != nil {
			logger.Error("split canceled", "index", in.Index, "err", err)
			return nil, &TransferError{Index: in.Index, Err: errors.Wrap(errors.ErrCanceled, err.Error())}
		}
		if err := transfer.Transfer(ctx, in.Source, in.Destination, in.Authority, in.Amount); err != nil {
			logger.Error("transfer failed", "index", in.Index, "destination", in.Destination.String(), "err", err)
			return nil, &TransferError{Index: in.Index, Err: err}
		}
		logger.Debug("transfer", "index", in.Index, "destination", in.Destination.String(), "amount", in.Amount)
		// Cannot overflow, the sum is never greater than the total.
		distributed += in.Amount
	}

	residual, err := coin.Sub(total, distributed)
	if err != nil {
		return nil, errors.Wrap(err, "distributed more than total")
	}
	logger.Info("split executed", "destinations", len(instrs), "distributed", distributed, "residual", residual)
	return &Receipt{
		Instructions: instrs,
		Total:        total,
		Distributed:  distributed,
		Residual:     residual,
	}, nil
}

// transferrer returns the transfer primitive for the given asset mode.
func (e *Engine) transferrer(asset AssetMode) (Transferrer, error) {
	if f, ok := asset.(*Fungible); ok {
		return f.Program, nil
	}
	if e.native == nil {
		return nil, errors.Wrap(errors.ErrState, "native currency transfers not supported")
	}
	return e.native, nil
}

func instructions(req *Request, amounts []uint64) []TransferInstruction {
	instrs := make([]TransferInstruction, len(amounts))
	f, fungible := req.Asset.(*Fungible)
	for i, amount := range amounts {
		in := TransferInstruction{
			Index:     i,
			Source:    req.Payer,
			Authority: req.Payer,
			Amount:    amount,
		}
		if fungible {
			in.Source = f.FundingAccount
			in.Destination = req.Destinations[i].TokenAccount
		} else {
			in.Destination = req.Destinations[i].Address
		}
		instrs[i] = in
	}
	return instrs
}
