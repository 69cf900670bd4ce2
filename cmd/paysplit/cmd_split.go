package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/crypto"
	"github.com/iov-one/paysplit/store"
	"github.com/iov-one/paysplit/x/cash"
	"github.com/iov-one/paysplit/x/sigs"
	"github.com/iov-one/paysplit/x/split"
	"github.com/iov-one/paysplit/x/token"
	"github.com/tendermint/tendermint/libs/log"
)

func cmdSplit(input io.Reader, output io.Writer, args []string) error {
	return localSplit(input, output, args, fixedMode, `
Split funds between destinations, sending each destination the exact amount
given next to it.

Destinations are read from the standard input, one "address,amount" pair per
line. Initial balances are loaded from the genesis file. The split is signed
with your private key and executed atomically: either all destinations are
paid or the state is left unchanged.
`)
}

func cmdSplitWeights(input io.Reader, output io.Writer, args []string) error {
	return localSplit(input, output, args, weightsMode, `
Split the total between destinations proportionally to their weights. Each
destination receives floor(total * weight / sum of weights). The rounding
residual stays with the payer.

Destinations are read from the standard input, one "address,weight" pair per
line.
`)
}

func cmdSplitPercent(input io.Reader, output io.Writer, args []string) error {
	return localSplit(input, output, args, percentMode, `
Split the total between destinations by percentage. Each destination receives
floor(total * percent / 100). Percentages must not sum to more than 100.

Destinations are read from the standard input, one "address,percent" pair per
line.
`)
}

type splitMode string

const (
	fixedMode   splitMode = "fixed"
	weightsMode splitMode = "weights"
	percentMode splitMode = "percent"
)

// splitPayload is the signed representation of a split.
type splitPayload struct {
	Mode         splitMode          `json:"mode"`
	Payer        paysplit.Address   `json:"payer"`
	Destinations []paysplit.Address `json:"destinations"`
	Values       []uint64           `json:"values"`
	Total        uint64             `json:"total,omitempty"`
	Mint         paysplit.Address   `json:"mint,omitempty"`
	Funding      paysplit.Address   `json:"funding,omitempty"`
}

// splitResult is printed when a split succeeds.
type splitResult struct {
	Receipt  *split.Receipt              `json:"receipt,omitempty"`
	Plan     []split.TransferInstruction `json:"plan,omitempty"`
	Balances map[string]uint64           `json:"balances,omitempty"`
}

func localSplit(input io.Reader, output io.Writer, args []string, mode splitMode, usage string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", env("PAYSPLIT_PRIV_KEY", os.Getenv("HOME")+"/.paysplit.priv.key"),
			"Path to the private key file of the payer. You can use PAYSPLIT_PRIV_KEY environment variable to set it.")
		genesisFl = fl.String("genesis", env("PAYSPLIT_GENESIS", "genesis.json"),
			"Path to the genesis file with initial balances and configuration.")
		chainIDFl = fl.String("chain-id", env("PAYSPLIT_CHAIN_ID", "paysplit-local"),
			"Chain ID the split is signed for.")
		totalFl   = fl.Uint64("total", 0, "Total amount to distribute. Required for weights and percent splits.")
		mintFl    = flAddress(fl, "mint", "", "Mint of the distributed token. Native currency is distributed if not set.")
		fundingFl = flAddress(fl, "funding", "", "Token account of the payer that funds the split. Required together with -mint.")
		dryRunFl  = fl.Bool("dry-run", false, "Print the transfers that would be made without executing them.")
		logLevFl  = fl.String("log-level", "error", "Log level: debug, info, error or none.")
	)
	fl.Parse(args)

	if mode == fixedMode && *totalFl != 0 {
		flagDie("-total cannot be used with fixed amounts")
	}
	logger, err := newLogger(*logLevFl)
	if err != nil {
		flagDie("invalid -log-level: %s", err)
	}

	rows, err := readRows(input)
	if err != nil {
		return err
	}
	gen, err := paysplit.LoadGenesis(*genesisFl)
	if err != nil {
		return fmt.Errorf("cannot load genesis: %s", err)
	}
	conf, err := split.LoadConfiguration(gen.AppOptions)
	if err != nil {
		return err
	}
	db := store.MemStore()
	if err := paysplit.ChainInitializers(cash.Initializer{}, token.Initializer{}).FromGenesis(gen.AppOptions, db); err != nil {
		return fmt.Errorf("cannot initialize state: %s", err)
	}
	key, err := crypto.LoadPrivateKey(*keyPathFl)
	if err != nil {
		return fmt.Errorf("cannot load private key: %s", err)
	}

	payload := splitPayload{
		Mode:    mode,
		Payer:   key.PublicKey().Address(),
		Values:  rowValues(rows),
		Total:   *totalFl,
		Mint:    *mintFl,
		Funding: *fundingFl,
	}
	for _, r := range rows {
		payload.Destinations = append(payload.Destinations, r.Destination)
	}

	ctx := paysplit.WithLogger(context.Background(), logger)
	ctx, err = paysplit.WithChainID(ctx, *chainIDFl)
	if err != nil {
		return err
	}

	var res splitResult
	err = split.Atomic(db, func(kv paysplit.KVStore) error {
		req := payload.request(token.NewProgram(token.NewController(token.NewBucket()), kv))
		engine := split.NewEngine(sigs.Authenticator{}, cash.NewLedger(cash.NewController(cash.NewBucket()), kv), conf)

		if *dryRunFl {
			plan, err := engine.Plan(ctx, req)
			res.Plan = plan
			return err
		}

		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("cannot serialize split: %s", err)
		}
		seq, err := sigs.NextSequence(kv, payload.Payer)
		if err != nil {
			return err
		}
		sig, err := sigs.Sign(key, raw, *chainIDFl, seq)
		if err != nil {
			return fmt.Errorf("cannot sign split: %s", err)
		}
		ctx, err := sigs.Authenticate(ctx, kv, raw, []*sigs.StdSignature{sig})
		if err != nil {
			return err
		}

		if res.Receipt, err = engine.Execute(ctx, req); err != nil {
			return err
		}
		res.Balances, err = payload.balances(kv)
		return err
	})
	if err != nil {
		if index, ok := split.FailedIndex(err); ok {
			return fmt.Errorf("split aborted at destination %d, no funds were moved: %s", index, err)
		}
		return fmt.Errorf("cannot split: %s", err)
	}

	enc := json.NewEncoder(output)
	enc.SetIndent("", "\t")
	return enc.Encode(res)
}

// request returns the split request described by the payload. Token
// transfers are made using the given program.
func (p *splitPayload) request(program split.TokenProgram) *split.Request {
	req := &split.Request{Payer: p.Payer}
	fungible := len(p.Mint) != 0 || len(p.Funding) != 0
	if fungible {
		req.Asset = &split.Fungible{
			FundingAccount: p.Funding,
			Mint:           p.Mint,
			Program:        program,
		}
	}
	for _, d := range p.Destinations {
		if fungible {
			req.Destinations = append(req.Destinations, split.Destination{TokenAccount: d})
		} else {
			req.Destinations = append(req.Destinations, split.Destination{Address: d})
		}
	}
	switch p.Mode {
	case fixedMode:
		req.Amounts = split.Fixed(p.Values)
	case weightsMode:
		req.Amounts = &split.Proportional{Total: p.Total, Weights: p.Values}
	case percentMode:
		req.Amounts = &split.Proportional{Total: p.Total, Weights: p.Values, Denominator: split.PercentDenominator}
	}
	return req
}

// balances returns the balances of the payer and all destinations after the
// split, indexed by the hex address.
func (p *splitPayload) balances(kv paysplit.KVStore) (map[string]uint64, error) {
	res := make(map[string]uint64)
	if len(p.Mint) != 0 {
		program := token.NewProgram(token.NewController(token.NewBucket()), kv)
		for _, a := range append([]paysplit.Address{p.Funding}, p.Destinations...) {
			b, err := program.Balance(a)
			if err != nil {
				return nil, err
			}
			res[a.String()] = b
		}
		return res, nil
	}

	ledger := cash.NewLedger(cash.NewController(cash.NewBucket()), kv)
	for _, a := range append([]paysplit.Address{p.Payer}, p.Destinations...) {
		b, err := ledger.Balance(a)
		if err != nil {
			return nil, err
		}
		res[a.String()] = b
	}
	return res, nil
}

// newLogger returns a logger writing to stderr, filtered by level.
func newLogger(level string) (log.Logger, error) {
	if level == "none" {
		return log.NewNopLogger(), nil
	}
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewFilter(log.NewTMLogger(log.NewSyncWriter(os.Stderr)), opt), nil
}
