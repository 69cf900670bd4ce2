package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/splittest"
	"github.com/iov-one/paysplit/x/cash"
	"github.com/iov-one/paysplit/x/token"
)

func TestCmdSplit(t *testing.T) {
	a, b, c := splittest.NewAddress(), splittest.NewAddress(), splittest.NewAddress()
	dests := []paysplit.Address{a, b, c}

	cases := map[string]struct {
		run          func(*testEnv) error
		wantBalances map[string]uint64
		wantResidual uint64
		wantErr      string
	}{
		"fixed amounts": {
			run: func(env *testEnv) error {
				return cmdSplit(csvInput(dests, "10", "20", "30"), env.out(), env.args())
			},
			wantBalances: map[string]uint64{a.String(): 10, b.String(): 20, c.String(): 30},
		},
		"weights": {
			run: func(env *testEnv) error {
				return cmdSplitWeights(csvInput(dests, "1", "1", "1"), env.out(), env.args("-total", "100"))
			},
			wantBalances: map[string]uint64{a.String(): 33, b.String(): 33, c.String(): 33},
			wantResidual: 1,
		},
		"percent": {
			run: func(env *testEnv) error {
				return cmdSplitPercent(csvInput(dests, "50", "25", "5"), env.out(), env.args("-total", "200"))
			},
			wantBalances: map[string]uint64{a.String(): 100, b.String(): 50, c.String(): 10},
			wantResidual: 40,
		},
		"not enough funds": {
			run: func(env *testEnv) error {
				return cmdSplit(csvInput(dests, "400", "400", "400"), env.out(), env.args())
			},
			wantErr: "split aborted at destination 2",
		},
		"zero weights": {
			run: func(env *testEnv) error {
				return cmdSplitWeights(csvInput(dests, "0", "0", "0"), env.out(), env.args("-total", "100"))
			},
			wantErr: "invalid weight sum",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			env := newTestEnv(t, nil)
			defer env.cleanup()
			env.setGenesis(t, map[string]interface{}{
				"cash": []cash.GenesisAccount{{Address: env.payer, Balance: 1000}},
			})

			err := tc.run(env)
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("want %q error, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("cannot split: %s", err)
			}

			res := env.result(t)
			var distributed uint64
			for addr, want := range tc.wantBalances {
				if got := res.Balances[addr]; got != want {
					t.Errorf("%s: want %d, got %d", addr, want, got)
				}
				distributed += want
			}
			if got := res.Balances[env.payer.String()]; got != 1000-distributed {
				t.Errorf("payer: want %d, got %d", 1000-distributed, got)
			}
			if res.Receipt.Residual != tc.wantResidual {
				t.Errorf("want residual %d, got %d", tc.wantResidual, res.Receipt.Residual)
			}
		})
	}
}

func TestCmdSplitToken(t *testing.T) {
	mint := splittest.NewAddress()
	funding := splittest.NewAddress()
	a, b := splittest.NewAddress(), splittest.NewAddress()

	env := newTestEnv(t, nil)
	defer env.cleanup()
	env.setGenesis(t, map[string]interface{}{
		"token": []token.GenesisAccount{
			{Address: funding, Owner: env.payer, Mint: mint, Balance: 90},
			{Address: a, Owner: splittest.NewAddress(), Mint: mint},
			{Address: b, Owner: splittest.NewAddress(), Mint: mint},
		},
	})

	args := env.args("-total", "90", "-mint", mint.String(), "-funding", funding.String())
	if err := cmdSplitWeights(csvInput([]paysplit.Address{a, b}, "2", "1"), env.out(), args); err != nil {
		t.Fatalf("cannot split: %s", err)
	}
	res := env.result(t)
	want := map[string]uint64{funding.String(): 0, a.String(): 60, b.String(): 30}
	for addr, w := range want {
		if got := res.Balances[addr]; got != w {
			t.Errorf("%s: want %d, got %d", addr, w, got)
		}
	}

	// Funding account without the mint.
	args = env.args("-total", "90", "-funding", funding.String())
	err := cmdSplitWeights(csvInput([]paysplit.Address{a, b}, "2", "1"), env.out(), args)
	if err == nil || !strings.Contains(err.Error(), "missing asset context") {
		t.Fatalf("want missing asset context error, got %v", err)
	}
}

func TestCmdSplitDryRun(t *testing.T) {
	a, b := splittest.NewAddress(), splittest.NewAddress()

	env := newTestEnv(t, nil)
	defer env.cleanup()
	env.setGenesis(t, map[string]interface{}{
		"split": map[string]int{"max_destinations": 5},
	})

	err := cmdSplitPercent(csvInput([]paysplit.Address{a, b}, "10", "20"), env.out(), env.args("-total", "50", "-dry-run"))
	if err != nil {
		t.Fatalf("cannot plan: %s", err)
	}
	res := env.result(t)
	if res.Receipt != nil {
		t.Fatal("dry run must not execute")
	}
	if len(res.Plan) != 2 || res.Plan[0].Amount != 5 || res.Plan[1].Amount != 10 {
		t.Fatalf("unexpected plan: %+v", res.Plan)
	}
}

func (e *testEnv) args(extra ...string) []string {
	e.output.Reset()
	return append([]string{
		"-key", e.keyPath,
		"-genesis", e.genPath,
		"-log-level", "none",
	}, extra...)
}

func (e *testEnv) out() *bytes.Buffer {
	return &e.output
}

func (e *testEnv) result(t testing.TB) splitResult {
	t.Helper()
	var res splitResult
	if err := json.Unmarshal(e.output.Bytes(), &res); err != nil {
		t.Fatalf("cannot decode output: %s\n%s", err, e.output.String())
	}
	return res
}
