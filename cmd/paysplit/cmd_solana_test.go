package main

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/splittest"
	"github.com/iov-one/paysplit/x/soltx"
)

func TestCmdSolanaTx(t *testing.T) {
	payer := splittest.NewAddress()
	mint := splittest.NewAddress()
	funding := splittest.NewAddress()
	a, b := splittest.NewAddress(), splittest.NewAddress()
	payerKey, err := soltx.PublicKey(payer)
	if err != nil {
		t.Fatalf("cannot convert: %s", err)
	}

	cases := map[string]struct {
		args    []string
		values  []string
		wantErr string
	}{
		"native fixed": {
			args:   []string{"-payer", payerKey.String()},
			values: []string{"100", "200"},
		},
		"token percent": {
			args: []string{
				"-payer", payer.String(),
				"-mint", mint.String(),
				"-funding", funding.String(),
				"-mode", "percent",
				"-total", "1000",
				"-blockhash", "11111111111111111111111111111111",
			},
			values: []string{"30", "70"},
		},
		"token without funding account": {
			args: []string{
				"-payer", payer.String(),
				"-mint", mint.String(),
			},
			values:  []string{"1", "1"},
			wantErr: "missing asset context",
		},
		"shares rounded down to zero": {
			args:   []string{"-payer", payer.String(), "-mode", "weights", "-total", "1"},
			values: []string{"1", "1"},
		},
		"weights must not be zero": {
			args:    []string{"-payer", payer.String(), "-mode", "weights", "-total", "10"},
			values:  []string{"0", "0"},
			wantErr: "invalid weight sum",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var out bytes.Buffer
			err := cmdSolanaTx(csvInput([]paysplit.Address{a, b}, tc.values...), &out, tc.args)
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("want %q error, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("cannot build transaction: %s", err)
			}
			raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(out.String()))
			if err != nil {
				t.Fatalf("output is not base64: %s", err)
			}
			if !bytes.Contains(raw, payer) {
				t.Fatal("transaction does not reference the payer")
			}
		})
	}
}
