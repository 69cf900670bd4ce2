package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iov-one/paysplit"
	"github.com/iov-one/paysplit/x/soltx"
)

// row is a single destination read from the input.
type row struct {
	Destination paysplit.Address
	Value       uint64
}

// readRows reads destination rows from a CSV input. Each row contains an
// address (hex or base58) and an unsigned integer value. Lines starting with
// # are ignored.
func readRows(input io.Reader) ([]row, error) {
	rd := csv.NewReader(input)
	rd.Comment = '#'
	rd.FieldsPerRecord = 2
	rd.TrimLeadingSpace = true

	var rows []row
	for line := 1; ; line++ {
		rec, err := rd.Read()
		switch err {
		case nil:
			// All good.
		case io.EOF:
			return rows, nil
		default:
			return nil, fmt.Errorf("cannot read CSV row: %s", err)
		}

		addr, err := soltx.ParseAddress(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %s", line, err)
		}
		val, err := strconv.ParseUint(strings.TrimSpace(rec[1]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid value %q", line, rec[1])
		}
		rows = append(rows, row{Destination: addr, Value: val})
	}
}

func rowValues(rows []row) []uint64 {
	vals := make([]uint64, len(rows))
	for i, r := range rows {
		vals[i] = r.Value
	}
	return vals
}
