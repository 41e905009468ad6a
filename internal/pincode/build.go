// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pincode

import (
	"github.com/pdiddy/pincode-tools/internal/tabular"
	"github.com/pdiddy/pincode-tools/pkg/types"
)

// BuildPincodes normalizes raw rows into the ordered record list and
// the pincode index. Rows whose pincode is empty after trimming are
// dropped from both. Duplicate pincodes keep every row in the list;
// in the index the last row wins.
func BuildPincodes(rows []tabular.Row) ([]types.PincodeRecord, map[string]types.PincodeRecord) {
	records := make([]types.PincodeRecord, 0, len(rows))
	index := make(map[string]types.PincodeRecord, len(rows))
	for _, row := range rows {
		rec := NormalizeRecord(row)
		if rec.Pincode == "" {
			continue
		}
		records = append(records, rec)
		index[rec.Pincode] = rec
	}
	return records, index
}

// BuildBankMap groups bank serviceability rows by pincode, preserving
// input row order within each pincode. Rows with an empty pincode are
// dropped; duplicate bank names are kept as-is.
func BuildBankMap(rows []tabular.Row) map[string][]types.BankEntry {
	bankMap := make(map[string][]types.BankEntry)
	for _, row := range rows {
		pin, entry := normalizeBankRow(row)
		if pin == "" {
			continue
		}
		bankMap[pin] = append(bankMap[pin], entry)
	}
	return bankMap
}
