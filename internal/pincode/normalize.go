// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pincode builds JSON lookup artifacts from government
// postal-code tables and optional bank serviceability tables.
package pincode

import (
	"strings"

	"github.com/pdiddy/pincode-tools/internal/tabular"
	"github.com/pdiddy/pincode-tools/pkg/types"
)

// Candidate header spellings per field, tried in order. The first key
// with a non-empty cell wins. Government exports disagree on casing, so
// every spelling seen in the wild is listed explicitly.
var (
	pincodeKeys  = []string{"pincode", "PINCODE", "Pincode", "PinCode"}
	officeKeys   = []string{"officeName", "OFFICENAME", "OfficeName", "office", "Office"}
	districtKeys = []string{"district", "DISTRICT", "District"}
	stateKeys    = []string{"state", "STATE", "State"}

	bankKeys   = []string{"bank", "Bank", "BANK"}
	statusKeys = []string{"status", "Status", "STATUS"}
)

// pick returns the first non-empty cell among the candidate keys,
// or "" when none match.
func pick(row tabular.Row, keys []string) string {
	for _, k := range keys {
		if v := row[k]; v != "" {
			return v
		}
	}
	return ""
}

// NormalizeRecord selects and trims the pincode fields from a raw row.
// A record whose Pincode comes back empty must be dropped by the caller.
func NormalizeRecord(row tabular.Row) types.PincodeRecord {
	return types.PincodeRecord{
		Pincode:    strings.TrimSpace(pick(row, pincodeKeys)),
		OfficeName: strings.TrimSpace(pick(row, officeKeys)),
		District:   strings.TrimSpace(pick(row, districtKeys)),
		State:      strings.TrimSpace(pick(row, stateKeys)),
	}
}

// normalizeBankRow selects the pincode key and serviceability entry
// from a raw bank table row.
func normalizeBankRow(row tabular.Row) (pin string, entry types.BankEntry) {
	pin = strings.TrimSpace(pick(row, pincodeKeys))
	entry = types.BankEntry{
		Bank:   strings.TrimSpace(pick(row, bankKeys)),
		Status: strings.TrimSpace(pick(row, statusKeys)),
	}
	return pin, entry
}
