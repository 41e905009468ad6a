// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data types for pincode-tools.
package types

// PincodeRecord is one normalized row of the government postal-code table.
// Field values are trimmed of surrounding whitespace during normalization.
type PincodeRecord struct {
	// Pincode is the postal routing code, the primary lookup key.
	Pincode string `json:"pincode" yaml:"pincode"`

	// OfficeName is the post office name for this pincode.
	OfficeName string `json:"officeName" yaml:"officeName"`

	// District is the administrative district.
	District string `json:"district" yaml:"district"`

	// State is the state or union territory.
	State string `json:"state" yaml:"state"`
}

// BankEntry records one bank's serviceability status at a pincode.
// Status is a free-form string (e.g. "serviceable", "partial", "not");
// no enumeration is enforced.
type BankEntry struct {
	Bank   string `json:"bank" yaml:"bank"`
	Status string `json:"status" yaml:"status"`
}

// ConvertConfig holds the settings for one conversion run.
type ConvertConfig struct {
	// PincodePath is the postal-code table (CSV or XLSX). Required.
	PincodePath string

	// BankPath is the bank serviceability table. Empty skips bank output.
	BankPath string

	// OutDir receives the JSON artifacts. Created if absent.
	OutDir string

	// Report enables the YAML run summary artifact.
	Report bool

	// SQLite enables the SQLite lookup artifact.
	SQLite bool
}
