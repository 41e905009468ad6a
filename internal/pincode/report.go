// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pincode

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Report is the on-disk YAML summary of a conversion run. It records
// what was read, what was written, and the row accounting, so a run can
// be audited without re-parsing the artifacts.
type Report struct {
	Inputs    ReportInputs `yaml:"inputs"`
	Counts    ReportCounts `yaml:"counts"`
	Files     []string     `yaml:"files"`
	Timestamp time.Time    `yaml:"timestamp"`
}

// ReportInputs names the source tables of the run.
type ReportInputs struct {
	Pincodes string `yaml:"pincodes"`
	Bank     string `yaml:"bank,omitempty"`
}

// ReportCounts holds the row accounting for the run.
type ReportCounts struct {
	// Rows is the raw row count of the pincodes table.
	Rows int `yaml:"rows"`
	// Records is the count of rows kept after normalization.
	Records int `yaml:"records"`
	// Dropped is Rows - Records: rows with an empty pincode.
	Dropped int `yaml:"dropped"`
	// UniquePincodes is the index key count.
	UniquePincodes int `yaml:"unique_pincodes"`
	// BankRows and BankPincodes cover the bank table, zero when absent.
	BankRows     int `yaml:"bank_rows"`
	BankPincodes int `yaml:"bank_pincodes"`
}

// WriteReport saves the run summary to a YAML file.
func WriteReport(path string, r Report) error {
	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// ReadReport loads a previously written run summary.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report %s: %w", path, err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report %s: %w", path, err)
	}
	return &r, nil
}
