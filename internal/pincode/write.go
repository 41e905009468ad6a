// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pincode

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/pincode-tools/internal/tabular"
	"github.com/pdiddy/pincode-tools/pkg/types"
)

// Artifact file names under the output directory.
const (
	RecordsFile = "pincodes.json"
	IndexFile   = "index.json"
	BankFile    = "bank_serviceability.json"
	ReportFile  = "convert_report.yaml"
	StoreFile   = "pincodes.db"
)

// Run executes one conversion: read the input tables, normalize, and
// write the artifacts to cfg.OutDir. Progress lines go to w. Any read,
// parse, or write error aborts the run; partial output may be left
// behind on write failure.
func Run(cfg types.ConvertConfig, w io.Writer) error {
	fmt.Fprintf(w, "Reading pincodes table from %s\n", cfg.PincodePath)
	rows, err := tabular.ReadFile(cfg.PincodePath)
	if err != nil {
		return err
	}
	records, index := BuildPincodes(rows)

	var bankRows []tabular.Row
	var bankMap map[string][]types.BankEntry
	if cfg.BankPath != "" {
		fmt.Fprintf(w, "Reading bank serviceability table from %s\n", cfg.BankPath)
		bankRows, err = tabular.ReadFile(cfg.BankPath)
		if err != nil {
			return err
		}
		bankMap = BuildBankMap(bankRows)
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", cfg.OutDir, err)
	}

	written := make([]string, 0, 5)

	recordsPath := filepath.Join(cfg.OutDir, RecordsFile)
	if err := writeJSON(recordsPath, records); err != nil {
		return err
	}
	written = append(written, recordsPath)
	fmt.Fprintf(w, "Wrote %s (%d records)\n", recordsPath, len(records))

	indexPath := filepath.Join(cfg.OutDir, IndexFile)
	if err := writeJSON(indexPath, index); err != nil {
		return err
	}
	written = append(written, indexPath)
	fmt.Fprintf(w, "Wrote %s\n", indexPath)

	if cfg.BankPath != "" {
		bankPath := filepath.Join(cfg.OutDir, BankFile)
		if err := writeJSON(bankPath, bankMap); err != nil {
			return err
		}
		written = append(written, bankPath)
		fmt.Fprintf(w, "Wrote %s\n", bankPath)
	}

	if cfg.SQLite {
		storePath := filepath.Join(cfg.OutDir, StoreFile)
		if err := WriteStore(storePath, records, bankMap); err != nil {
			return err
		}
		written = append(written, storePath)
		fmt.Fprintf(w, "Wrote %s\n", storePath)
	}

	if cfg.Report {
		report := Report{
			Inputs: ReportInputs{
				Pincodes: cfg.PincodePath,
				Bank:     cfg.BankPath,
			},
			Counts: ReportCounts{
				Rows:           len(rows),
				Records:        len(records),
				Dropped:        len(rows) - len(records),
				UniquePincodes: len(index),
				BankRows:       len(bankRows),
				BankPincodes:   len(bankMap),
			},
			Files:     written,
			Timestamp: time.Now().UTC(),
		}
		reportPath := filepath.Join(cfg.OutDir, ReportFile)
		if err := WriteReport(reportPath, report); err != nil {
			return err
		}
		fmt.Fprintf(w, "Wrote %s\n", reportPath)
	}

	fmt.Fprintln(w, "Done.")
	return nil
}

// writeJSON marshals v with two-space indentation and writes it to path.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
