// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pincode

import (
	"database/sql"
	"fmt"
	"os"
	"sort"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pincode-tools/pkg/types"
)

// WriteStore writes the dataset to a SQLite lookup artifact at path.
// The file is rebuilt from scratch on every run; it carries no state
// between runs. Duplicate pincodes resolve the same way as the JSON
// index: the last record wins.
func WriteStore(path string, records []types.PincodeRecord, bankMap map[string][]types.BankEntry) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing stale store %s: %w", path, err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("opening store %s: %w", path, err)
	}
	defer db.Close()

	if err := createSchema(db); err != nil {
		return fmt.Errorf("creating schema in %s: %w", path, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning store transaction: %w", err)
	}
	defer tx.Rollback()

	insertPin, err := tx.Prepare(
		`INSERT OR REPLACE INTO pincodes (pincode, office_name, district, state) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing pincode insert: %w", err)
	}
	defer insertPin.Close()

	for _, rec := range records {
		if _, err := insertPin.Exec(rec.Pincode, rec.OfficeName, rec.District, rec.State); err != nil {
			return fmt.Errorf("inserting pincode %s: %w", rec.Pincode, err)
		}
	}

	if len(bankMap) > 0 {
		insertBank, err := tx.Prepare(
			`INSERT INTO bank_serviceability (pincode, position, bank, status) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("preparing bank insert: %w", err)
		}
		defer insertBank.Close()

		pins := make([]string, 0, len(bankMap))
		for pin := range bankMap {
			pins = append(pins, pin)
		}
		sort.Strings(pins)

		for _, pin := range pins {
			for i, entry := range bankMap[pin] {
				if _, err := insertBank.Exec(pin, i, entry.Bank, entry.Status); err != nil {
					return fmt.Errorf("inserting bank row for pincode %s: %w", pin, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing store %s: %w", path, err)
	}
	return nil
}

func createSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS pincodes (
			pincode TEXT PRIMARY KEY,
			office_name TEXT,
			district TEXT,
			state TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS bank_serviceability (
			pincode TEXT NOT NULL,
			position INTEGER NOT NULL,
			bank TEXT,
			status TEXT,
			PRIMARY KEY (pincode, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bank_pincode ON bank_serviceability(pincode)`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}
