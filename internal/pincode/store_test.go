// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pincode

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pincode-tools/pkg/types"
)

func TestWriteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pincodes.db")
	records := []types.PincodeRecord{
		{Pincode: "110001", OfficeName: "CP", District: "A", State: "Delhi"},
		{Pincode: "400001", OfficeName: "Fort", District: "Mumbai", State: "Maharashtra"},
		{Pincode: "110001", OfficeName: "PS", District: "B", State: "Delhi"},
	}
	bankMap := map[string][]types.BankEntry{
		"110001": {{Bank: "X", Status: "serviceable"}, {Bank: "Y", Status: "partial"}},
	}

	require.NoError(t, WriteStore(path, records, bankMap))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM pincodes`).Scan(&count))
	assert.Equal(t, 2, count)

	// Duplicate pincode resolves to the last record, like the JSON index.
	var district string
	require.NoError(t, db.QueryRow(
		`SELECT district FROM pincodes WHERE pincode = '110001'`).Scan(&district))
	assert.Equal(t, "B", district)

	rows, err := db.Query(
		`SELECT bank, status FROM bank_serviceability WHERE pincode = '110001' ORDER BY position`)
	require.NoError(t, err)
	defer rows.Close()

	var entries []types.BankEntry
	for rows.Next() {
		var e types.BankEntry
		require.NoError(t, rows.Scan(&e.Bank, &e.Status))
		entries = append(entries, e)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []types.BankEntry{
		{Bank: "X", Status: "serviceable"},
		{Bank: "Y", Status: "partial"},
	}, entries)
}

func TestWriteStoreRebuilds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pincodes.db")
	first := []types.PincodeRecord{{Pincode: "110001", District: "A"}}
	second := []types.PincodeRecord{{Pincode: "400001", District: "Mumbai"}}

	require.NoError(t, WriteStore(path, first, nil))
	require.NoError(t, WriteStore(path, second, nil))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	// The artifact is rebuilt, not appended to.
	var count int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM pincodes`).Scan(&count))
	assert.Equal(t, 1, count)

	var pin string
	require.NoError(t, db.QueryRow(`SELECT pincode FROM pincodes`).Scan(&pin))
	assert.Equal(t, "400001", pin)
}
