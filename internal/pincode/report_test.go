// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pincode

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "convert_report.yaml")
	want := Report{
		Inputs: ReportInputs{Pincodes: "data/pincodes.csv", Bank: "data/banks.csv"},
		Counts: ReportCounts{
			Rows: 10, Records: 8, Dropped: 2,
			UniquePincodes: 7, BankRows: 5, BankPincodes: 3,
		},
		Files:     []string{"mock-api/pincodes.json", "mock-api/index.json"},
		Timestamp: time.Date(2026, 2, 11, 9, 30, 0, 0, time.UTC),
	}

	require.NoError(t, WriteReport(path, want))
	got, err := ReadReport(path)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestReadReportMissing(t *testing.T) {
	_, err := ReadReport(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
