// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tabular reads delimited tables with a header row into
// header-keyed rows. CSV and XLSX inputs are supported; the format is
// detected from the file contents, not the extension.
package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row maps a column name, as spelled in the header row, to the cell value.
// Cell values are kept raw; callers own any trimming.
type Row map[string]string

// ReadFile loads the table at path fully into memory and decodes it.
// Errors name the offending path.
func ReadFile(path string) ([]Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading table %s: %w", path, err)
	}
	rows, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parsing table %s: %w", path, err)
	}
	return rows, nil
}

// Decode parses table data, choosing the XLSX or CSV decoder by content.
func Decode(data []byte) ([]Row, error) {
	if isXLSX(data) {
		return decodeXLSX(data)
	}
	return decodeCSV(data)
}

func decodeCSV(data []byte) ([]Row, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true
	// Government exports have ragged rows; tolerate them.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header row: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		rows = append(rows, mapRow(header, record))
	}
	return rows, nil
}

func decodeXLSX(data []byte) ([]Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheet, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("sheet %s has no header row", sheet)
	}

	header := raw[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []Row
	for _, record := range raw[1:] {
		rows = append(rows, mapRow(header, record))
	}
	return rows, nil
}

func mapRow(header, record []string) Row {
	row := make(Row, len(header))
	for i, value := range record {
		if i < len(header) && header[i] != "" {
			row[header[i]] = value
		}
	}
	return row
}

// isXLSX checks for the ZIP local-file magic that opens every xlsx.
func isXLSX(data []byte) bool {
	return len(data) >= 4 && data[0] == 'P' && data[1] == 'K' &&
		(data[2] == 0x03 || data[2] == 0x05 || data[2] == 0x07)
}
