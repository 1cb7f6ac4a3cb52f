// Package ingest parses uploaded product spreadsheets into normalized rows
// ready for grouping and generation.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"listingforge/internal/domain"
)

// NormalizeHeader trims a column name and collapses internal runs of
// whitespace to a single space, so "Finish/  Style " and "Finish/ Style"
// address the same column.
func NormalizeHeader(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// ReadProducts parses a CSV upload into normalized product rows:
//   - column names are trimmed and whitespace-collapsed
//   - fully empty rows are dropped
//   - rows missing SKU or Name are dropped (both identity anchors required)
//   - columns absent from the upload read as empty strings downstream
//
// Column order in the file is arbitrary; unknown columns are ignored.
func ReadProducts(r io.Reader) ([]domain.ProductRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	headers, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("ingest: read header row: %w", err)
	}
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[NormalizeHeader(h)] = i
	}

	var rows []domain.ProductRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: read row: %w", err)
		}

		row := domain.ProductRow{Status: domain.StatusPending}
		empty := true
		for col, i := range index {
			if i >= len(record) {
				continue
			}
			value := strings.TrimSpace(record[i])
			if value != "" {
				empty = false
			}
			row.SetField(col, value)
		}
		if empty {
			continue
		}
		if row.SKU == "" || row.Name == "" {
			continue
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, domain.ErrEmptyTable
	}
	return rows, nil
}

// ReadStrict parses a CSV upload whose header must match the expected column
// list exactly, order included. Used for direct table imports where a shape
// mismatch blocks the whole operation.
func ReadStrict(r io.Reader, expected []string) ([][]string, error) {
	cr := csv.NewReader(r)

	headers, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("ingest: read header row: %w", err)
	}
	if len(headers) != len(expected) {
		return nil, fmt.Errorf("%w: expected %d columns, got %d", domain.ErrColumnMismatch, len(expected), len(headers))
	}
	for i, h := range headers {
		if NormalizeHeader(h) != expected[i] {
			return nil, fmt.Errorf("%w: column %d is %q, expected %q", domain.ErrColumnMismatch, i+1, h, expected[i])
		}
	}

	var records [][]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: read row: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}
