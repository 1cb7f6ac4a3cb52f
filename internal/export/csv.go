// Package export serializes pipeline output for download and for catalog
// imports.
package export

import (
	"bufio"
	"io"
	"strings"

	"listingforge/internal/domain"
)

// Columns is the output schema in export order. Includes sits last so the
// generated content columns stay adjacent in the downloaded file.
var Columns = buildColumns()

func buildColumns() []string {
	cols := []string{domain.ColSKU, domain.ColName}
	cols = append(cols, domain.AttributeColumns...)
	cols = append(cols,
		domain.ColTitle1,
		domain.ColTitle2,
		domain.ColTitle3,
		domain.ColTitle4,
		domain.ColDescription,
		domain.ColStatus,
		domain.ColIncludes,
	)
	return cols
}

// WriteCSV writes the merged output table. Every field is quoted so embedded
// newlines in Description survive a round trip through any CSV reader.
func WriteCSV(w io.Writer, rows []domain.OutputRow) error {
	bw := bufio.NewWriter(w)

	if err := writeRecord(bw, Columns); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRecord(bw, recordFor(row)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func recordFor(row domain.OutputRow) []string {
	record := []string{row.SKU, row.Name}
	for _, col := range domain.AttributeColumns {
		record = append(record, row.Attribute(col))
	}
	return append(record,
		row.Title1,
		row.Title2,
		row.Title3,
		row.Title4,
		row.Description,
		string(row.Status),
		row.Includes,
	)
}

// ParseRecord converts one CSV record in Columns order back into an output
// row, the inverse of recordFor. The record length must equal len(Columns).
func ParseRecord(record []string) domain.OutputRow {
	var row domain.OutputRow
	for i, col := range Columns {
		value := record[i]
		switch col {
		case domain.ColTitle1:
			row.Title1 = value
		case domain.ColTitle2:
			row.Title2 = value
		case domain.ColTitle3:
			row.Title3 = value
		case domain.ColTitle4:
			row.Title4 = value
		case domain.ColDescription:
			row.Description = value
		case domain.ColStatus:
			row.Status = domain.Status(value)
		default:
			row.SetField(col, value)
		}
	}
	return row
}

func writeRecord(w *bufio.Writer, fields []string) error {
	for i, field := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if err := w.WriteByte('"'); err != nil {
			return err
		}
		if _, err := w.WriteString(strings.ReplaceAll(field, `"`, `""`)); err != nil {
			return err
		}
		if err := w.WriteByte('"'); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}
