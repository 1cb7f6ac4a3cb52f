package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"listingforge/internal/domain"
)

func TestWriteCSVRoundTripsNewlines(t *testing.T) {
	rows := []domain.OutputRow{
		{
			ProductRow:  domain.ProductRow{SKU: "A1", Name: "Widget", Colour: "Red", Includes: "Spare part", Status: domain.StatusGenerated},
			Title1:      "Best Widget",
			Description: "* line one\n* line two",
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want header + 1", len(records))
	}

	header := records[0]
	if header[0] != domain.ColSKU || header[len(header)-1] != domain.ColIncludes {
		t.Errorf("header order: first %q, last %q", header[0], header[len(header)-1])
	}

	row := records[1]
	idx := func(col string) int {
		for i, h := range header {
			if h == col {
				return i
			}
		}
		t.Fatalf("column %q missing", col)
		return -1
	}
	if row[idx(domain.ColDescription)] != "* line one\n* line two" {
		t.Errorf("description corrupted: %q", row[idx(domain.ColDescription)])
	}
	if row[idx(domain.ColStatus)] != string(domain.StatusGenerated) {
		t.Errorf("status = %q", row[idx(domain.ColStatus)])
	}
	if row[idx(domain.ColIncludes)] != "Spare part" {
		t.Errorf("includes = %q", row[idx(domain.ColIncludes)])
	}
}

func TestWriteCSVQuotesEveryField(t *testing.T) {
	rows := []domain.OutputRow{
		{ProductRow: domain.ProductRow{SKU: "A1", Name: `He said "hi"`, Status: domain.StatusPending}},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for _, line := range lines {
		if !strings.HasPrefix(line, `"`) || !strings.HasSuffix(line, `"`) {
			t.Errorf("line not fully quoted: %s", line)
		}
	}
	if !strings.Contains(buf.String(), `"He said ""hi"""`) {
		t.Errorf("embedded quotes not escaped: %s", buf.String())
	}
}

func TestParseRecordInvertsRecordFor(t *testing.T) {
	in := domain.OutputRow{
		ProductRow: domain.ProductRow{
			SKU: "A1", Name: "Widget", Colour: "Red", Includes: "Spare part",
			Status: domain.StatusGenerated,
		},
		Title1:      "T1",
		Title4:      "T4",
		Description: "D",
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, []domain.OutputRow{in}); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	got := ParseRecord(records[1])
	if got.SKU != "A1" || got.Colour != "Red" || got.Includes != "Spare part" {
		t.Errorf("attributes lost: %+v", got)
	}
	if got.Title1 != "T1" || got.Title4 != "T4" || got.Description != "D" {
		t.Errorf("generated fields lost: %+v", got)
	}
	if got.Status != domain.StatusGenerated {
		t.Errorf("status = %q", got.Status)
	}
}
