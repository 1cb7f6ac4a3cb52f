package domain

import "strings"

// RefusalMarker is the literal substring treated as a safety refusal from the
// generation service. Responses containing it are retried.
const RefusalMarker = "I'm sorry"

// GenerationResult holds the parsed output of one group's generation call.
// Title slots absent from the response are simply missing from Titles, never
// defaulted to empty strings.
type GenerationResult struct {
	Titles      map[int]string
	Description string
	RawResponse string
}

// Accepted reports whether the raw response is usable: non-empty and not a
// refusal. Failed transport attempts carry their error text in RawResponse,
// which counts as accepted so a hard provider error is not retried blindly.
func (r GenerationResult) Accepted() bool {
	raw := strings.TrimSpace(r.RawResponse)
	return raw != "" && !strings.Contains(raw, RefusalMarker)
}

// Title returns the title in the given slot, or "" when the slot is absent.
func (r GenerationResult) Title(slot int) string {
	return r.Titles[slot]
}

// OutputRow is one record of the merged output table: the row's own identity
// and attributes plus the generated content shared across its group.
type OutputRow struct {
	ProductRow

	Title1      string `json:"title_1"`
	Title2      string `json:"title_2"`
	Title3      string `json:"title_3"`
	Title4      string `json:"title_4"`
	Description string `json:"description"`
}

// GroupReport records the outcome of one group for operator review.
type GroupReport struct {
	Brand       string `json:"brand"`
	Name        string `json:"name"`
	SKU         string `json:"sku"`
	Status      Status `json:"status"`
	RawResponse string `json:"raw_response"`
}

// ListingFilter is one distinct (Category, Name, Colour) triple from the
// listings table, used to derive image staging folder names.
type ListingFilter struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Colour   string `json:"colour"`
}
