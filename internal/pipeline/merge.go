package pipeline

import (
	"strings"

	"listingforge/internal/domain"
)

type mergeKey struct {
	sku  string
	name string
}

// fanOut emits one output record per row of the group, each carrying the
// row's own identity and attributes but the group's shared generated content.
func fanOut(group domain.ProductGroup, result domain.GenerationResult, status domain.Status) []domain.OutputRow {
	out := make([]domain.OutputRow, 0, len(group.Rows))
	for _, row := range group.Rows {
		o := domain.OutputRow{
			ProductRow:  row,
			Title1:      result.Title(1),
			Title2:      result.Title(2),
			Title3:      result.Title(3),
			Title4:      result.Title(4),
			Description: result.Description,
		}
		o.Status = status
		out = append(out, o)
	}
	return out
}

// Merge joins generated records back onto the normalized input table. The
// join key is trimmed (SKU, Name); every normalized row keeps its position,
// and a row without a generated counterpart retains its original attributes
// with empty generated fields.
func Merge(rows []domain.ProductRow, generated []domain.OutputRow) []domain.OutputRow {
	byKey := make(map[mergeKey]domain.OutputRow, len(generated))
	for _, g := range generated {
		byKey[mergeKey{sku: strings.TrimSpace(g.SKU), name: strings.TrimSpace(g.Name)}] = g
	}

	out := make([]domain.OutputRow, 0, len(rows))
	for _, row := range rows {
		key := mergeKey{sku: strings.TrimSpace(row.SKU), name: strings.TrimSpace(row.Name)}
		if g, ok := byKey[key]; ok {
			status := g.Status
			g.ProductRow = row
			g.Status = status
			out = append(out, g)
			continue
		}
		out = append(out, domain.OutputRow{ProductRow: row})
	}
	return out
}
