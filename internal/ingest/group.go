package ingest

import "listingforge/internal/domain"

type groupKey struct {
	brand string
	name  string
}

// GroupRows partitions normalized rows by (Brand, Name), preserving the
// first-seen order of distinct keys and the original row order within each
// group. Every row lands in exactly one group.
func GroupRows(rows []domain.ProductRow) []domain.ProductGroup {
	byKey := make(map[groupKey]int)
	var groups []domain.ProductGroup

	for _, row := range rows {
		key := groupKey{brand: row.Brand, name: row.Name}
		i, ok := byKey[key]
		if !ok {
			i = len(groups)
			byKey[key] = i
			groups = append(groups, domain.ProductGroup{Brand: row.Brand, Name: row.Name})
		}
		groups[i].Rows = append(groups[i].Rows, row)
	}
	return groups
}
