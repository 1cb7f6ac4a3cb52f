// Package pipeline implements the per-group listing generation flow: prompt
// composition, generation with retry, response parsing, and merging results
// back onto the uploaded table.
package pipeline

import (
	"strings"

	"listingforge/internal/domain"
)

// BuildPrompt composes the full prompt for a group: the category template,
// then a Product Info block built from the representative (first) row's
// non-empty attributes in fixed column order, then an optional Includes line.
// No length validation happens here; an oversized prompt is the service's
// problem to reject.
func BuildPrompt(template string, group domain.ProductGroup) string {
	rep := group.Representative()

	var b strings.Builder
	b.WriteString(strings.TrimSpace(template))
	b.WriteString("\n\nProduct Info:")
	for _, col := range domain.AttributeColumns {
		value := strings.TrimSpace(rep.Attribute(col))
		if value == "" {
			continue
		}
		b.WriteString("\n")
		b.WriteString(col)
		b.WriteString(": ")
		b.WriteString(value)
	}
	if includes := strings.TrimSpace(rep.Includes); includes != "" {
		b.WriteString("\nIncludes: ")
		b.WriteString(includes)
	}
	return b.String()
}
