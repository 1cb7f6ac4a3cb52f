package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"listingforge/internal/domain"
)

// ListingRepositoryPG implements domain.ListingRepository using PostgreSQL.
type ListingRepositoryPG struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewListingRepository constructs a new listing repository instance.
func NewListingRepository(pool *pgxpool.Pool, logger zerolog.Logger) *ListingRepositoryPG {
	return &ListingRepositoryPG{pool: pool, logger: logger}
}

// InsertBatch appends output rows to product_listings. A failing row is
// logged and skipped so the rest of the batch still lands; the number of
// inserted rows is returned.
func (r *ListingRepositoryPG) InsertBatch(ctx context.Context, rows []domain.OutputRow) (int, error) {
	query := `
INSERT INTO product_listings (
  "SKU", "Name", "Size", "Colour", "Category", "Finish/ Style", "Feature",
  "Care Instructions", "Composition", "Product Width", "Product Length", "Product Height",
  "Title 1", "Title 2", "Title 3", "Title 4",
  "Description", "Status", "Includes"
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
`

	inserted := 0
	for _, row := range rows {
		_, err := r.pool.Exec(ctx, query,
			row.SKU, row.Name,
			row.Size, row.Colour, row.Category, row.FinishStyle, row.Feature,
			row.CareInstructions, row.Composition, row.Width, row.Length, row.Height,
			row.Title1, row.Title2, row.Title3, row.Title4,
			row.Description, string(row.Status), row.Includes,
		)
		if err != nil {
			r.logger.Error().Err(err).Str("sku", row.SKU).Str("name", row.Name).Msg("listing insert failed")
			continue
		}
		inserted++
	}
	return inserted, nil
}

// ListFilters returns the distinct (Category, Name, Colour) triples present
// in the listings table, for the image staging folder picker.
func (r *ListingRepositoryPG) ListFilters(ctx context.Context) ([]domain.ListingFilter, error) {
	rows, err := r.pool.Query(ctx, `
SELECT DISTINCT "Category", "Name", "Colour"
FROM product_listings
WHERE "Category" <> '' AND "Name" <> '' AND "Colour" <> ''
ORDER BY "Category", "Name", "Colour";
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var filters []domain.ListingFilter
	for rows.Next() {
		var f domain.ListingFilter
		if err := rows.Scan(&f.Category, &f.Name, &f.Colour); err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return filters, nil
}

var _ domain.ListingRepository = (*ListingRepositoryPG)(nil)
