package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"listingforge/internal/domain"
)

// ImageLinkRepositoryPG implements domain.ImageLinkRepository using PostgreSQL.
type ImageLinkRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewImageLinkRepository constructs a new image link repository instance.
func NewImageLinkRepository(pool *pgxpool.Pool) *ImageLinkRepositoryPG {
	return &ImageLinkRepositoryPG{pool: pool}
}

// InsertBatch persists the public URLs of images staged under one folder.
func (r *ImageLinkRepositoryPG) InsertBatch(ctx context.Context, groupName string, urls []string) error {
	query := `
INSERT INTO image_links (group_name, public_url)
VALUES ($1, $2);
`
	for _, url := range urls {
		if _, err := r.pool.Exec(ctx, query, groupName, url); err != nil {
			return err
		}
	}
	return nil
}

var _ domain.ImageLinkRepository = (*ImageLinkRepositoryPG)(nil)
