package domain

import "context"

// CategoryRepository reads and maintains the category prompt catalog.
type CategoryRepository interface {
	ListAll(ctx context.Context) ([]CategoryPrompt, error)
	GetByName(ctx context.Context, name string) (CategoryPrompt, error)
	Insert(ctx context.Context, cat CategoryPrompt) (int64, error)
	Update(ctx context.Context, cat CategoryPrompt) error
	Delete(ctx context.Context, id int64) error
}

// ListingRepository writes generated output rows into the listings table and
// exposes the distinct filter triples used by image staging.
type ListingRepository interface {
	InsertBatch(ctx context.Context, rows []OutputRow) (int, error)
	ListFilters(ctx context.Context) ([]ListingFilter, error)
}

// ImageLinkRepository persists public URLs of staged product images.
type ImageLinkRepository interface {
	InsertBatch(ctx context.Context, groupName string, urls []string) error
}
