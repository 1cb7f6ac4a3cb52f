package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"listingforge/internal/domain"
)

// CategoryRepositoryPG implements domain.CategoryRepository using PostgreSQL.
type CategoryRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository constructs a new category repository instance.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepositoryPG {
	return &CategoryRepositoryPG{pool: pool}
}

// ListAll returns every category with its prompt template, names trimmed.
func (r *CategoryRepositoryPG) ListAll(ctx context.Context) ([]domain.CategoryPrompt, error) {
	rows, err := r.pool.Query(ctx, `
SELECT category_id, category_name, gpt_prompt
FROM product_categories
ORDER BY lower(category_name) ASC;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []domain.CategoryPrompt
	for rows.Next() {
		var cat domain.CategoryPrompt
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Template); err != nil {
			return nil, err
		}
		cat.Name = strings.TrimSpace(cat.Name)
		cats = append(cats, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cats, nil
}

// GetByName looks up a category by exact trimmed name. No fuzzy matching.
func (r *CategoryRepositoryPG) GetByName(ctx context.Context, name string) (domain.CategoryPrompt, error) {
	var cat domain.CategoryPrompt
	err := r.pool.QueryRow(ctx, `
SELECT category_id, category_name, gpt_prompt
FROM product_categories
WHERE btrim(category_name) = $1;
`, strings.TrimSpace(name)).Scan(&cat.ID, &cat.Name, &cat.Template)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.CategoryPrompt{}, fmt.Errorf("category %q: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return domain.CategoryPrompt{}, err
	}
	cat.Name = strings.TrimSpace(cat.Name)
	return cat, nil
}

// Insert stores a new category and returns its id.
func (r *CategoryRepositoryPG) Insert(ctx context.Context, cat domain.CategoryPrompt) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
INSERT INTO product_categories (category_name, gpt_prompt)
VALUES ($1, $2)
RETURNING category_id;
`, strings.TrimSpace(cat.Name), cat.Template).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update rewrites an existing category's name and template.
func (r *CategoryRepositoryPG) Update(ctx context.Context, cat domain.CategoryPrompt) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE product_categories
SET category_name = $2, gpt_prompt = $3
WHERE category_id = $1;
`, cat.ID, strings.TrimSpace(cat.Name), cat.Template)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a category by id.
func (r *CategoryRepositoryPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `
DELETE FROM product_categories WHERE category_id = $1;
`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ domain.CategoryRepository = (*CategoryRepositoryPG)(nil)
