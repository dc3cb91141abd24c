package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/primehood/supplies-api/internal/models"
)

// CategoryRepository handles data access for categories.
type CategoryRepository struct {
	db *sqlx.DB
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetAll returns all categories ordered by name, each with its product count.
func (r *CategoryRepository) GetAll() ([]models.Category, error) {
	const q = `
        SELECT c.id, c.slug, c.name, c.icon, c.created_at,
               COUNT(p.id) AS product_count
        FROM categories c
        LEFT JOIN products p ON p.category_id = c.id
        GROUP BY c.id
        ORDER BY c.name`

	var categories []models.Category
	if err := r.db.Select(&categories, q); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetBySlug returns a single category by slug.
func (r *CategoryRepository) GetBySlug(slug string) (*models.Category, error) {
	const q = `SELECT id, slug, name, icon, created_at FROM categories WHERE slug = $1 LIMIT 1`
	var c models.Category
	if err := r.db.Get(&c, q, slug); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &c, nil
}

// Upsert inserts a category or leaves an existing one untouched. Used by the
// seeder.
func (r *CategoryRepository) Upsert(cat *models.Category) error {
	const q = `
        INSERT INTO categories (slug, name, icon)
        VALUES ($1, $2, $3)
        ON CONFLICT (slug) DO UPDATE SET slug = EXCLUDED.slug
        RETURNING id`
	return r.db.QueryRow(q, cat.Slug, cat.Name, cat.Icon).Scan(&cat.ID)
}
