package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/primehood/supplies-api/internal/models"
	"github.com/primehood/supplies-api/internal/utils"
)

// ProductRepository handles data access for products.
type ProductRepository struct {
	db *sqlx.DB

	// caseSensitiveSearch restores the legacy LIKE matching for free-text
	// search. Default matching is ILIKE.
	caseSensitiveSearch bool
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB, caseSensitiveSearch bool) *ProductRepository {
	return &ProductRepository{db: db, caseSensitiveSearch: caseSensitiveSearch}
}

// CatalogFilter holds storefront listing filters. Zero values mean
// "no filter" except Page/Limit which get defaults.
type CatalogFilter struct {
	CategorySlug string
	Brands       []string
	Search       string
	Featured     bool
	IsNew        bool
	Sort         string
	Page         int
	Limit        int
}

// buildCatalogWhere builds the WHERE clause and bind args for a catalog
// listing. Placeholders start at $1; the caller appends LIMIT/OFFSET args
// after these.
func buildCatalogWhere(f *CatalogFilter, caseSensitive bool) (string, []interface{}) {
	clauses := []string{}
	args := []interface{}{}

	like := "ILIKE"
	if caseSensitive {
		like = "LIKE"
	}

	if f.CategorySlug != "" {
		args = append(args, f.CategorySlug)
		clauses = append(clauses, fmt.Sprintf("c.slug = $%d", len(args)))
	}
	if len(f.Brands) > 0 {
		args = append(args, pq.Array(f.Brands))
		clauses = append(clauses, fmt.Sprintf("p.brand = ANY($%d)", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf(
			"(p.name %[1]s $%[2]d OR p.description %[1]s $%[2]d OR p.brand %[1]s $%[2]d OR array_to_string(p.tags, ' ') %[1]s $%[2]d)",
			like, n))
	}
	if f.Featured {
		clauses = append(clauses, "p.featured = true")
	}
	if f.IsNew {
		clauses = append(clauses, "p.is_new = true")
	}

	if len(clauses) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

// catalogOrderBy maps a sort key to an ORDER BY clause. Unknown keys fall
// back to featured-first.
func catalogOrderBy(sort string) string {
	switch sort {
	case "price-asc":
		return "ORDER BY p.price ASC, p.id ASC"
	case "price-desc":
		return "ORDER BY p.price DESC, p.id ASC"
	case "newest":
		return "ORDER BY p.created_at DESC, p.id DESC"
	case "rating":
		return "ORDER BY p.rating DESC, p.id ASC"
	default:
		return "ORDER BY p.featured DESC, p.created_at DESC, p.id DESC"
	}
}

// productRow scans a product joined with its category.
type productRow struct {
	models.Product
	CatID   int    `db:"cat_id"`
	CatSlug string `db:"cat_slug"`
	CatName string `db:"cat_name"`
	CatIcon string `db:"cat_icon"`
}

func (row *productRow) toProduct() models.Product {
	p := row.Product
	p.Currency = models.CurrencyKES
	p.InStock = p.StockCount > 0
	p.Category = &models.Category{
		ID:   row.CatID,
		Slug: row.CatSlug,
		Name: row.CatName,
		Icon: row.CatIcon,
	}
	return p
}

const productSelect = `
    SELECT p.id, p.slug, p.name, p.description, p.price, p.compare_price,
           p.images, p.brand, p.sizes, p.colors, p.stock_count, p.rating,
           p.review_count, p.tags, p.featured, p.is_new, p.category_id,
           p.created_at, p.updated_at,
           c.id AS cat_id, c.slug AS cat_slug, c.name AS cat_name, c.icon AS cat_icon
    FROM products p
    JOIN categories c ON c.id = p.category_id`

// List returns a page of products matching the filter plus the total count.
func (r *ProductRepository) List(f *CatalogFilter) ([]models.Product, int, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = 50
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	offset := (f.Page - 1) * f.Limit

	where, args := buildCatalogWhere(f, r.caseSensitiveSearch)

	countQuery := `SELECT COUNT(1) FROM products p JOIN categories c ON c.id = p.category_id ` + where
	var total int
	if err := r.db.Get(&total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	listQuery := fmt.Sprintf("%s %s %s LIMIT $%d OFFSET $%d",
		productSelect, where, catalogOrderBy(f.Sort), len(args)+1, len(args)+2)
	args = append(args, f.Limit, offset)

	var rows []productRow
	if err := r.db.Select(&rows, listQuery, args...); err != nil {
		return nil, 0, err
	}

	products := make([]models.Product, 0, len(rows))
	for i := range rows {
		products = append(products, rows[i].toProduct())
	}
	return products, total, nil
}

// GetBySlug returns a single product by slug with its category.
func (r *ProductRepository) GetBySlug(slug string) (*models.Product, error) {
	var row productRow
	if err := r.db.Get(&row, productSelect+` WHERE p.slug = $1 LIMIT 1`, slug); err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}
	p := row.toProduct()
	return &p, nil
}

// GetByID returns a single product by id with its category.
func (r *ProductRepository) GetByID(id int) (*models.Product, error) {
	var row productRow
	if err := r.db.Get(&row, productSelect+` WHERE p.id = $1 LIMIT 1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}
	p := row.toProduct()
	return &p, nil
}

// Create inserts a new product. A duplicate slug maps to ErrDuplicateSlug.
func (r *ProductRepository) Create(p *models.Product) error {
	const q = `
        INSERT INTO products (slug, name, description, price, compare_price, images,
                              brand, sizes, colors, stock_count, rating, review_count,
                              tags, featured, is_new, category_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
        RETURNING id, created_at, updated_at`

	err := r.db.QueryRowx(q,
		p.Slug, p.Name, p.Description, p.Price, p.ComparePrice, p.Images,
		p.Brand, p.Sizes, p.Colors, p.StockCount, p.Rating, p.ReviewCount,
		p.Tags, p.Featured, p.IsNew, p.CategoryID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if isUniqueViolation(err) {
		return utils.ErrDuplicateSlug
	}
	return err
}

// Update rewrites an existing product by id.
func (r *ProductRepository) Update(p *models.Product) error {
	const q = `
        UPDATE products SET
            slug = $2, name = $3, description = $4, price = $5, compare_price = $6,
            images = $7, brand = $8, sizes = $9, colors = $10, stock_count = $11,
            rating = $12, review_count = $13, tags = $14, featured = $15,
            is_new = $16, category_id = $17, updated_at = NOW()
        WHERE id = $1
        RETURNING updated_at`

	err := r.db.QueryRowx(q,
		p.ID, p.Slug, p.Name, p.Description, p.Price, p.ComparePrice,
		p.Images, p.Brand, p.Sizes, p.Colors, p.StockCount,
		p.Rating, p.ReviewCount, p.Tags, p.Featured, p.IsNew, p.CategoryID,
	).Scan(&p.UpdatedAt)
	if err == sql.ErrNoRows {
		return utils.ErrProductNotFound
	}
	if isUniqueViolation(err) {
		return utils.ErrDuplicateSlug
	}
	return err
}

// Delete removes a product by id. Historical order items keep their snapshot
// and their product_id becomes NULL.
func (r *ProductRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return utils.ErrProductNotFound
	}
	return nil
}

// DecrementStock conditionally reduces a product's stock inside the checkout
// transaction. It refuses to go below zero: zero rows affected means the
// product has fewer than qty units left.
func (r *ProductRepository) DecrementStock(ctx context.Context, q sqlx.ExtContext, productID, qty int) error {
	res, err := q.ExecContext(ctx, `
        UPDATE products
        SET stock_count = stock_count - $2, updated_at = NOW()
        WHERE id = $1 AND stock_count >= $2`, productID, qty)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return utils.ErrOutOfStock
	}
	return nil
}

// GetDistinctBrands returns all distinct brands in alphabetical order.
func (r *ProductRepository) GetDistinctBrands() ([]string, error) {
	var brands []string
	if err := r.db.Select(&brands, `SELECT DISTINCT brand FROM products WHERE brand != '' ORDER BY brand`); err != nil {
		return nil, err
	}
	return brands, nil
}

// Count returns the total number of products.
func (r *ProductRepository) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(1) FROM products`)
	return n, err
}

// Upsert inserts a product or leaves an existing one untouched. Used by the
// seeder.
func (r *ProductRepository) Upsert(p *models.Product) error {
	const q = `
        INSERT INTO products (slug, name, description, price, compare_price, images,
                              brand, sizes, colors, stock_count, rating, review_count,
                              tags, featured, is_new, category_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
        ON CONFLICT (slug) DO UPDATE SET slug = EXCLUDED.slug
        RETURNING id`
	return r.db.QueryRow(q,
		p.Slug, p.Name, p.Description, p.Price, p.ComparePrice, p.Images,
		p.Brand, p.Sizes, p.Colors, p.StockCount, p.Rating, p.ReviewCount,
		p.Tags, p.Featured, p.IsNew, p.CategoryID,
	).Scan(&p.ID)
}

// isUniqueViolation reports whether err is a Postgres unique constraint error.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == "23505"
}
