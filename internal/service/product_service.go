package service

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/primehood/supplies-api/internal/models"
	"github.com/primehood/supplies-api/internal/repository"
)

// ProductService contains business logic for catalog browsing and admin
// product management.
type ProductService struct {
	products *repository.ProductRepository
}

// NewProductService constructs a ProductService.
func NewProductService(products *repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// ListParams are the raw storefront query parameters.
type ListParams struct {
	Category string
	Brand    string // comma-separated
	Search   string
	Featured bool
	IsNew    bool
	Sort     string
	Page     int
	Limit    int
}

// List returns a catalog page plus the total match count.
func (s *ProductService) List(p *ListParams) ([]models.Product, int, error) {
	filter := &repository.CatalogFilter{
		CategorySlug: p.Category,
		Search:       p.Search,
		Featured:     p.Featured,
		IsNew:        p.IsNew,
		Sort:         p.Sort,
		Page:         p.Page,
		Limit:        p.Limit,
	}
	for _, b := range strings.Split(p.Brand, ",") {
		if b = strings.TrimSpace(b); b != "" {
			filter.Brands = append(filter.Brands, b)
		}
	}
	return s.products.List(filter)
}

// GetBySlug returns one product by slug.
func (s *ProductService) GetBySlug(slug string) (*models.Product, error) {
	return s.products.GetBySlug(slug)
}

// GetBrands returns all distinct brands.
func (s *ProductService) GetBrands() ([]string, error) {
	return s.products.GetDistinctBrands()
}

// ProductRequest is the admin create/update payload.
type ProductRequest struct {
	Slug         string   `json:"slug" binding:"required"`
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Price        int      `json:"price" binding:"required,gt=0"`
	ComparePrice *int     `json:"comparePrice"`
	Images       []string `json:"images"`
	Brand        string   `json:"brand" binding:"required"`
	Sizes        []string `json:"sizes"`
	Colors       []string `json:"colors"`
	StockCount   int      `json:"stockCount" binding:"gte=0"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"reviewCount"`
	Tags         []string `json:"tags"`
	Featured     bool     `json:"featured"`
	IsNew        bool     `json:"isNew"`
	CategoryID   int      `json:"categoryId" binding:"required"`
}

func (req *ProductRequest) toModel() *models.Product {
	return &models.Product{
		Slug:         req.Slug,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		ComparePrice: req.ComparePrice,
		Images:       emptyIfNil(req.Images),
		Brand:        req.Brand,
		Sizes:        emptyIfNil(req.Sizes),
		Colors:       emptyIfNil(req.Colors),
		StockCount:   req.StockCount,
		Rating:       req.Rating,
		ReviewCount:  req.ReviewCount,
		Tags:         emptyIfNil(req.Tags),
		Featured:     req.Featured,
		IsNew:        req.IsNew,
		CategoryID:   req.CategoryID,
	}
}

// emptyIfNil keeps array columns NOT NULL: absent JSON arrays become {}.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Create inserts a new product.
func (s *ProductService) Create(req *ProductRequest) (*models.Product, error) {
	p := req.toModel()
	if err := s.products.Create(p); err != nil {
		return nil, err
	}
	log.Info().Str("slug", p.Slug).Int("id", p.ID).Msg("product created")
	return s.products.GetByID(p.ID)
}

// Update rewrites a product by id.
func (s *ProductService) Update(id int, req *ProductRequest) (*models.Product, error) {
	p := req.toModel()
	p.ID = id
	if err := s.products.Update(p); err != nil {
		return nil, err
	}
	return s.products.GetByID(id)
}

// Delete removes a product by id.
func (s *ProductService) Delete(id int) error {
	if err := s.products.Delete(id); err != nil {
		return err
	}
	log.Info().Int("id", id).Msg("product deleted")
	return nil
}
