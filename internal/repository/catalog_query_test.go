package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCatalogWhereEmpty(t *testing.T) {
	where, args := buildCatalogWhere(&CatalogFilter{}, false)
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildCatalogWhereCategory(t *testing.T) {
	where, args := buildCatalogWhere(&CatalogFilter{CategorySlug: "football"}, false)
	assert.Equal(t, "WHERE c.slug = $1", where)
	assert.Equal(t, []interface{}{"football"}, args)
}

func TestBuildCatalogWhereAllFilters(t *testing.T) {
	f := &CatalogFilter{
		CategorySlug: "football",
		Brands:       []string{"Adidas", "Nike"},
		Search:       "ball",
		Featured:     true,
		IsNew:        true,
	}
	where, args := buildCatalogWhere(f, false)

	assert.Contains(t, where, "c.slug = $1")
	assert.Contains(t, where, "p.brand = ANY($2)")
	assert.Contains(t, where, "p.name ILIKE $3")
	assert.Contains(t, where, "array_to_string(p.tags, ' ') ILIKE $3")
	assert.Contains(t, where, "p.featured = true")
	assert.Contains(t, where, "p.is_new = true")
	assert.Len(t, args, 3)
	assert.Equal(t, "%ball%", args[2])
}

func TestBuildCatalogWhereCaseSensitive(t *testing.T) {
	where, _ := buildCatalogWhere(&CatalogFilter{Search: "Ball"}, true)
	assert.Contains(t, where, "p.name LIKE $1")
	assert.NotContains(t, where, "ILIKE")

	where, _ = buildCatalogWhere(&CatalogFilter{Search: "Ball"}, false)
	assert.Contains(t, where, "p.name ILIKE $1")
}

func TestCatalogOrderBy(t *testing.T) {
	tests := []struct {
		sort string
		want string
	}{
		{"price-asc", "ORDER BY p.price ASC, p.id ASC"},
		{"price-desc", "ORDER BY p.price DESC, p.id ASC"},
		{"newest", "ORDER BY p.created_at DESC, p.id DESC"},
		{"rating", "ORDER BY p.rating DESC, p.id ASC"},
		{"featured", "ORDER BY p.featured DESC, p.created_at DESC, p.id DESC"},
		{"", "ORDER BY p.featured DESC, p.created_at DESC, p.id DESC"},
		{"bogus", "ORDER BY p.featured DESC, p.created_at DESC, p.id DESC"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, catalogOrderBy(tt.sort), "sort=%q", tt.sort)
	}
}
