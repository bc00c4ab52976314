package repository

import (
	"context"

	"github.com/furnishfusion/storefront/internal/domain/entity"
)

// ProductRepository is the catalog store. The budget planner only ever
// reads through FindByKeywordsAndMaxPrice.
type ProductRepository interface {
	Create(ctx context.Context, p entity.Product) (int64, error)
	SaveMany(ctx context.Context, products []entity.Product) (int, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Delete(ctx context.Context, id int64) error

	// List returns products with review aggregates, filtered and sorted.
	List(ctx context.Context, filter entity.ProductFilter) ([]entity.ProductWithRating, error)
	Categories(ctx context.Context) ([]string, error)
	PriceRange(ctx context.Context) (min, max float64, err error)
	All(ctx context.Context) ([]entity.ProductWithRating, error)
	Recent(ctx context.Context, limit int) ([]entity.Product, error)
	Count(ctx context.Context) (int, error)

	// FindByKeywordsAndMaxPrice matches products whose name or category
	// contains any keyword (case-insensitive) with price <= maxPrice,
	// ordered by price descending, limited to limit rows.
	FindByKeywordsAndMaxPrice(ctx context.Context, keywords []string, maxPrice float64, limit int) ([]entity.Product, error)

	// ReferencedByOrders reports whether the product appears in any order,
	// which blocks deletion.
	ReferencedByOrders(ctx context.Context, id int64) (bool, error)
}
