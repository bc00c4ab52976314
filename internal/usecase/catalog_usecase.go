package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/furnishfusion/storefront/internal/domain/entity"
	"github.com/furnishfusion/storefront/internal/domain/repository"
)

// CatalogUseCase serves product browsing and the wishlist.
type CatalogUseCase struct {
	products repository.ProductRepository
	wishlist repository.WishlistRepository
}

func NewCatalogUseCase(products repository.ProductRepository, wishlist repository.WishlistRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, wishlist: wishlist}
}

// ProductListing is the full browse payload: rows plus the filter
// metadata the UI needs (category list, price slider bounds, wishlist).
type ProductListing struct {
	Products    []entity.ProductWithRating `json:"products"`
	Categories  []string                   `json:"categories"`
	MinPrice    float64                    `json:"min_price_db"`
	MaxPrice    float64                    `json:"max_price_db"`
	WishlistIDs []int64                    `json:"wishlist_ids"`
}

// List applies the catalog filters and, for logged-in users, marks
// wishlist membership.
func (uc *CatalogUseCase) List(ctx context.Context, filter entity.ProductFilter, userID int64) (*ProductListing, error) {
	products, err := uc.products.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	categories, err := uc.products.Categories(ctx)
	if err != nil {
		return nil, err
	}
	minPrice, maxPrice, err := uc.products.PriceRange(ctx)
	if err != nil {
		return nil, err
	}

	listing := &ProductListing{
		Products:   products,
		Categories: categories,
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
	}
	if userID > 0 {
		ids, err := uc.wishlist.IDsByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		listing.WishlistIDs = ids
	}
	return listing, nil
}

// AddToWishlist is idempotent; re-adding an item is not an error.
func (uc *CatalogUseCase) AddToWishlist(ctx context.Context, userID, productID int64) error {
	product, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("%w: product %d", ErrNotFound, productID)
	}
	return uc.wishlist.Add(ctx, userID, productID)
}

func (uc *CatalogUseCase) RemoveFromWishlist(ctx context.Context, userID, productID int64) error {
	return uc.wishlist.Remove(ctx, userID, productID)
}

func (uc *CatalogUseCase) Wishlist(ctx context.Context, userID int64) ([]entity.ProductWithRating, error) {
	return uc.wishlist.ListByUser(ctx, userID)
}

func (uc *CatalogUseCase) WishlistCount(ctx context.Context, userID int64) (int, error) {
	return uc.wishlist.CountByUser(ctx, userID)
}

// categoryRule maps name keywords to a catalog category. Checked in
// order; the first hit wins, so the specific entries come first.
type categoryRule struct {
	keywords []string
	category string
}

var categoryRules = []categoryRule{
	{[]string{"single bed", "single-bed", "singlebed"}, "Beds - Single Bed"},
	{[]string{"double bed", "double-bed", "doublebed"}, "Beds - Double Bed"},
	{[]string{"master bed", "master-bed", "masterbed", "king bed", "king-bed"}, "Beds - Master Bed"},
	{[]string{"sofa cum bed", "sofa-cum-bed", "sofacumbed", "sofa bed", "sofa-bed"}, "Beds - Sofa Cum Bed"},
	{[]string{"bed", "mattress"}, "Beds - Other"},
	{[]string{"sofa", "couch", "settee"}, "Sofas"},
	{[]string{"dining table", "dining-table", "diningtable", "dining"}, "Dining"},
	{[]string{"office chair", "office-chair", "officechair", "ergonomic"}, "Office - Chairs"},
	{[]string{"study desk", "study-desk", "studydesk", "office desk", "office-desk"}, "Office - Desks"},
	{[]string{"office", "study"}, "Office - Other"},
	{[]string{"wardrobe", "cabinet", "closet"}, "Storage - Wardrobes"},
	{[]string{"bookshelf", "book shelf", "book-shelf", "shelf"}, "Storage - Shelves"},
	{[]string{"storage", "drawer"}, "Storage - Other"},
	{[]string{"coffee table", "coffee-table", "coffeetable", "side table", "side-table"}, "Tables - Coffee Tables"},
	{[]string{"table"}, "Tables - Other"},
	{[]string{"chair"}, "Chairs"},
}

// DetectCategory guesses a catalog category from the product name.
// Used when an admin creates or imports a product without one.
func DetectCategory(productName string) string {
	name := strings.ToLower(productName)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.category
			}
		}
	}
	return "Furniture - Other"
}
