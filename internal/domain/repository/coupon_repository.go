package repository

import (
	"context"

	"github.com/furnishfusion/storefront/internal/domain/entity"
)

// CouponRepository stores discount codes. Codes are compared upper-cased
// and trimmed.
type CouponRepository interface {
	Create(ctx context.Context, c entity.Coupon) (int64, error)
	GetActiveByCode(ctx context.Context, code string) (*entity.Coupon, error)
	List(ctx context.Context) ([]entity.Coupon, error)
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}

// ReviewRepository stores purchase-gated product ratings.
type ReviewRepository interface {
	// Upsert replaces an existing (user, product) review.
	Upsert(ctx context.Context, r entity.Review) error
	ListByProduct(ctx context.Context, productID int64) ([]entity.Review, error)
}

// WishlistRepository stores (user, product) wishlist pairs.
type WishlistRepository interface {
	Add(ctx context.Context, userID, productID int64) error
	Remove(ctx context.Context, userID, productID int64) error
	ListByUser(ctx context.Context, userID int64) ([]entity.ProductWithRating, error)
	IDsByUser(ctx context.Context, userID int64) ([]int64, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
}

// ContactRepository stores the single company contact row and the
// admin-managed UPI QR image.
type ContactRepository interface {
	GetContact(ctx context.Context) (*entity.ContactInfo, error)
	SaveContact(ctx context.Context, info entity.ContactInfo) error
	GetUPIQR(ctx context.Context) (*entity.UPIQR, error)
	SaveUPIQR(ctx context.Context, imageURL string) error
}
