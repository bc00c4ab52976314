package repository

import (
	"context"

	"github.com/furnishfusion/storefront/internal/domain/entity"
)

// OrderRepository persists orders and their line items.
type OrderRepository interface {
	// Create inserts the order and its items in one transaction and
	// returns the new order ID.
	Create(ctx context.Context, order entity.Order, items []entity.OrderItem) (int64, error)

	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	GetForUser(ctx context.Context, id, userID int64) (*entity.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]entity.Order, error)
	ListAll(ctx context.Context) ([]entity.Order, error)
	ItemsByOrder(ctx context.Context, orderID int64) ([]entity.OrderItem, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	UpdatePaymentStatus(ctx context.Context, id int64, paymentStatus string) error

	Count(ctx context.Context) (int, error)
	TotalRevenue(ctx context.Context) (float64, error)
	Recent(ctx context.Context, limit int) ([]entity.Order, error)

	CountByUser(ctx context.Context, userID int64) (int, error)
	TotalSpentByUser(ctx context.Context, userID int64) (float64, error)
	RecentByUser(ctx context.Context, userID int64, limit int) ([]entity.Order, error)

	// UserHasPurchased gates product reviews.
	UserHasPurchased(ctx context.Context, userID, productID int64) (bool, error)
}
