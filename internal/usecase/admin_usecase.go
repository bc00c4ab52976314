package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/furnishfusion/storefront/internal/domain/constants"
	"github.com/furnishfusion/storefront/internal/domain/entity"
	"github.com/furnishfusion/storefront/internal/domain/repository"
	"github.com/furnishfusion/storefront/internal/infrastructure/excel"
	"github.com/furnishfusion/storefront/internal/infrastructure/notify"
)

// AdminUseCase is the back office: dashboard stats, catalog CRUD,
// order management, coupons, contact info and the UPI QR.
type AdminUseCase struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
	users    repository.UserRepository
	coupons  repository.CouponRepository
	contact  repository.ContactRepository
	notifier notify.Notifier
}

func NewAdminUseCase(
	products repository.ProductRepository,
	orders repository.OrderRepository,
	users repository.UserRepository,
	coupons repository.CouponRepository,
	contact repository.ContactRepository,
	notifier notify.Notifier,
) *AdminUseCase {
	return &AdminUseCase{products: products, orders: orders, users: users, coupons: coupons, contact: contact, notifier: notifier}
}

// DashboardStats is the admin landing page payload.
type DashboardStats struct {
	ProductCount int              `json:"product_count"`
	OrderCount   int              `json:"order_count"`
	UserCount    int              `json:"user_count"`
	TotalRevenue float64          `json:"total_revenue"`
	RecentOrders []entity.Order   `json:"recent_orders"`
	NewProducts  []entity.Product `json:"new_products"`
}

func (uc *AdminUseCase) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error

	if stats.ProductCount, err = uc.products.Count(ctx); err != nil {
		return nil, err
	}
	if stats.OrderCount, err = uc.orders.Count(ctx); err != nil {
		return nil, err
	}
	if stats.UserCount, err = uc.users.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalRevenue, err = uc.orders.TotalRevenue(ctx); err != nil {
		return nil, err
	}
	if stats.RecentOrders, err = uc.orders.Recent(ctx, 5); err != nil {
		return nil, err
	}
	if stats.NewProducts, err = uc.products.Recent(ctx, 5); err != nil {
		return nil, err
	}
	return stats, nil
}

// AddProduct creates a catalog item. A missing category is detected
// from the name; the manual rating is clamped to [0, 5].
func (uc *AdminUseCase) AddProduct(ctx context.Context, p entity.Product) (int64, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return 0, fmt.Errorf("%w: product name is required", ErrInvalidInput)
	}
	if p.Price <= 0 {
		return 0, fmt.Errorf("%w: price must be greater than zero", ErrInvalidInput)
	}
	if strings.TrimSpace(p.Category) == "" {
		p.Category = DetectCategory(p.Name)
	}
	if p.Rating < 0 {
		p.Rating = 0
	}
	if p.Rating > 5 {
		p.Rating = 5
	}
	return uc.products.Create(ctx, p)
}

// DeleteProduct refuses to remove products that appear in orders, so
// order history keeps resolving.
func (uc *AdminUseCase) DeleteProduct(ctx context.Context, id int64) error {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("%w: product %d", ErrNotFound, id)
	}

	referenced, err := uc.products.ReferencedByOrders(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return fmt.Errorf("%w: product is part of existing orders and cannot be deleted", ErrConflict)
	}
	return uc.products.Delete(ctx, id)
}

func (uc *AdminUseCase) Products(ctx context.Context) ([]entity.ProductWithRating, error) {
	return uc.products.All(ctx)
}

// Orders lists every order with items and tracking stage for the
// back-office table.
func (uc *AdminUseCase) Orders(ctx context.Context) ([]entity.OrderWithItems, error) {
	orders, err := uc.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entity.OrderWithItems, 0, len(orders))
	for _, order := range orders {
		items, err := uc.orders.ItemsByOrder(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, entity.OrderWithItems{
			Order:        order,
			Items:        items,
			CurrentStage: StageFor(order.Status),
		})
	}
	return out, nil
}

// UpdateOrderStatus moves an order along the timeline. Marking a COD
// order delivered or completed settles its payment too.
func (uc *AdminUseCase) UpdateOrderStatus(ctx context.Context, orderID int64, status string) error {
	status = strings.ToLower(strings.TrimSpace(status))
	if !constants.ValidOrderStatuses[status] {
		return fmt.Errorf("%w: unknown order status %q", ErrInvalidInput, status)
	}

	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("%w: order %d", ErrNotFound, orderID)
	}

	if err := uc.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return err
	}

	if order.PaymentMethod == constants.PaymentCOD &&
		(status == constants.OrderDelivered || status == constants.OrderCompleted) {
		if err := uc.orders.UpdatePaymentStatus(ctx, orderID, constants.PaymentCompleted); err != nil {
			return err
		}
	}

	uc.notifier.OrderStatusChanged(*order, status)
	return nil
}

// VerifyPayment marks a UPI advance as verified.
func (uc *AdminUseCase) VerifyPayment(ctx context.Context, orderID int64) error {
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("%w: order %d", ErrNotFound, orderID)
	}
	if order.PaymentStatus != constants.PaymentAwaitingVerification {
		return fmt.Errorf("%w: order %d is not awaiting payment verification", ErrConflict, orderID)
	}
	return uc.orders.UpdatePaymentStatus(ctx, orderID, constants.PaymentCompleted)
}

// AddCoupon validates and stores a discount code.
func (uc *AdminUseCase) AddCoupon(ctx context.Context, code, discountType string, value float64) (int64, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return 0, fmt.Errorf("%w: coupon code is required", ErrInvalidInput)
	}
	if discountType != entity.DiscountPercent && discountType != entity.DiscountFixed {
		return 0, fmt.Errorf("%w: discount type must be percent or fixed", ErrInvalidInput)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%w: discount value must be greater than zero", ErrInvalidInput)
	}
	if discountType == entity.DiscountPercent && value > 100 {
		return 0, fmt.Errorf("%w: percentage discount cannot exceed 100", ErrInvalidInput)
	}
	return uc.coupons.Create(ctx, entity.Coupon{
		Code:          code,
		DiscountType:  discountType,
		DiscountValue: value,
		IsActive:      true,
	})
}

func (uc *AdminUseCase) Coupons(ctx context.Context) ([]entity.Coupon, error) {
	return uc.coupons.List(ctx)
}

func (uc *AdminUseCase) SetCouponActive(ctx context.Context, id int64, active bool) error {
	return uc.coupons.SetActive(ctx, id, active)
}

func (uc *AdminUseCase) DeleteCoupon(ctx context.Context, id int64) error {
	return uc.coupons.Delete(ctx, id)
}

func (uc *AdminUseCase) Contact(ctx context.Context) (*entity.ContactInfo, error) {
	return uc.contact.GetContact(ctx)
}

func (uc *AdminUseCase) UpdateContact(ctx context.Context, info entity.ContactInfo) error {
	if strings.TrimSpace(info.CompanyName) == "" {
		return fmt.Errorf("%w: company name is required", ErrInvalidInput)
	}
	return uc.contact.SaveContact(ctx, info)
}

func (uc *AdminUseCase) SaveUPIQR(ctx context.Context, imageURL string) error {
	if strings.TrimSpace(imageURL) == "" {
		return fmt.Errorf("%w: QR image is required", ErrInvalidInput)
	}
	return uc.contact.SaveUPIQR(ctx, imageURL)
}

// ImportCatalog bulk-loads products from an .xlsx price list. Rows with
// no category get one detected from the name. Returns how many rows
// were stored.
func (uc *AdminUseCase) ImportCatalog(ctx context.Context, r io.Reader) (int, error) {
	products, err := excel.ImportProducts(r)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	for i := range products {
		if strings.TrimSpace(products[i].Category) == "" {
			products[i].Category = DetectCategory(products[i].Name)
		}
	}
	return uc.products.SaveMany(ctx, products)
}

// ExportCatalog renders the whole catalog as an .xlsx workbook.
func (uc *AdminUseCase) ExportCatalog(ctx context.Context) ([]byte, error) {
	products, err := uc.products.All(ctx)
	if err != nil {
		return nil, err
	}
	return excel.ExportProducts(products)
}
