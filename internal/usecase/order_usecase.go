package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/furnishfusion/storefront/internal/domain/constants"
	"github.com/furnishfusion/storefront/internal/domain/entity"
	"github.com/furnishfusion/storefront/internal/domain/repository"
	"github.com/furnishfusion/storefront/internal/infrastructure/notify"
	"github.com/furnishfusion/storefront/internal/planner"
)

// statusStages drives the tracking timeline shown to customers.
// Completed shares the final slot with delivered; cancelled sits
// outside the progression.
var statusStages = map[string]entity.StatusStage{
	constants.OrderPending:    {Label: "Order Placed", Icon: "📦", Order: 1},
	constants.OrderAccepted:   {Label: "Order Accepted", Icon: "✅", Order: 2},
	constants.OrderProcessing: {Label: "Processing", Icon: "⚙️", Order: 3},
	constants.OrderShipped:    {Label: "Shipped", Icon: "🚚", Order: 4},
	constants.OrderDelivered:  {Label: "Delivered", Icon: "🎉", Order: 5},
	constants.OrderCompleted:  {Label: "Completed", Icon: "✅", Order: 5},
	constants.OrderCancelled:  {Label: "Cancelled", Icon: "❌", Order: 0},
}

// OrderUseCase covers checkout, order tracking, cancellation and
// purchase-gated reviews.
type OrderUseCase struct {
	orders   repository.OrderRepository
	coupons  repository.CouponRepository
	reviews  repository.ReviewRepository
	contact  repository.ContactRepository
	cart     *CartUseCase
	notifier notify.Notifier
}

func NewOrderUseCase(
	orders repository.OrderRepository,
	coupons repository.CouponRepository,
	reviews repository.ReviewRepository,
	contact repository.ContactRepository,
	cart *CartUseCase,
	notifier notify.Notifier,
) *OrderUseCase {
	return &OrderUseCase{orders: orders, coupons: coupons, reviews: reviews, contact: contact, cart: cart, notifier: notifier}
}

// applyCoupon validates a code against the cart total. An unknown or
// inactive code yields (nil, 0), not an error; the caller decides how
// loudly to complain.
func (uc *OrderUseCase) applyCoupon(ctx context.Context, code string, total float64) (*entity.Coupon, float64, error) {
	code = strings.TrimSpace(code)
	if code == "" || total <= 0 {
		return nil, 0, nil
	}
	coupon, err := uc.coupons.GetActiveByCode(ctx, code)
	if err != nil {
		return nil, 0, err
	}
	if coupon == nil {
		return nil, 0, nil
	}

	var discount float64
	if coupon.DiscountType == entity.DiscountPercent {
		discount = planner.Round2(total * coupon.DiscountValue / 100)
	} else {
		discount = coupon.DiscountValue
		if discount > total {
			discount = total
		}
		discount = planner.Round2(discount)
	}
	return coupon, discount, nil
}

// CheckoutPreview prices the cart, applies an optional coupon and
// attaches the UPI QR for the payment step.
func (uc *OrderUseCase) CheckoutPreview(ctx context.Context, sess *entity.Session, couponCode string) (*entity.CheckoutPreview, error) {
	view, err := uc.cart.View(ctx, sess)
	if err != nil {
		return nil, err
	}
	if len(view.Items) == 0 {
		return nil, fmt.Errorf("%w: your cart is empty", ErrInvalidInput)
	}

	preview := &entity.CheckoutPreview{
		Items:      view.Items,
		Total:      view.Total,
		TotalAfter: view.Total,
	}

	coupon, discount, err := uc.applyCoupon(ctx, couponCode, view.Total)
	if err != nil {
		return nil, err
	}
	if coupon != nil {
		preview.AppliedCoupon = coupon
		preview.DiscountAmount = discount
		preview.TotalAfter = planner.Round2(view.Total - discount)
	}

	if qr, err := uc.contact.GetUPIQR(ctx); err == nil && qr != nil {
		preview.UPIQRImageURL = qr.ImageURL
	}
	return preview, nil
}

// PlaceOrderParams carries the checkout form.
type PlaceOrderParams struct {
	PaymentMethod   string
	CouponCode      string
	ContactMobile   string
	ContactAddress  string
	PaymentProofURL string
}

// PlaceOrder validates the form, snapshots the cart into an order and
// clears the cart. UPI orders carry a 5% advance and start awaiting
// verification; COD starts pending.
func (uc *OrderUseCase) PlaceOrder(ctx context.Context, sess *entity.Session, params PlaceOrderParams) (int64, error) {
	view, err := uc.cart.View(ctx, sess)
	if err != nil {
		return 0, err
	}
	if len(view.Items) == 0 {
		return 0, fmt.Errorf("%w: your cart is empty", ErrInvalidInput)
	}

	method := strings.TrimSpace(params.PaymentMethod)
	if method != constants.PaymentCOD && method != constants.PaymentUPI {
		method = constants.PaymentCOD
	}

	mobile := strings.TrimSpace(params.ContactMobile)
	address := strings.TrimSpace(params.ContactAddress)
	if mobile == "" || address == "" {
		return 0, fmt.Errorf("%w: mobile number and delivery address are required", ErrInvalidInput)
	}
	if !isTenDigitMobile(mobile) {
		return 0, fmt.Errorf("%w: please enter a valid 10-digit mobile number", ErrInvalidInput)
	}

	coupon, discount, err := uc.applyCoupon(ctx, params.CouponCode, view.Total)
	if err != nil {
		return 0, err
	}
	totalFinal := planner.Round2(view.Total - discount)

	order := entity.Order{
		UserID:         sess.UserID,
		Total:          totalFinal,
		Status:         constants.OrderPending,
		PaymentMethod:  method,
		PaymentStatus:  constants.PaymentPending,
		DiscountAmount: discount,
		ContactMobile:  mobile,
		ContactAddress: address,
	}
	if coupon != nil {
		order.CouponID = &coupon.ID
	}
	if method == constants.PaymentUPI {
		if strings.TrimSpace(params.PaymentProofURL) == "" {
			return 0, fmt.Errorf("%w: please upload UPI payment screenshot to place the order", ErrInvalidInput)
		}
		advance := planner.Round2(totalFinal * constants.UPIAdvancePercent)
		order.AdvanceAmount = &advance
		order.PaymentProofURL = params.PaymentProofURL
		order.PaymentStatus = constants.PaymentAwaitingVerification
	}

	items := make([]entity.OrderItem, 0, len(view.Items))
	for _, it := range view.Items {
		items = append(items, entity.OrderItem{
			ProductID:   it.ID,
			Quantity:    it.Quantity,
			Price:       it.Price,
			ProductName: it.Name,
		})
	}

	orderID, err := uc.orders.Create(ctx, order, items)
	if err != nil {
		return 0, fmt.Errorf("place order: %w", err)
	}

	uc.cart.Clear(sess)

	order.ID = orderID
	uc.notifier.OrderPlaced(order, items)
	return orderID, nil
}

// ListForUser returns the user's orders with items and the tracking
// stage for each.
func (uc *OrderUseCase) ListForUser(ctx context.Context, userID int64) ([]entity.OrderWithItems, error) {
	orders, err := uc.orders.ListByUser(ctx, userID)
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

// StageFor maps a status onto its timeline stage, tolerating unknown
// statuses from older rows.
func StageFor(status string) entity.StatusStage {
	status = strings.ToLower(status)
	if stage, ok := statusStages[status]; ok {
		return stage
	}
	return entity.StatusStage{Label: planner.RoomLabel(status), Icon: "📦", Order: 0}
}

// Cancel lets a user cancel their own order while it is still in
// flight. Delivered, completed and already-cancelled orders stay put.
func (uc *OrderUseCase) Cancel(ctx context.Context, userID, orderID int64) error {
	order, err := uc.orders.GetForUser(ctx, orderID, userID)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("%w: order %d", ErrNotFound, orderID)
	}

	status := strings.ToLower(order.Status)
	if status == constants.OrderDelivered || status == constants.OrderCompleted || status == constants.OrderCancelled {
		return fmt.Errorf("%w: cannot cancel order with status %s", ErrConflict, status)
	}

	if err := uc.orders.UpdateStatus(ctx, orderID, constants.OrderCancelled); err != nil {
		return err
	}
	uc.notifier.OrderStatusChanged(*order, constants.OrderCancelled)
	return nil
}

// RateProduct upserts a purchase-gated review.
func (uc *OrderUseCase) RateProduct(ctx context.Context, userID, productID int64, rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: invalid rating, please choose 1 to 5", ErrInvalidInput)
	}

	purchased, err := uc.orders.UserHasPurchased(ctx, userID, productID)
	if err != nil {
		return err
	}
	if !purchased {
		return fmt.Errorf("%w: you can only rate products you purchased", ErrConflict)
	}

	return uc.reviews.Upsert(ctx, entity.Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
	})
}

func isTenDigitMobile(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
