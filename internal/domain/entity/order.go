package entity

import "time"

// Order is a placed checkout. Totals are stored after discount.
type Order struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	Total           float64   `json:"total"`
	Status          string    `json:"status"`
	PaymentMethod   string    `json:"payment_method"`
	PaymentStatus   string    `json:"payment_status"`
	AdvanceAmount   *float64  `json:"advance_amount,omitempty"`
	PaymentProofURL string    `json:"payment_proof_url,omitempty"`
	CouponID        *int64    `json:"coupon_id,omitempty"`
	DiscountAmount  float64   `json:"discount_amount"`
	ContactMobile   string    `json:"contact_mobile"`
	ContactAddress  string    `json:"contact_address"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Joined user fields, populated for admin listings.
	UserName  string `json:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
}

// OrderItem snapshots a product at purchase time.
type OrderItem struct {
	ID          int64   `json:"id"`
	OrderID     int64   `json:"order_id"`
	ProductID   int64   `json:"product_id"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	ProductName string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
}

// StatusStage describes one step of the order tracking timeline.
type StatusStage struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Order int    `json:"order"`
}

// OrderWithItems is an order plus its line items and tracking stage.
type OrderWithItems struct {
	Order        Order       `json:"order"`
	Items        []OrderItem `json:"order_items"`
	CurrentStage StatusStage `json:"current_stage"`
}

// CartItem is a cart line priced live from the catalog.
type CartItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Quantity    int     `json:"quantity"`
	Total       float64 `json:"total"`
}

// CheckoutPreview is what the checkout page renders from.
type CheckoutPreview struct {
	Items          []CartItem `json:"cart_items"`
	Total          float64    `json:"total"`
	TotalAfter     float64    `json:"total_after"`
	AppliedCoupon  *Coupon    `json:"applied_coupon,omitempty"`
	DiscountAmount float64    `json:"discount_amount"`
	UPIQRImageURL  string     `json:"upi_qr_image_url,omitempty"`
}
