package constants

// Order lifecycle statuses. Admins may set any of these; users may only
// cancel while the order has not reached a terminal state.
const (
	OrderPending    = "pending"
	OrderAccepted   = "accepted"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCompleted  = "completed"
	OrderCancelled  = "cancelled"
)

// ValidOrderStatuses is the set an admin status update must come from.
var ValidOrderStatuses = map[string]bool{
	OrderPending:    true,
	OrderAccepted:   true,
	OrderProcessing: true,
	OrderShipped:    true,
	OrderDelivered:  true,
	OrderCompleted:  true,
	OrderCancelled:  true,
}

// Payment methods. Netbanking was dropped on purpose: COD + UPI only.
const (
	PaymentCOD = "cod"
	PaymentUPI = "upi"
)

// Payment statuses.
const (
	PaymentPending              = "pending"
	PaymentAwaitingVerification = "awaiting_verification"
	PaymentCompleted            = "completed"
)

// UPIAdvancePercent is the advance collected up front on UPI orders,
// as a fraction of the final (post-discount) total.
const UPIAdvancePercent = 0.05

// MinPasswordLength for user registration.
const MinPasswordLength = 6

// MaxFileUploadSize caps product image / payment proof uploads (bytes).
const MaxFileUploadSize = 16 * 1024 * 1024

// AllowedImageExtensions for product images, payment proofs and QR uploads.
var AllowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// PlannerProductLimit caps the product matches per budget category.
const PlannerProductLimit = 3
