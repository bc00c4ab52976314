package entity

import "time"

// User is a storefront customer.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Admin is a back-office account.
type Admin struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserDashboard is the summary shown after login.
type UserDashboard struct {
	User         User        `json:"user"`
	OrderCount   int         `json:"order_count"`
	RecentOrders []Order     `json:"recent_orders"`
	TotalSpent   float64     `json:"total_spent"`
	ContactInfo  ContactInfo `json:"contact_info"`
}
