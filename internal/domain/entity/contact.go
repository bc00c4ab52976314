package entity

import "time"

// ContactInfo is the single company contact record.
type ContactInfo struct {
	ID          int64     `json:"id"`
	CompanyName string    `json:"company_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	ZipCode     string    `json:"zip_code"`
	Country     string    `json:"country"`
	Website     string    `json:"website"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UPIQR is the single admin-managed UPI QR image shown at checkout.
type UPIQR struct {
	ImageURL  string    `json:"image_url"`
	UpdatedAt time.Time `json:"updated_at"`
}
