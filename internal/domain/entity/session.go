package entity

import "time"

// Session is server-side session state keyed by an opaque token. The cart
// lives here until checkout, so anonymous visitors can build one too.
type Session struct {
	Token         string          `json:"token"`
	UserID        int64           `json:"user_id,omitempty"`
	UserName      string          `json:"user_name,omitempty"`
	UserEmail     string          `json:"user_email,omitempty"`
	AdminID       int64           `json:"admin_id,omitempty"`
	AdminUsername string          `json:"admin_username,omitempty"`
	Cart          map[int64]int   `json:"cart"`
	CreatedAt     time.Time       `json:"created_at"`
	LastSeen      time.Time       `json:"last_seen"`
}

// IsUser reports whether the session belongs to a logged-in customer.
func (s *Session) IsUser() bool { return s != nil && s.UserID > 0 }

// IsAdmin reports whether the session belongs to a logged-in admin.
func (s *Session) IsAdmin() bool { return s != nil && s.AdminID > 0 }
