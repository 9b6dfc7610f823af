package models

import "time"

// Session is the session contract consumed by the storefront: the shape the
// frontend reads back after authenticating, nothing more.
type Session struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}
