package models

import "time"

// Session is an opaque bearer credential tied to one user. It stays valid
// until the backing row is removed; there is no expiry.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
}
