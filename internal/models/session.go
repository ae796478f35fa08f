package models

import (
	"time"
)

// Session binds a browser to an authenticated user for a bounded time.
// The token is an opaque value handed out as a cookie; expiry is checked
// on read, expired rows are removed lazily.
type Session struct {
	Token     string    `gorm:"primaryKey;size:36" json:"-"`
	UserID    string    `gorm:"size:36;index" json:"userId"`
	UserEmail string    `gorm:"size:255" json:"userEmail"`
	UserName  string    `gorm:"size:100" json:"userName"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// Expired reports whether the session is past its expiry at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
