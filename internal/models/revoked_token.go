package models

import "time"

// RevokedToken backs the logout denylist when redis is not configured.
// Rows past expires_at are dead weight but harmless; the token they
// block has already expired on its own.
type RevokedToken struct {
	ID uint `gorm:"primaryKey" json:"id"`

	JTI       string    `gorm:"size:36;uniqueIndex;not null" json:"jti"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`

	CreatedAt time.Time `json:"created_at"`
}
