package models

import "time"

const (
	RoleCustomer = "customer"
	RoleBarber   = "barber"
	RoleAdmin    = "admin"
)

// IsValidRole reports whether s belongs to the closed role set.
func IsValidRole(s string) bool {
	switch s {
	case RoleCustomer, RoleBarber, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`

	Email        string  `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PhoneNumber  *string `gorm:"size:20;uniqueIndex" json:"phone_number"`
	PasswordHash string  `gorm:"size:255;not null" json:"-"`

	Role string `gorm:"size:20;default:'customer'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
