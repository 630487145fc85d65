package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// A slot admits at most one booking; the unique index is what makes
	// two concurrent booking attempts resolve to a single winner.
	SlotID uint `gorm:"uniqueIndex;not null" json:"slot_id"`
	Slot   Slot `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"slot"`

	CustomerID uint `gorm:"not null" json:"customer_id"`
	Customer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"customer"`

	State  string `gorm:"size:15;default:'ongoing'" json:"state"`
	Reason string `gorm:"type:text" json:"reason"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
