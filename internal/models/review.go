package models

import "time"

// Review is append-only; rows survive customer deletion with the
// customer reference nulled.
type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberProfileID uint          `gorm:"not null" json:"barber_profile_id"`
	BarberProfile   BarberProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barber_profile"`

	SlotID uint `gorm:"not null" json:"slot_id"`
	Slot   Slot `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"slot"`

	CustomerID *uint `json:"customer_id"`
	Customer   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	Review string `gorm:"type:text;not null" json:"review"`

	CreatedAt time.Time `json:"created_at"`
}
