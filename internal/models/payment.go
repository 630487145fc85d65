package models

import "time"

// Payment records money paid for a slot. Append-only: no refund or
// update path exists.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Amount uint `gorm:"not null" json:"amount"`

	BarberProfileID uint          `gorm:"not null" json:"barber_profile_id"`
	BarberProfile   BarberProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barber_profile"`

	SlotID uint `gorm:"not null" json:"slot_id"`
	Slot   Slot `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"slot"`

	CustomerID uint `gorm:"not null" json:"customer_id"`
	Customer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"customer"`

	CreatedAt time.Time `json:"created_at"`
}
