package models

import "time"

// ActionLog is an append-only record of one appointment status transition.
// Rows are never updated or deleted.
type ActionLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ShopID        uint `json:"shop_id"`
	BarberID      uint `json:"barber_id"`
	ClientID      uint `json:"client_id"`
	AppointmentID uint `json:"appointment_id"`

	Barber      Barber      `gorm:"constraint:OnDelete:SET NULL;" json:"barber"`
	Client      Client      `gorm:"constraint:OnDelete:SET NULL;" json:"client"`
	Appointment Appointment `gorm:"constraint:OnDelete:SET NULL;" json:"appointment"`

	// Resulting appointment status after the transition.
	Status string `gorm:"size:20;not null" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
