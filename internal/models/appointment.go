package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ShopID uint `json:"shop_id"`
	Shop   Shop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	BarberID uint   `json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	Service string  `gorm:"size:100;not null" json:"service"`
	Price   float64 `gorm:"type:numeric(6,2)" json:"price"`

	StartTime time.Time `gorm:"index;not null" json:"start_time"`

	// scheduled | finalized | cancelled. At most one scheduled row may exist
	// per (barber_id, start_time); a partial unique index enforces it.
	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	FinalizedAt *time.Time `json:"finalized_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
