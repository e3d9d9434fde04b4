package models

import "time"

// Service is a bookable offering owned by a shop. Prices are stored
// already rounded to two decimals and never exceed 999.99.
type Service struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `gorm:"index" json:"shop_id"`

	Name  string  `gorm:"size:100;not null" json:"name"`
	Price float64 `gorm:"type:numeric(6,2)" json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
