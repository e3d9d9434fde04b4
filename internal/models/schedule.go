package models

import "time"

// ShiftEntry is one barber's working window on a grid day. Times are "HH:MM".
type ShiftEntry struct {
	BarberID uint   `json:"barber_id"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

// GridDay configures one calendar day of the staffing grid.
type GridDay struct {
	Day    int          `json:"day"`
	Active bool         `json:"active"`
	Open   string       `json:"open"`
	Close  string       `json:"close"`
	Shifts []ShiftEntry `json:"shifts"`
}

// Schedule is a shop's staffing grid for one calendar month. A shop holds at
// most one row; publishing replaces the whole value, never merges it.
type Schedule struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `gorm:"uniqueIndex" json:"shop_id"`

	Month int `gorm:"not null" json:"month"`
	Year  int `gorm:"not null" json:"year"`

	Days []GridDay `gorm:"type:jsonb;serializer:json" json:"days"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DayFor returns the grid entry for the given date, or nil when the schedule
// does not cover that month or has no entry for the day.
func (s *Schedule) DayFor(date time.Time) *GridDay {
	if s == nil || s.Month != int(date.Month()) || s.Year != date.Year() {
		return nil
	}
	for i := range s.Days {
		if s.Days[i].Day == date.Day() {
			return &s.Days[i]
		}
	}
	return nil
}
