package audit

import (
	"gorm.io/gorm"

	"github.com/barbercloud/agenda-api/internal/models"
)

// Logger appends ActionLog rows. Entries are immutable; there is no update
// or delete path.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ev Event) error {
	entry := models.ActionLog{
		ShopID:        ev.ShopID,
		BarberID:      ev.BarberID,
		ClientID:      ev.ClientID,
		AppointmentID: ev.AppointmentID,
		Status:        ev.Status,
	}

	return l.db.Create(&entry).Error
}
