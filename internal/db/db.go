package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/barbercloud/agenda-api/internal/config"
	"github.com/barbercloud/agenda-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Shop{},
		&models.Service{},
		&models.Schedule{},
		&models.Barber{},
		&models.Client{},
		&models.Appointment{},
		&models.ActionLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	// Invariant: at most one scheduled appointment per (barber, start time).
	// The booking usecase pre-checks for a readable error; this index is the
	// authority under concurrent inserts, so starting without it is not an
	// option.
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uidx_appointments_scheduled_slot
        ON appointments (barber_id, start_time)
        WHERE status = 'scheduled'
    `).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to create scheduled-slot index")
	}

	return db
}
