package appointment

import (
	"context"
	"time"

	"github.com/barbercloud/agenda-api/internal/models"
)

// ListFilter narrows appointment listings. Nil fields are ignored.
type ListFilter struct {
	ShopID   *uint
	BarberID *uint
	ClientID *uint
	Date     *time.Time
}

type Repository interface {
	// -------- References --------
	GetShop(ctx context.Context, id uint) (*models.Shop, error)
	GetBarber(ctx context.Context, id uint) (*models.Barber, error)
	GetClient(ctx context.Context, id uint) (*models.Client, error)

	// -------- Appointment (create / conflict) --------

	// HasScheduledAt reports an existing scheduled appointment for the exact
	// (barber, start time) pair.
	HasScheduledAt(ctx context.Context, barberID uint, at time.Time) (bool, error)

	// CreateAppointment persists a new row. A concurrent booking that races
	// past HasScheduledAt surfaces as a slot_conflict business error here.
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	// -------- Appointment (fetch / mutate) --------
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error
	DeleteAppointment(ctx context.Context, id uint) error
	ListAppointments(ctx context.Context, f ListFilter) ([]models.Appointment, error)

	// DeleteBarber removes a barber together with every appointment that
	// references them, terminal ones included, as one atomic write. No
	// appointment may outlive its barber.
	DeleteBarber(ctx context.Context, id uint) error

	// -------- Availability --------
	GetSchedule(ctx context.Context, shopID uint) (*models.Schedule, error)

	// ListScheduledForDay returns scheduled appointments for a shop within
	// [dayStart, dayEnd), ordered by start time.
	ListScheduledForDay(ctx context.Context, shopID uint, dayStart, dayEnd time.Time) ([]models.Appointment, error)

	// -------- Reporting --------

	// ListFinalizedForPeriod returns finalized appointments for a shop with
	// start time within [start, end), barber preloaded.
	ListFinalizedForPeriod(ctx context.Context, shopID uint, start, end time.Time) ([]models.Appointment, error)
}
