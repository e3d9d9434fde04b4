package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/barbercloud/agenda-api/internal/domain/appointment"
	"github.com/barbercloud/agenda-api/internal/httperr"
	"github.com/barbercloud/agenda-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return err
}

// --------------------------------------------------
// References
// --------------------------------------------------

func (r *BookingGormRepository) GetShop(ctx context.Context, id uint) (*models.Shop, error) {
	var shop models.Shop
	if err := r.db.WithContext(ctx).Preload("Services").First(&shop, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &shop, nil
}

func (r *BookingGormRepository) GetBarber(ctx context.Context, id uint) (*models.Barber, error) {
	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &barber, nil
}

func (r *BookingGormRepository) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &client, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) HasScheduledAt(
	ctx context.Context,
	barberID uint,
	at time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"barber_id = ? AND status = ? AND start_time = ?",
			barberID, string(domain.StatusScheduled), at,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		// The partial unique index on (barber_id, start_time) where
		// status = 'scheduled' closes the check-then-insert race.
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
		return err
	}
	return nil
}

// --------------------------------------------------
// Appointment (fetch / mutate)
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Client").
		First(&ap, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) DeleteAppointment(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return nil
}

func (r *BookingGormRepository) DeleteBarber(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("barber_id = ?", id).Delete(&models.Appointment{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Barber{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil
	})
}

func (r *BookingGormRepository) ListAppointments(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Client")

	if f.ShopID != nil {
		q = q.Where("shop_id = ?", *f.ShopID)
	}
	if f.BarberID != nil {
		q = q.Where("barber_id = ?", *f.BarberID)
	}
	if f.ClientID != nil {
		q = q.Where("client_id = ?", *f.ClientID)
	}
	if f.Date != nil {
		dayStart := time.Date(
			f.Date.Year(), f.Date.Month(), f.Date.Day(),
			0, 0, 0, 0, f.Date.Location(),
		)
		q = q.Where("start_time >= ? AND start_time < ?", dayStart, dayStart.Add(24*time.Hour))
	}

	var aps []models.Appointment
	if err := q.Order("start_time ASC").Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) GetSchedule(ctx context.Context, shopID uint) (*models.Schedule, error) {
	var sched models.Schedule
	if err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		First(&sched).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &sched, nil
}

func (r *BookingGormRepository) ListScheduledForDay(
	ctx context.Context,
	shopID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("barber_id", "start_time").
		Where(
			"shop_id = ? AND status = ? AND start_time >= ? AND start_time < ?",
			shopID, string(domain.StatusScheduled), dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Reporting
// --------------------------------------------------

func (r *BookingGormRepository) ListFinalizedForPeriod(
	ctx context.Context,
	shopID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Where(
			"shop_id = ? AND status = ? AND start_time >= ? AND start_time < ?",
			shopID, string(domain.StatusFinalized), start, end,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
