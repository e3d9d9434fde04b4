package appointment_test

import (
	"context"
	"time"

	"github.com/barbercloud/agenda-api/internal/audit"
	domain "github.com/barbercloud/agenda-api/internal/domain/appointment"
	"github.com/barbercloud/agenda-api/internal/httperr"
	"github.com/barbercloud/agenda-api/internal/models"
)

// fakeRepo is an in-memory Repository double. It mirrors the store contract
// the gorm implementation provides, including the scheduled-slot uniqueness
// check on insert.
type fakeRepo struct {
	shops        map[uint]*models.Shop
	barbers      map[uint]*models.Barber
	clients      map[uint]*models.Client
	appointments map[uint]*models.Appointment
	schedules    map[uint]*models.Schedule
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		shops:        map[uint]*models.Shop{},
		barbers:      map[uint]*models.Barber{},
		clients:      map[uint]*models.Client{},
		appointments: map[uint]*models.Appointment{},
		schedules:    map[uint]*models.Schedule{},
	}
}

func (r *fakeRepo) seed() (shopID, barberID, clientID uint) {
	r.shops[1] = &models.Shop{ID: 1, Name: "Navalha", Slug: "navalha"}
	r.barbers[1] = &models.Barber{ID: 1, ShopID: 1, Name: "Rui"}
	r.clients[1] = &models.Client{ID: 1, ShopID: 1, Name: "Ana"}
	r.clients[2] = &models.Client{ID: 2, ShopID: 1, Name: "Bia"}
	return 1, 1, 1
}

func (r *fakeRepo) GetShop(_ context.Context, id uint) (*models.Shop, error) {
	if s, ok := r.shops[id]; ok {
		return s, nil
	}
	return nil, httperr.ErrBusiness(httperr.CodeNotFound)
}

func (r *fakeRepo) GetBarber(_ context.Context, id uint) (*models.Barber, error) {
	if b, ok := r.barbers[id]; ok {
		return b, nil
	}
	return nil, httperr.ErrBusiness(httperr.CodeNotFound)
}

func (r *fakeRepo) GetClient(_ context.Context, id uint) (*models.Client, error) {
	if c, ok := r.clients[id]; ok {
		return c, nil
	}
	return nil, httperr.ErrBusiness(httperr.CodeNotFound)
}

func (r *fakeRepo) HasScheduledAt(_ context.Context, barberID uint, at time.Time) (bool, error) {
	for _, ap := range r.appointments {
		if ap.BarberID == barberID &&
			ap.Status == string(domain.StatusScheduled) &&
			ap.StartTime.Equal(at) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if taken, _ := r.HasScheduledAt(ctx, ap.BarberID, ap.StartTime); taken {
		return httperr.ErrBusiness(httperr.CodeSlotConflict)
	}
	r.nextID++
	ap.ID = r.nextID
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	if ap, ok := r.appointments[id]; ok {
		cp := *ap
		return &cp, nil
	}
	return nil, httperr.ErrBusiness(httperr.CodeNotFound)
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := r.appointments[ap.ID]; !ok {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) DeleteAppointment(_ context.Context, id uint) error {
	if _, ok := r.appointments[id]; !ok {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	delete(r.appointments, id)
	return nil
}

func (r *fakeRepo) DeleteBarber(_ context.Context, id uint) error {
	if _, ok := r.barbers[id]; !ok {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	for apID, ap := range r.appointments {
		if ap.BarberID == id {
			delete(r.appointments, apID)
		}
	}
	delete(r.barbers, id)
	return nil
}

func (r *fakeRepo) ListAppointments(_ context.Context, f domain.ListFilter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if f.ShopID != nil && ap.ShopID != *f.ShopID {
			continue
		}
		if f.BarberID != nil && ap.BarberID != *f.BarberID {
			continue
		}
		if f.ClientID != nil && ap.ClientID != *f.ClientID {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (r *fakeRepo) GetSchedule(_ context.Context, shopID uint) (*models.Schedule, error) {
	if s, ok := r.schedules[shopID]; ok {
		return s, nil
	}
	return nil, httperr.ErrBusiness(httperr.CodeNotFound)
}

func (r *fakeRepo) ListScheduledForDay(
	_ context.Context,
	shopID uint,
	dayStart, dayEnd time.Time,
) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.ShopID == shopID &&
			ap.Status == string(domain.StatusScheduled) &&
			!ap.StartTime.Before(dayStart) && ap.StartTime.Before(dayEnd) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListFinalizedForPeriod(
	_ context.Context,
	shopID uint,
	start, end time.Time,
) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.ShopID == shopID &&
			ap.Status == string(domain.StatusFinalized) &&
			!ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakeRecorder captures audit events synchronously.
type fakeRecorder struct {
	events []audit.Event
}

func (f *fakeRecorder) Dispatch(ev audit.Event) {
	f.events = append(f.events, ev)
}
