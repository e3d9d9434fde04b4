package appointment

import (
	"context"

	"github.com/barbercloud/agenda-api/internal/audit"
	"github.com/barbercloud/agenda-api/internal/cache"
	domain "github.com/barbercloud/agenda-api/internal/domain/appointment"
	"github.com/barbercloud/agenda-api/internal/metrics"
	"github.com/barbercloud/agenda-api/internal/models"
	"github.com/barbercloud/agenda-api/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
	cache *cache.Cache
}

func NewCancelAppointment(repo domain.Repository, rec audit.Recorder, c *cache.Cache) *CancelAppointment {
	return &CancelAppointment{repo: repo, audit: rec, cache: c}
}

// Execute moves a scheduled appointment to cancelled, freeing its slot.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(ap, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	metrics.Transitions.WithLabelValues(ap.Status).Inc()
	uc.audit.Dispatch(audit.Event{
		ShopID:        ap.ShopID,
		BarberID:      ap.BarberID,
		ClientID:      ap.ClientID,
		AppointmentID: ap.ID,
		Status:        ap.Status,
	})

	uc.cache.InvalidateSlots(ctx, ap.ShopID, ap.BarberID, ap.StartTime)

	return ap, nil
}
