package appointment

import (
	"context"

	"github.com/barbercloud/agenda-api/internal/audit"
	domain "github.com/barbercloud/agenda-api/internal/domain/appointment"
	"github.com/barbercloud/agenda-api/internal/metrics"
	"github.com/barbercloud/agenda-api/internal/models"
	"github.com/barbercloud/agenda-api/internal/timezone"
)

type FinalizeAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewFinalizeAppointment(repo domain.Repository, rec audit.Recorder) *FinalizeAppointment {
	return &FinalizeAppointment{repo: repo, audit: rec}
}

// Execute moves a scheduled appointment to finalized, optionally updating
// price and service label with the same write. Exactly one audit event is
// dispatched per successful transition.
func (uc *FinalizeAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	price *float64,
	service *string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.Finalize(ap, timezone.Now(), price, service); err != nil {
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

	return ap, nil
}
