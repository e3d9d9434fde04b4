package appointment

import (
	"context"

	domain "github.com/barbercloud/agenda-api/internal/domain/appointment"
	"github.com/barbercloud/agenda-api/internal/models"
)

type UpdateAppointmentInput struct {
	Service *string
	Price   *float64
}

type UpdateAppointment struct {
	repo domain.Repository
}

func NewUpdateAppointment(repo domain.Repository) *UpdateAppointment {
	return &UpdateAppointment{repo: repo}
}

// Execute applies a partial merge of price/service to a still-scheduled
// appointment. Plain edits are not transitions and write no audit entry.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanEdit(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	if in.Price != nil {
		p, err := domain.NormalizePrice(*in.Price)
		if err != nil {
			return nil, err
		}
		ap.Price = p
	}
	if in.Service != nil && *in.Service != "" {
		ap.Service = *in.Service
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}
