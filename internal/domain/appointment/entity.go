package appointment

import (
	"time"

	"github.com/barbercloud/agenda-api/internal/models"
)

// Cancel transitions a scheduled appointment to cancelled.
func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// Finalize transitions a scheduled appointment to finalized, optionally
// updating price and service label together with the status change.
func Finalize(ap *models.Appointment, now time.Time, price *float64, service *string) error {
	if err := CanFinalize(Status(ap.Status)); err != nil {
		return err
	}

	if price != nil {
		p, err := NormalizePrice(*price)
		if err != nil {
			return err
		}
		ap.Price = p
	}
	if service != nil && *service != "" {
		ap.Service = *service
	}

	ap.Status = string(StatusFinalized)
	ap.FinalizedAt = &now
	return nil
}
