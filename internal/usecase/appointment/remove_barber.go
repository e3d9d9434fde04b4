package appointment

import (
	"context"

	domain "github.com/barbercloud/agenda-api/internal/domain/appointment"
)

type RemoveBarber struct {
	repo domain.Repository
}

func NewRemoveBarber(repo domain.Repository) *RemoveBarber {
	return &RemoveBarber{repo: repo}
}

// Execute deletes a barber and cascades to all their appointments, whatever
// their status. History for the shop's other barbers is untouched; the
// ActionLog keeps its rows (references turn dangling, the log is append-only).
func (uc *RemoveBarber) Execute(ctx context.Context, barberID uint) error {
	barber, err := uc.repo.GetBarber(ctx, barberID)
	if err != nil {
		return err
	}

	return uc.repo.DeleteBarber(ctx, barber.ID)
}
