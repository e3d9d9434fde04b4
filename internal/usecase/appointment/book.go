package appointment

import (
	"context"
	"time"

	"github.com/barbercloud/agenda-api/internal/cache"
	domain "github.com/barbercloud/agenda-api/internal/domain/appointment"
	"github.com/barbercloud/agenda-api/internal/httperr"
	"github.com/barbercloud/agenda-api/internal/metrics"
	"github.com/barbercloud/agenda-api/internal/models"
	"github.com/barbercloud/agenda-api/internal/timezone"
)

// DateTimeLayout is the wire format for appointment start times,
// interpreted in the shop region's timezone.
const DateTimeLayout = "2006-01-02 15:04"

type BookAppointmentInput struct {
	ShopID   uint
	BarberID uint
	ClientID uint

	Service  string
	Price    float64
	DateTime string
}

type BookAppointment struct {
	repo  domain.Repository
	cache *cache.Cache
}

func NewBookAppointment(repo domain.Repository, c *cache.Cache) *BookAppointment {
	return &BookAppointment{repo: repo, cache: c}
}

// Execute gates a booking: resolve references, check the exact slot for an
// existing scheduled appointment, then create. No audit entry is written at
// creation; logging begins at the first status transition.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetShop(ctx, in.ShopID)
	if err != nil {
		return nil, refError(err)
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, refError(err)
	}
	if barber.ShopID != shop.ID {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidReference)
	}

	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, refError(err)
	}

	if in.Service == "" {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	start, err := time.ParseInLocation(DateTimeLayout, in.DateTime, timezone.Location())
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	price, err := domain.NormalizePrice(in.Price)
	if err != nil {
		return nil, err
	}

	taken, err := uc.repo.HasScheduledAt(ctx, barber.ID, start)
	if err != nil {
		return nil, err
	}
	if taken {
		metrics.SlotConflicts.Inc()
		return nil, httperr.ErrBusiness(httperr.CodeSlotConflict)
	}

	ap := &models.Appointment{
		ShopID:    shop.ID,
		BarberID:  barber.ID,
		ClientID:  client.ID,
		Service:   in.Service,
		Price:     price,
		StartTime: start,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotConflict) {
			metrics.SlotConflicts.Inc()
		}
		return nil, err
	}

	metrics.BookingsCreated.Inc()
	uc.cache.InvalidateSlots(ctx, shop.ID, barber.ID, start)

	return ap, nil
}

// refError: an unresolvable entity reference on booking is a bad reference,
// not a missing resource.
func refError(err error) error {
	if httperr.IsBusiness(err, httperr.CodeNotFound) {
		return httperr.ErrBusiness(httperr.CodeInvalidReference)
	}
	return err
}
