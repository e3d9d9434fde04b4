package appointment

import (
	"context"
	"encoding/json"
	"time"

	"github.com/barbercloud/agenda-api/internal/cache"
	domain "github.com/barbercloud/agenda-api/internal/domain/appointment"
	"github.com/barbercloud/agenda-api/internal/domain/schedule"
	"github.com/barbercloud/agenda-api/internal/httperr"
	"github.com/barbercloud/agenda-api/internal/models"
	"github.com/barbercloud/agenda-api/internal/timezone"
)

type AvailabilityInput struct {
	ShopID uint
	// BarberID zero means every barber with a shift that day.
	BarberID uint
	Date     time.Time
}

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.Cache
}

func NewGetAvailability(repo domain.Repository, c *cache.Cache) *GetAvailability {
	return &GetAvailability{repo: repo, cache: c}
}

// Execute enumerates bookable slots for a shop and date from the staffing
// grid and the day's scheduled appointments. Results are cached for one
// polling interval.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]schedule.Slot, error) {

	key := cache.SlotKey(in.ShopID, in.BarberID, in.Date.Format("2006-01-02"))
	if b, ok := uc.cache.Get(ctx, key); ok {
		var cached []schedule.Slot
		if err := json.Unmarshal(b, &cached); err == nil {
			return cached, nil
		}
	}

	shop, err := uc.repo.GetShop(ctx, in.ShopID)
	if err != nil {
		return nil, err
	}

	if in.BarberID != 0 {
		barber, err := uc.repo.GetBarber(ctx, in.BarberID)
		if err != nil || barber.ShopID != shop.ID {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidReference)
		}
	}

	// No published grid is not an error; the resolver falls back to the
	// default day window.
	var sched *models.Schedule
	if s, err := uc.repo.GetSchedule(ctx, shop.ID); err == nil {
		sched = s
	} else if !httperr.IsBusiness(err, httperr.CodeNotFound) {
		return nil, err
	}

	loc := timezone.Location()
	dayStart := time.Date(in.Date.Year(), in.Date.Month(), in.Date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	scheduled, err := uc.repo.ListScheduledForDay(ctx, shop.ID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	day := sched.DayFor(dayStart)
	taken := schedule.TakenFrom(scheduled)
	now := timezone.Now()

	var slots []schedule.Slot
	if in.BarberID != 0 {
		slots = schedule.ForBarber(day, in.BarberID, dayStart, taken, now)
	} else {
		slots = schedule.ForShop(day, dayStart, taken, now)
	}

	if b, err := json.Marshal(slots); err == nil {
		uc.cache.Set(ctx, key, b)
	}

	return slots, nil
}
