package schedule

import (
	"time"

	"github.com/barbercloud/agenda-api/internal/models"
)

// Slot is one bookable (barber, time) candidate on a given date.
type Slot struct {
	BarberID uint   `json:"barber_id"`
	Time     string `json:"time"`
}

// Taken indexes scheduled appointment start times per barber. Keys are unix
// seconds so times compare equal across locations.
type Taken map[uint]map[int64]bool

// TakenFrom builds the per-barber index from scheduled appointments.
func TakenFrom(appointments []models.Appointment) Taken {
	taken := Taken{}
	for _, ap := range appointments {
		if taken[ap.BarberID] == nil {
			taken[ap.BarberID] = map[int64]bool{}
		}
		taken[ap.BarberID][ap.StartTime.Unix()] = true
	}
	return taken
}

func (t Taken) has(barberID uint, at time.Time) bool {
	return t[barberID][at.Unix()]
}

// ForShop enumerates bookable slots for every barber with a shift on the
// given date. Candidates step through the day window in half-hour
// increments; the lunch gap, times at or before now, uncovered times and
// already-taken times are excluded. An inactive day yields nothing.
func ForShop(day *models.GridDay, date time.Time, taken Taken, now time.Time) []Slot {
	if day == nil || !day.Active || len(day.Shifts) == 0 {
		return []Slot{}
	}

	open, close := DayWindow(day, date)
	slots := []Slot{}

	for cur := open; cur.Before(close); cur = cur.Add(SlotStep) {
		if inLunchGap(date, cur) || !cur.After(now) {
			continue
		}

		for _, sh := range day.Shifts {
			if !shiftCovers(sh, date, cur) {
				continue
			}
			if taken.has(sh.BarberID, cur) {
				continue
			}
			slots = append(slots, Slot{
				BarberID: sh.BarberID,
				Time:     cur.Format("15:04"),
			})
		}
	}

	return slots
}

// ForBarber enumerates bookable slots for a single barber. When the grid has
// no entry for the date, the barber is treated as available across the
// default day window; the grid is advisory for booking, authoritative only
// for browsing.
func ForBarber(day *models.GridDay, barberID uint, date time.Time, taken Taken, now time.Time) []Slot {
	if day == nil {
		day = &models.GridDay{
			Day:    date.Day(),
			Active: true,
			Shifts: []models.ShiftEntry{
				{BarberID: barberID, Start: DefaultOpen, End: DefaultClose},
			},
		}
	}

	all := ForShop(day, date, taken, now)
	slots := []Slot{}
	for _, s := range all {
		if s.BarberID == barberID {
			slots = append(slots, s)
		}
	}
	return slots
}
