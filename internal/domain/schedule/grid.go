package schedule

import (
	"time"

	"github.com/barbercloud/agenda-api/internal/models"
)

// Defaults used when a day carries no explicit bounds. The slot grid is
// fixed at half-hour steps with the lunch gap excluded.
const (
	DefaultOpen  = "09:00"
	DefaultClose = "19:00"
	LunchStart   = "12:00"
	LunchEnd     = "13:00"

	SlotStep = 30 * time.Minute
)

// atTime anchors an "HH:MM" value on the given calendar date. Malformed
// values collapse to midnight, which never matches a slot.
func atTime(date time.Time, hm string) time.Time {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		t = time.Time{}
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	)
}

// DayWindow resolves a day's opening and closing bounds: min/max across the
// day's shift entries when any exist, the day's own open/close otherwise,
// and the global defaults as last resort.
func DayWindow(day *models.GridDay, date time.Time) (open, close time.Time) {
	if day == nil {
		return atTime(date, DefaultOpen), atTime(date, DefaultClose)
	}

	if len(day.Shifts) > 0 {
		open = atTime(date, day.Shifts[0].Start)
		close = atTime(date, day.Shifts[0].End)
		for _, sh := range day.Shifts[1:] {
			if s := atTime(date, sh.Start); s.Before(open) {
				open = s
			}
			if e := atTime(date, sh.End); e.After(close) {
				close = e
			}
		}
		return open, close
	}

	if day.Open != "" && day.Close != "" {
		return atTime(date, day.Open), atTime(date, day.Close)
	}

	return atTime(date, DefaultOpen), atTime(date, DefaultClose)
}

// shiftCovers reports whether the shift covers a slot starting at t,
// i.e. start <= t < end.
func shiftCovers(sh models.ShiftEntry, date, t time.Time) bool {
	start := atTime(date, sh.Start)
	end := atTime(date, sh.End)
	return !t.Before(start) && t.Before(end)
}

func inLunchGap(date, t time.Time) bool {
	return !t.Before(atTime(date, LunchStart)) && t.Before(atTime(date, LunchEnd))
}
