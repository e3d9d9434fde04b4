package report

import (
	"time"

	"github.com/barbercloud/agenda-api/internal/httperr"
)

type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// Window resolves a named period to a [start, end) range relative to now.
// Daily means the same calendar date as now; weekly, monthly and yearly are
// trailing 7/30/365-day windows, not calendar-aligned.
func Window(p Period, now time.Time) (time.Time, time.Time, error) {
	switch p {
	case PeriodDaily:
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return start, start.Add(24 * time.Hour), nil
	case PeriodWeekly:
		return now.AddDate(0, 0, -7), now, nil
	case PeriodMonthly:
		return now.AddDate(0, 0, -30), now, nil
	case PeriodYearly:
		return now.AddDate(0, 0, -365), now, nil
	}
	return time.Time{}, time.Time{}, httperr.ErrBusiness(httperr.CodeValidation)
}
