package report

import (
	"context"
	"time"

	domain "github.com/barbercloud/agenda-api/internal/domain/appointment"
	"github.com/barbercloud/agenda-api/internal/domain/report"
	"github.com/barbercloud/agenda-api/internal/httperr"
	"github.com/barbercloud/agenda-api/internal/timezone"
)

type GroupBy string

const (
	GroupByDay    GroupBy = "day"
	GroupByBarber GroupBy = "barber"
)

type StatsInput struct {
	ShopID  uint
	Period  report.Period
	From    *time.Time
	To      *time.Time
	GroupBy GroupBy
}

type StatsResult struct {
	From    time.Time       `json:"from"`
	To      time.Time       `json:"to"`
	GroupBy GroupBy         `json:"group_by"`
	Buckets []report.Bucket `json:"buckets"`
}

// Stats aggregates finalized appointments for dashboards. The rows are
// loaded once and aggregated in memory.
type Stats struct {
	repo domain.Repository
}

func NewStats(repo domain.Repository) *Stats {
	return &Stats{repo: repo}
}

func (uc *Stats) window(in StatsInput) (time.Time, time.Time, error) {
	// Explicit bounds win over named periods. A lone bound leaves the other
	// side open-ended rather than falling back to a period default.
	if in.From != nil || in.To != nil {
		from := time.Time{}
		to := timezone.Now()
		if in.From != nil {
			from = *in.From
		}
		if in.To != nil {
			to = *in.To
		}
		return from, to, nil
	}
	if in.Period != "" {
		return report.Window(in.Period, timezone.Now())
	}
	// Default dashboard view.
	return report.Window(report.PeriodMonthly, timezone.Now())
}

func (uc *Stats) Execute(ctx context.Context, in StatsInput) (*StatsResult, error) {
	from, to, err := uc.window(in)
	if err != nil {
		return nil, err
	}

	aps, err := uc.repo.ListFinalizedForPeriod(ctx, in.ShopID, from, to)
	if err != nil {
		return nil, err
	}

	res := &StatsResult{From: from, To: to, GroupBy: in.GroupBy}
	switch in.GroupBy {
	case GroupByBarber:
		res.Buckets = report.ByBarber(aps)
	case GroupByDay, "":
		res.GroupBy = GroupByDay
		res.Buckets = report.ByDay(aps)
	default:
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	return res, nil
}

// TopServices ranks service labels by occurrence within the window.
func (uc *Stats) TopServices(ctx context.Context, in StatsInput, n int) ([]report.ServiceCount, error) {
	from, to, err := uc.window(in)
	if err != nil {
		return nil, err
	}

	aps, err := uc.repo.ListFinalizedForPeriod(ctx, in.ShopID, from, to)
	if err != nil {
		return nil, err
	}

	return report.TopServices(aps, n), nil
}
