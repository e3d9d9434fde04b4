package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/barbercloud/agenda-api/internal/models"
)

// Bucket is one row of a revenue/count aggregation. Key is a date
// ("2006-01-02") or a barber name depending on the grouping.
type Bucket struct {
	Key      string  `json:"key"`
	BarberID uint    `json:"barber_id,omitempty"`
	Count    int     `json:"count"`
	Revenue  float64 `json:"revenue"`
}

// ServiceCount ranks a service label by occurrence.
type ServiceCount struct {
	Service string `json:"service"`
	Count   int    `json:"count"`
}

// All aggregation runs over rows already loaded and filtered to finalized
// status by the caller; sums use decimals so cents never drift.

func ByDay(appointments []models.Appointment) []Bucket {
	counts := map[string]int{}
	sums := map[string]decimal.Decimal{}

	for _, ap := range appointments {
		key := ap.StartTime.Format("2006-01-02")
		counts[key]++
		sums[key] = sums[key].Add(decimal.NewFromFloat(ap.Price))
	}

	out := make([]Bucket, 0, len(counts))
	for key, n := range counts {
		rev, _ := sums[key].Round(2).Float64()
		out = append(out, Bucket{Key: key, Count: n, Revenue: rev})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func ByBarber(appointments []models.Appointment) []Bucket {
	counts := map[uint]int{}
	sums := map[uint]decimal.Decimal{}
	names := map[uint]string{}

	for _, ap := range appointments {
		counts[ap.BarberID]++
		sums[ap.BarberID] = sums[ap.BarberID].Add(decimal.NewFromFloat(ap.Price))
		if ap.Barber.Name != "" {
			names[ap.BarberID] = ap.Barber.Name
		}
	}

	out := make([]Bucket, 0, len(counts))
	for id, n := range counts {
		rev, _ := sums[id].Round(2).Float64()
		out = append(out, Bucket{Key: names[id], BarberID: id, Count: n, Revenue: rev})
	}

	// Highest earners first, id as tiebreak for stable output.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].BarberID < out[j].BarberID
	})
	return out
}

// TopServices returns the n most frequent service labels. Ties break
// alphabetically so rankings are deterministic.
func TopServices(appointments []models.Appointment, n int) []ServiceCount {
	counts := map[string]int{}
	for _, ap := range appointments {
		counts[ap.Service]++
	}

	out := make([]ServiceCount, 0, len(counts))
	for svc, c := range counts {
		out = append(out, ServiceCount{Service: svc, Count: c})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Service < out[j].Service
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
