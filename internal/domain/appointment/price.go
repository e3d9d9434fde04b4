package appointment

import (
	"github.com/shopspring/decimal"

	"github.com/barbercloud/agenda-api/internal/httperr"
)

// MaxPrice is the upper bound for any service or appointment price.
const MaxPrice = 999.99

var maxPrice = decimal.NewFromFloat(MaxPrice)

// NormalizePrice rounds to two decimals (round-half-up) and rejects
// negative values and values above MaxPrice after rounding. 49.999
// normalizes to 50.00.
func NormalizePrice(p float64) (float64, error) {
	d := decimal.NewFromFloat(p).Round(2)

	if d.IsNegative() || d.GreaterThan(maxPrice) {
		return 0, httperr.ErrBusiness(httperr.CodeValidation)
	}

	f, _ := d.Float64()
	return f, nil
}
