package appointment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/barbercloud/agenda-api/internal/domain/appointment"
	"github.com/barbercloud/agenda-api/internal/httperr"
)

func TestNormalizePrice(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"integer stays", 35, 35},
		{"two decimals stay", 49.90, 49.90},
		{"rounds half up", 49.999, 50},
		{"rounds down", 10.004, 10},
		{"zero is valid", 0, 0},
		{"cap is valid", 999.99, 999.99},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := domain.NormalizePrice(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizePrice_Rejections(t *testing.T) {
	for _, in := range []float64{-0.01, -100, 1000, 999.995} {
		_, err := domain.NormalizePrice(in)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation), "price %v", in)
	}
}
