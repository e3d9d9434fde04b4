package appointment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/barbercloud/agenda-api/internal/domain/appointment"
	"github.com/barbercloud/agenda-api/internal/httperr"
	"github.com/barbercloud/agenda-api/internal/models"
)

func TestInitialStatusIsScheduled(t *testing.T) {
	assert.Equal(t, domain.StatusScheduled, domain.InitialStatus())
}

func TestTransitionGuards(t *testing.T) {
	cases := []struct {
		name    string
		check   func(domain.Status) error
		from    domain.Status
		allowed bool
	}{
		{"finalize from scheduled", domain.CanFinalize, domain.StatusScheduled, true},
		{"finalize from finalized", domain.CanFinalize, domain.StatusFinalized, false},
		{"finalize from cancelled", domain.CanFinalize, domain.StatusCancelled, false},
		{"cancel from scheduled", domain.CanCancel, domain.StatusScheduled, true},
		{"cancel from finalized", domain.CanCancel, domain.StatusFinalized, false},
		{"cancel from cancelled", domain.CanCancel, domain.StatusCancelled, false},
		{"edit scheduled", domain.CanEdit, domain.StatusScheduled, true},
		{"edit finalized", domain.CanEdit, domain.StatusFinalized, false},
		{"edit cancelled", domain.CanEdit, domain.StatusCancelled, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.check(tc.from)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
			}
		})
	}
}

func TestFinalize_SetsStatusAndTimestamp(t *testing.T) {
	ap := &models.Appointment{Status: string(domain.StatusScheduled), Price: 35, Service: "corte"}
	now := time.Now()

	require.NoError(t, domain.Finalize(ap, now, nil, nil))

	assert.Equal(t, string(domain.StatusFinalized), ap.Status)
	require.NotNil(t, ap.FinalizedAt)
	assert.True(t, ap.FinalizedAt.Equal(now))
	assert.Equal(t, 35.0, ap.Price)
	assert.Equal(t, "corte", ap.Service)
}

func TestFinalize_EmptyServiceOverrideIgnored(t *testing.T) {
	ap := &models.Appointment{Status: string(domain.StatusScheduled), Service: "corte"}
	empty := ""

	require.NoError(t, domain.Finalize(ap, time.Now(), nil, &empty))

	assert.Equal(t, "corte", ap.Service)
}

func TestCancel_SetsStatusAndTimestamp(t *testing.T) {
	ap := &models.Appointment{Status: string(domain.StatusScheduled)}
	now := time.Now()

	require.NoError(t, domain.Cancel(ap, now))

	assert.Equal(t, string(domain.StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.True(t, ap.CancelledAt.Equal(now))
}
