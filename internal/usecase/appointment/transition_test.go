package appointment_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbercloud/agenda-api/internal/cache"
	domain "github.com/barbercloud/agenda-api/internal/domain/appointment"
	"github.com/barbercloud/agenda-api/internal/httperr"
	"github.com/barbercloud/agenda-api/internal/models"
	"github.com/barbercloud/agenda-api/internal/timezone"
	uc "github.com/barbercloud/agenda-api/internal/usecase/appointment"
)

func seedScheduled(repo *fakeRepo) *models.Appointment {
	repo.seed()
	ap := &models.Appointment{
		ShopID:    1,
		BarberID:  1,
		ClientID:  1,
		Service:   "corte",
		Price:     35,
		StartTime: timezone.Now().Add(24 * time.Hour),
		Status:    string(domain.StatusScheduled),
	}
	_ = repo.CreateAppointment(context.Background(), ap)
	return ap
}

func TestFinalize_WritesExactlyOneAuditEvent(t *testing.T) {
	repo := newFakeRepo()
	ap := seedScheduled(repo)
	rec := &fakeRecorder{}
	finalize := uc.NewFinalizeAppointment(repo, rec)

	got, err := finalize.Execute(context.Background(), ap.ID, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusFinalized), got.Status)
	require.NotNil(t, got.FinalizedAt)

	require.Len(t, rec.events, 1)
	ev := rec.events[0]
	assert.Equal(t, ap.ShopID, ev.ShopID)
	assert.Equal(t, ap.BarberID, ev.BarberID)
	assert.Equal(t, ap.ClientID, ev.ClientID)
	assert.Equal(t, ap.ID, ev.AppointmentID)
	assert.Equal(t, string(domain.StatusFinalized), ev.Status)
}

func TestFinalize_UpdatesPriceAndServiceWithTransition(t *testing.T) {
	repo := newFakeRepo()
	ap := seedScheduled(repo)
	finalize := uc.NewFinalizeAppointment(repo, &fakeRecorder{})

	price := 42.505
	service := "corte + barba"
	got, err := finalize.Execute(context.Background(), ap.ID, &price, &service)
	require.NoError(t, err)

	assert.Equal(t, 42.51, got.Price)
	assert.Equal(t, "corte + barba", got.Service)

	stored, err := repo.GetAppointment(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, 42.51, stored.Price)
}

func TestFinalize_RejectsBadPriceWithoutTransition(t *testing.T) {
	repo := newFakeRepo()
	ap := seedScheduled(repo)
	rec := &fakeRecorder{}
	finalize := uc.NewFinalizeAppointment(repo, rec)

	price := -5.0
	_, err := finalize.Execute(context.Background(), ap.ID, &price, nil)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))

	stored, err := repo.GetAppointment(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusScheduled), stored.Status)
	assert.Empty(t, rec.events)
}

func TestCancel_WritesAuditEventAndTimestamps(t *testing.T) {
	repo := newFakeRepo()
	ap := seedScheduled(repo)
	rec := &fakeRecorder{}
	cancel := uc.NewCancelAppointment(repo, rec, cache.New(""))

	got, err := cancel.Execute(context.Background(), ap.ID)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), got.Status)
	require.NotNil(t, got.CancelledAt)
	assert.Nil(t, got.FinalizedAt)

	require.Len(t, rec.events, 1)
	assert.Equal(t, string(domain.StatusCancelled), rec.events[0].Status)
}

func TestTransition_TerminalStatesAreFinal(t *testing.T) {
	repo := newFakeRepo()
	ap := seedScheduled(repo)
	rec := &fakeRecorder{}
	finalize := uc.NewFinalizeAppointment(repo, rec)
	cancel := uc.NewCancelAppointment(repo, rec, cache.New(""))

	_, err := finalize.Execute(context.Background(), ap.ID, nil, nil)
	require.NoError(t, err)

	_, err = cancel.Execute(context.Background(), ap.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))

	_, err = finalize.Execute(context.Background(), ap.ID, nil, nil)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))

	// Rejected transitions must not add audit entries.
	assert.Len(t, rec.events, 1)
}

func TestTransition_UnknownAppointmentIsNotFound(t *testing.T) {
	repo := newFakeRepo()
	repo.seed()
	rec := &fakeRecorder{}

	_, err := uc.NewFinalizeAppointment(repo, rec).Execute(context.Background(), 42, nil, nil)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))

	_, err = uc.NewCancelAppointment(repo, rec, cache.New("")).Execute(context.Background(), 42)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
	assert.Empty(t, rec.events)
}
