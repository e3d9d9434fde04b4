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

func futureDateTime(t *testing.T) string {
	t.Helper()
	return timezone.Now().Add(48 * time.Hour).Truncate(time.Hour).Format(uc.DateTimeLayout)
}

func TestBookAppointment_Success(t *testing.T) {
	repo := newFakeRepo()
	shopID, barberID, clientID := repo.seed()
	book := uc.NewBookAppointment(repo, cache.New(""))

	ap, err := book.Execute(context.Background(), uc.BookAppointmentInput{
		ShopID:   shopID,
		BarberID: barberID,
		ClientID: clientID,
		Service:  "corte",
		Price:    35,
		DateTime: futureDateTime(t),
	})

	require.NoError(t, err)
	assert.NotZero(t, ap.ID)
	assert.Equal(t, string(domain.StatusScheduled), ap.Status)
	assert.Equal(t, 35.0, ap.Price)
	assert.Nil(t, ap.FinalizedAt)
	assert.Nil(t, ap.CancelledAt)
}

func TestBookAppointment_RoundsPriceToTwoDecimals(t *testing.T) {
	repo := newFakeRepo()
	shopID, barberID, clientID := repo.seed()
	book := uc.NewBookAppointment(repo, cache.New(""))

	ap, err := book.Execute(context.Background(), uc.BookAppointmentInput{
		ShopID:   shopID,
		BarberID: barberID,
		ClientID: clientID,
		Service:  "corte",
		Price:    49.999,
		DateTime: futureDateTime(t),
	})

	require.NoError(t, err)
	assert.Equal(t, 50.0, ap.Price)
}

func TestBookAppointment_RejectsPriceAboveCap(t *testing.T) {
	repo := newFakeRepo()
	shopID, barberID, clientID := repo.seed()
	book := uc.NewBookAppointment(repo, cache.New(""))

	_, err := book.Execute(context.Background(), uc.BookAppointmentInput{
		ShopID:   shopID,
		BarberID: barberID,
		ClientID: clientID,
		Service:  "corte",
		Price:    1000,
		DateTime: futureDateTime(t),
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

func TestBookAppointment_UnknownBarberIsInvalidReference(t *testing.T) {
	repo := newFakeRepo()
	shopID, _, clientID := repo.seed()
	book := uc.NewBookAppointment(repo, cache.New(""))

	_, err := book.Execute(context.Background(), uc.BookAppointmentInput{
		ShopID:   shopID,
		BarberID: 99,
		ClientID: clientID,
		Service:  "corte",
		Price:    35,
		DateTime: futureDateTime(t),
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidReference))
}

func TestBookAppointment_BarberFromAnotherShopIsInvalidReference(t *testing.T) {
	repo := newFakeRepo()
	shopID, _, clientID := repo.seed()
	repo.barbers[7] = &models.Barber{ID: 7, ShopID: 2, Name: "Otto"}
	book := uc.NewBookAppointment(repo, cache.New(""))

	_, err := book.Execute(context.Background(), uc.BookAppointmentInput{
		ShopID:   shopID,
		BarberID: 7,
		ClientID: clientID,
		Service:  "corte",
		Price:    35,
		DateTime: futureDateTime(t),
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidReference))
}

func TestBookAppointment_MalformedDateTime(t *testing.T) {
	repo := newFakeRepo()
	shopID, barberID, clientID := repo.seed()
	book := uc.NewBookAppointment(repo, cache.New(""))

	_, err := book.Execute(context.Background(), uc.BookAppointmentInput{
		ShopID:   shopID,
		BarberID: barberID,
		ClientID: clientID,
		Service:  "corte",
		Price:    35,
		DateTime: "31/12/2026 14:00",
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

func TestBookAppointment_SameSlotTwiceConflicts(t *testing.T) {
	repo := newFakeRepo()
	shopID, barberID, _ := repo.seed()
	book := uc.NewBookAppointment(repo, cache.New(""))
	at := futureDateTime(t)

	_, err := book.Execute(context.Background(), uc.BookAppointmentInput{
		ShopID: shopID, BarberID: barberID, ClientID: 1,
		Service: "corte", Price: 35, DateTime: at,
	})
	require.NoError(t, err)

	_, err = book.Execute(context.Background(), uc.BookAppointmentInput{
		ShopID: shopID, BarberID: barberID, ClientID: 2,
		Service: "barba", Price: 20, DateTime: at,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotConflict))

	// The first booking is untouched.
	first, err := repo.GetAppointment(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusScheduled), first.Status)
	assert.Len(t, repo.appointments, 1)
}

func TestBookAppointment_CancelledSlotIsRebookable(t *testing.T) {
	repo := newFakeRepo()
	shopID, barberID, _ := repo.seed()
	book := uc.NewBookAppointment(repo, cache.New(""))
	cancel := uc.NewCancelAppointment(repo, &fakeRecorder{}, cache.New(""))
	at := futureDateTime(t)

	first, err := book.Execute(context.Background(), uc.BookAppointmentInput{
		ShopID: shopID, BarberID: barberID, ClientID: 1,
		Service: "corte", Price: 35, DateTime: at,
	})
	require.NoError(t, err)

	_, err = cancel.Execute(context.Background(), first.ID)
	require.NoError(t, err)

	second, err := book.Execute(context.Background(), uc.BookAppointmentInput{
		ShopID: shopID, BarberID: barberID, ClientID: 2,
		Service: "corte", Price: 35, DateTime: at,
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}
