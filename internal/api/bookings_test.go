package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agrirent/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserBookingsDecodesPopulatedEquipment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bookings/user", r.URL.Path)
		w.Write([]byte(`[
			{"_id":"b1","equipmentId":{"_id":"eq1","name":"Seeder"},"rentalDate":"2026-09-03T00:00:00.000Z"}
		]`))
	}))
	defer srv.Close()

	client := New(srv.URL, session.NewMemoryStore(), NopNavigator)

	bookings, err := client.UserBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "b1", bookings[0].ID)
	assert.Equal(t, "Seeder", bookings[0].Equipment.Name)
	assert.Equal(t, time.September, bookings[0].RentalDate.Month())
}

func TestCreateBookingSendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/bookings", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req BookingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "eq1", req.EquipmentID)
		assert.Equal(t, "2026-09-03", req.RentalDate)

		w.Write([]byte(`{"_id":"b1","equipmentId":{"_id":"eq1"},"rentalDate":"2026-09-03T00:00:00.000Z"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, session.NewMemoryStore(), NopNavigator)

	booking, err := client.CreateBooking(context.Background(), BookingRequest{
		EquipmentID: "eq1",
		RentalDate:  "2026-09-03",
	})
	require.NoError(t, err)
	assert.Equal(t, "b1", booking.ID)
}

func TestUpdateAndDeleteBookingPaths(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Write([]byte(`{"_id":"b1","equipmentId":{"_id":"eq2"},"rentalDate":"2026-09-04T00:00:00.000Z"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, session.NewMemoryStore(), NopNavigator)

	_, err := client.UpdateBooking(context.Background(), "b1", BookingRequest{EquipmentID: "eq2", RentalDate: "2026-09-04"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/bookings/b1", gotPath)

	require.NoError(t, client.DeleteBooking(context.Background(), "b1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/bookings/b1", gotPath)
}

func TestBookingListUnauthorizedScenario(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"token expired"}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "stale"))

	nav := &countingNavigator{}
	client := New(srv.URL, store, nav)

	_, err := client.UserBookings(ctx)

	require.True(t, errors.Is(err, ErrUnauthorized))
	assert.False(t, store.IsAuthenticated(ctx))
	_, getErr := store.Get(ctx)
	assert.ErrorIs(t, getErr, session.ErrNoToken)
	assert.Equal(t, int64(1), nav.calls.Load())
}
