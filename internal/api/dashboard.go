package api

import (
	"context"
	"sync"
)

// Result pairs a fetched value with the error that produced it, so dashboard
// callers can render whichever resources loaded instead of failing wholesale.
type Result[T any] struct {
	Value T
	Err   error
}

// Dashboard aggregates the resources the dashboard view needs
type Dashboard struct {
	Profile   Result[*Profile]
	Bookings  Result[[]Booking]
	Equipment Result[[]Equipment]
}

// FetchDashboard loads profile, bookings, and owned equipment concurrently.
// Each resource carries its own result; one failing fetch does not discard
// the others.
func (c *Client) FetchDashboard(ctx context.Context) *Dashboard {
	var (
		wg sync.WaitGroup
		d  Dashboard
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		d.Profile.Value, d.Profile.Err = c.Profile(ctx)
	}()
	go func() {
		defer wg.Done()
		d.Bookings.Value, d.Bookings.Err = c.UserBookings(ctx)
	}()
	go func() {
		defer wg.Done()
		d.Equipment.Value, d.Equipment.Err = c.MyEquipment(ctx)
	}()
	wg.Wait()

	return &d
}
