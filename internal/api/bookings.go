package api

import (
	"context"
	"net/http"
)

// UserBookings lists the current user's bookings
func (c *Client) UserBookings(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	if err := c.getJSON(ctx, "/bookings/user", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateBooking reserves a piece of equipment for a rental date.
// Whether the date falls inside the equipment's availability window is the
// backend's call; this layer passes the request through.
func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (*Booking, error) {
	var booking Booking
	if err := c.sendJSON(ctx, http.MethodPost, "/bookings", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateBooking changes an existing booking's equipment or rental date
func (c *Client) UpdateBooking(ctx context.Context, id string, req BookingRequest) (*Booking, error) {
	var booking Booking
	if err := c.sendJSON(ctx, http.MethodPut, "/bookings/"+id, req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// DeleteBooking removes a booking
func (c *Client) DeleteBooking(ctx context.Context, id string) error {
	return c.delete(ctx, "/bookings/"+id)
}
