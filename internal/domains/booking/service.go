package booking

import "context"

type Service interface {
	ListBookings(ctx context.Context) ([]Booking, error)
	CreateBooking(ctx context.Context, input CreateBookingInput) (*Booking, error)
}
