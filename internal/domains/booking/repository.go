package booking

import "context"

// Repository is the booking slice of the entity store.
type Repository interface {
	GetBookings(ctx context.Context) ([]Booking, error)
	CreateBooking(ctx context.Context, input CreateBookingInput) (*Booking, error)
}
