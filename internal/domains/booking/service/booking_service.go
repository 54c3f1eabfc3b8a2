package service

import (
	"context"

	"berserk-tattoos-backend/internal/domains/booking"
)

type bookingService struct {
	repo booking.Repository
}

func NewService(repo booking.Repository) booking.Service {
	return &bookingService{repo: repo}
}

func (s *bookingService) ListBookings(ctx context.Context) ([]booking.Booking, error) {
	return s.repo.GetBookings(ctx)
}

func (s *bookingService) CreateBooking(ctx context.Context, input booking.CreateBookingInput) (*booking.Booking, error) {
	return s.repo.CreateBooking(ctx, input)
}
