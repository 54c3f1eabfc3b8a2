package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"berserk-tattoos-backend/internal/domains/booking"
	"berserk-tattoos-backend/internal/shared/response"
)

type BookingHandler struct {
	svc booking.Service
}

func NewBookingHandler(svc booking.Service) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// CreateBooking accepts a booking-form submission.
// POST /api/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid booking data")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Invalid booking data", err)
		return
	}

	b, err := h.svc.CreateBooking(c.Request.Context(), req.ToInput())
	if err != nil {
		response.InternalServerError(c, "Failed to create booking")
		return
	}

	response.JSON(c, http.StatusCreated, b)
}

// ListBookings returns every booking, newest last.
// GET /api/admin/bookings (admin only)
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.svc.ListBookings(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to fetch bookings")
		return
	}

	response.JSON(c, http.StatusOK, bookings)
}
