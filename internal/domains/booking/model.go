package booking

import "time"

// Booking statuses. Creation always stamps StatusPending; transitions are
// an operational concern handled outside this service.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking is a consultation request submitted through the booking form.
type Booking struct {
	ID              string    `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	PreferredArtist *string   `json:"preferredArtist"`
	Styles          []string  `json:"styles"`
	Description     string    `json:"description"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CreateBookingInput carries the validated fields for a new booking. It has
// no status field on purpose: the store stamps every new booking pending no
// matter what the client sent.
type CreateBookingInput struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	PreferredArtist *string
	Styles          []string
	Description     string
}
