package booking

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateBookingRequest is the booking-form payload. The front end composes
// Description from several free-text sub-fields before submitting.
type CreateBookingRequest struct {
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	PreferredArtist *string  `json:"preferredArtist"`
	Styles          []string `json:"styles"`
	Description     string   `json:"description"`
}

func (r CreateBookingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.Required.Error("first name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("last name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Phone,
			validation.Required.Error("phone is required"),
			validation.Length(1, 32),
		),
		validation.Field(&r.Styles,
			validation.Required.Error("at least one style is required"),
			validation.Each(validation.Required, validation.Length(1, 100)),
		),
		validation.Field(&r.Description,
			validation.Required.Error("description is required"),
		),
	)
}

func (r CreateBookingRequest) ToInput() CreateBookingInput {
	return CreateBookingInput{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		PreferredArtist: r.PreferredArtist,
		Styles:          r.Styles,
		Description:     r.Description,
	}
}
