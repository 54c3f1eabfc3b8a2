package contact

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateContactRequest is the contact-form payload.
type CreateContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r CreateContactRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Subject,
			validation.Required.Error("subject is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Message,
			validation.Required.Error("message is required"),
		),
	)
}

func (r CreateContactRequest) ToInput() CreateContactInput {
	return CreateContactInput{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}
