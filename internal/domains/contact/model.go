package contact

import "time"

// Contact is a message submitted through the contact form.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}
