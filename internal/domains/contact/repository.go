package contact

import "context"

// Repository is the contact slice of the entity store.
type Repository interface {
	GetContacts(ctx context.Context) ([]Contact, error)
	CreateContact(ctx context.Context, input CreateContactInput) (*Contact, error)
}
