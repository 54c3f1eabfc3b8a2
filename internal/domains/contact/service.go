package contact

import "context"

type Service interface {
	ListContacts(ctx context.Context) ([]Contact, error)
	CreateContact(ctx context.Context, input CreateContactInput) (*Contact, error)
}
