package service

import (
	"context"

	"berserk-tattoos-backend/internal/domains/contact"
)

type contactService struct {
	repo contact.Repository
}

func NewService(repo contact.Repository) contact.Service {
	return &contactService{repo: repo}
}

func (s *contactService) ListContacts(ctx context.Context) ([]contact.Contact, error) {
	return s.repo.GetContacts(ctx)
}

func (s *contactService) CreateContact(ctx context.Context, input contact.CreateContactInput) (*contact.Contact, error) {
	return s.repo.CreateContact(ctx, input)
}
