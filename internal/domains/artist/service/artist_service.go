package service

import (
	"context"

	"berserk-tattoos-backend/internal/domains/artist"
)

type artistService struct {
	repo artist.Repository
}

func NewService(repo artist.Repository) artist.Service {
	return &artistService{repo: repo}
}

func (s *artistService) ListArtists(ctx context.Context) ([]artist.Artist, error) {
	return s.repo.GetArtists(ctx)
}

func (s *artistService) GetArtist(ctx context.Context, id string) (*artist.Artist, error) {
	return s.repo.GetArtist(ctx, id)
}

func (s *artistService) CreateArtist(ctx context.Context, input artist.CreateArtistInput) (*artist.Artist, error) {
	return s.repo.CreateArtist(ctx, input)
}
