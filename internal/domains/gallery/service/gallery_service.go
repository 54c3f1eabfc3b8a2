package service

import (
	"context"

	"berserk-tattoos-backend/internal/domains/gallery"
)

type galleryService struct {
	repo gallery.Repository
}

func NewService(repo gallery.Repository) gallery.Service {
	return &galleryService{repo: repo}
}

func (s *galleryService) ListGalleryItems(ctx context.Context, artistID, style string) ([]gallery.GalleryItem, error) {
	switch {
	case artistID != "":
		return s.repo.GetGalleryItemsByArtist(ctx, artistID)
	case style != "":
		return s.repo.GetGalleryItemsByStyle(ctx, style)
	default:
		return s.repo.GetGalleryItems(ctx)
	}
}

func (s *galleryService) CreateGalleryItem(ctx context.Context, input gallery.CreateGalleryItemInput) (*gallery.GalleryItem, error) {
	return s.repo.CreateGalleryItem(ctx, input)
}
