package gallery

import "context"

// Repository is the gallery slice of the entity store. The By* lookups
// return empty slices, never errors, when nothing matches.
type Repository interface {
	GetGalleryItems(ctx context.Context) ([]GalleryItem, error)
	GetGalleryItemsByArtist(ctx context.Context, artistID string) ([]GalleryItem, error)
	GetGalleryItemsByStyle(ctx context.Context, style string) ([]GalleryItem, error)
	CreateGalleryItem(ctx context.Context, input CreateGalleryItemInput) (*GalleryItem, error)
}
