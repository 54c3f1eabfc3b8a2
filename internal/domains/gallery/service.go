package gallery

import "context"

type Service interface {
	// ListGalleryItems filters by artist id or exact style when either is
	// non-empty; artist wins when both are supplied.
	ListGalleryItems(ctx context.Context, artistID, style string) ([]GalleryItem, error)
	CreateGalleryItem(ctx context.Context, input CreateGalleryItemInput) (*GalleryItem, error)
}
