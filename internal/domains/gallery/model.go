package gallery

import "time"

// GalleryItem is a single piece in the studio's portfolio. Every item
// belongs to an artist; Description is nullable to keep the "absent vs
// empty" distinction from the public API.
type GalleryItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Style       string    `json:"style"`
	ArtistID    string    `json:"artistId"`
	ImageURL    string    `json:"imageUrl"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateGalleryItemInput carries the caller-supplied fields for a new item.
// ArtistID is trusted: the store does not check it against the artist table,
// so internal callers (seed, Instagram ingest) must resolve it first.
type CreateGalleryItemInput struct {
	Title       string
	Style       string
	ArtistID    string
	ImageURL    string
	Description *string
}
