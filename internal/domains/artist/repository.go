package artist

import "context"

// Repository is the artist slice of the entity store. GetArtist returns
// ErrNotFound for unknown ids; every other operation cannot fail against
// the in-memory backend but keeps the error return so a durable
// implementation can slot in behind the same interface.
type Repository interface {
	GetArtists(ctx context.Context) ([]Artist, error)
	GetArtist(ctx context.Context, id string) (*Artist, error)
	CreateArtist(ctx context.Context, input CreateArtistInput) (*Artist, error)
}
