package artist

import "context"

type Service interface {
	ListArtists(ctx context.Context) ([]Artist, error)
	GetArtist(ctx context.Context, id string) (*Artist, error)
	CreateArtist(ctx context.Context, input CreateArtistInput) (*Artist, error)
}
