package instagram

import "context"

// Fetcher pulls a user's media from the Graph API. Implemented by
// client.GraphClient; tests substitute a fake to count calls.
type Fetcher interface {
	FetchMedia(ctx context.Context, userID, accessToken string, limit int) ([]RawMedia, error)
}

// Credentials resolves the API credential pair for a handle at call time.
// ok is false when the handle has no per-handle pair and no default pair is
// configured.
type Credentials func(handle string) (userID, accessToken string, ok bool)

type Service interface {
	// GetFeed returns the normalized feed for (handle, limit), serving a
	// cached copy when one is fresh. An unconfigured handle yields an
	// empty feed, not an error.
	GetFeed(ctx context.Context, handle string, limit int) ([]Media, error)

	// Ingest fetches a handle's posts live (bypassing the read cache) and
	// materializes each one with a resolvable URL as a gallery item.
	// Returns the number of items created.
	Ingest(ctx context.Context, req IngestRequest) (int, error)
}
