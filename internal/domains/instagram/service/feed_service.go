package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"berserk-tattoos-backend/internal/domains/artist"
	"berserk-tattoos-backend/internal/domains/gallery"
	"berserk-tattoos-backend/internal/domains/instagram"
)

const (
	// feedTTL bounds how long a fetched feed is served from memory before
	// the Graph API is called again for the same (handle, limit) pair.
	feedTTL = 600 * time.Second

	defaultIngestLimit = 12

	// ingestStyle tags gallery items materialized from Instagram so they
	// are distinguishable from curated portfolio pieces.
	ingestStyle = "Instagram"

	titleMaxLen       = 60
	descriptionMaxLen = 300
)

// handleToArtistName maps known studio handles to resident artists for
// ingest requests that do not name an artist explicitly.
var handleToArtistName = map[string]string{
	"amzkelso":        "Amelia Kelso",
	"ben_whiteraven":  "Ben White Raven",
	"moniquemoore666": "Monique Moore",
}

type cacheEntry struct {
	fetchedAt time.Time
	items     []instagram.Media
}

// FeedService fronts the Graph API with a cache-aside TTL cache and
// materializes posts into the gallery on demand. The cache is process-local
// state; a stale entry behaves exactly like a missing one.
type FeedService struct {
	fetcher instagram.Fetcher
	creds   instagram.Credentials
	artists artist.Repository
	gallery gallery.Repository

	// now is swapped in tests to make TTL expiry deterministic.
	now func() time.Time

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

func NewFeedService(fetcher instagram.Fetcher, creds instagram.Credentials, artists artist.Repository, galleryRepo gallery.Repository) *FeedService {
	return &FeedService{
		fetcher: fetcher,
		creds:   creds,
		artists: artists,
		gallery: galleryRepo,
		now:     time.Now,
		cache:   make(map[string]cacheEntry),
	}
}

var _ instagram.Service = (*FeedService)(nil)

func cacheKey(handle string, limit int) string {
	return fmt.Sprintf("%s:%d", handle, limit)
}

func (s *FeedService) GetFeed(ctx context.Context, handle string, limit int) ([]instagram.Media, error) {
	userID, accessToken, ok := s.creds(handle)
	if !ok {
		// No credentials for this handle and no default pair: the site
		// renders without a feed rather than erroring.
		return []instagram.Media{}, nil
	}

	key := cacheKey(handle, limit)
	if items, hit := s.lookup(key); hit {
		return items, nil
	}

	raw, err := s.fetcher.FetchMedia(ctx, userID, accessToken, limit)
	if err != nil {
		return nil, err
	}

	items := make([]instagram.Media, 0, len(raw))
	for _, m := range raw {
		items = append(items, m.Normalize())
	}

	// Only a completed fetch writes the cache; a cancelled or failed one
	// leaves whatever entry was there untouched.
	s.mu.Lock()
	s.cache[key] = cacheEntry{fetchedAt: s.now(), items: items}
	s.mu.Unlock()

	return items, nil
}

func (s *FeedService) lookup(key string) ([]instagram.Media, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.cache[key]
	if !ok || s.now().Sub(entry.fetchedAt) >= feedTTL {
		return nil, false
	}
	return entry.items, true
}

func (s *FeedService) Ingest(ctx context.Context, req instagram.IngestRequest) (int, error) {
	userID, accessToken, ok := s.creds(req.Handle)
	if !ok {
		return 0, instagram.ErrNotConfigured
	}

	artistID, err := s.resolveArtist(ctx, req)
	if err != nil {
		return 0, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultIngestLimit
	}

	// Always a live fetch: ingest must see the current feed, not a cached
	// copy up to ten minutes old.
	raw, err := s.fetcher.FetchMedia(ctx, userID, accessToken, limit)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, m := range raw {
		mediaURL := m.ResolveURL()
		if mediaURL == "" {
			continue
		}

		title := truncate(m.Caption, titleMaxLen)
		if title == "" {
			title = "Instagram Post"
		}
		var description *string
		if m.Caption != "" {
			d := truncate(m.Caption, descriptionMaxLen)
			description = &d
		}

		if _, err := s.gallery.CreateGalleryItem(ctx, gallery.CreateGalleryItemInput{
			Title:       title,
			Style:       ingestStyle,
			ArtistID:    artistID,
			ImageURL:    mediaURL,
			Description: description,
		}); err != nil {
			// Abort at the point of failure; items created so far stay.
			return created, err
		}
		created++
	}

	return created, nil
}

// resolveArtist picks the target artist: the explicit id when supplied,
// otherwise the known handle mapping looked up against the store by name.
func (s *FeedService) resolveArtist(ctx context.Context, req instagram.IngestRequest) (string, error) {
	if req.ArtistID != "" {
		return req.ArtistID, nil
	}

	name, ok := handleToArtistName[strings.ToLower(req.Handle)]
	if !ok {
		return "", instagram.ErrArtistUnresolved
	}

	artists, err := s.artists.GetArtists(ctx)
	if err != nil {
		return "", err
	}
	for _, a := range artists {
		if a.Name == name {
			return a.ID, nil
		}
	}
	return "", instagram.ErrArtistUnresolved
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
