package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"berserk-tattoos-backend/internal/domains/instagram"
	"berserk-tattoos-backend/internal/infrastructure/memstore"
)

type fakeFetcher struct {
	calls int
	media []instagram.RawMedia
	err   error
}

func (f *fakeFetcher) FetchMedia(ctx context.Context, userID, accessToken string, limit int) ([]instagram.RawMedia, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.media, nil
}

func staticCreds(userID, token string) instagram.Credentials {
	return func(handle string) (string, string, bool) {
		return userID, token, true
	}
}

func noCreds() instagram.Credentials {
	return func(handle string) (string, string, bool) {
		return "", "", false
	}
}

// fakeClock advances only when the test says so.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestService(fetcher instagram.Fetcher, creds instagram.Credentials) (*FeedService, *memstore.MemStore, *fakeClock) {
	store := memstore.New()
	svc := NewFeedService(fetcher, creds, store, store)
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc.now = clock.now
	return svc, store, clock
}

func TestGetFeed_CachesWithinTTL(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{media: []instagram.RawMedia{
		{ID: "1", Caption: "hello", MediaType: "IMAGE", MediaURL: "http://img/1", Permalink: "http://ig/1", Timestamp: "2025-06-01T00:00:00+0000"},
	}}
	svc, _, clock := newTestService(fetcher, staticCreds("uid", "token"))

	first, err := svc.GetFeed(ctx, "berserk_tattoos", 8)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, fetcher.calls)

	// A second read one second later is served from the cache.
	clock.advance(time.Second)
	second, err := svc.GetFeed(ctx, "berserk_tattoos", 8)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, fetcher.calls)

	// Past the 600s TTL the entry is stale and a fresh fetch happens.
	clock.advance(601 * time.Second)
	_, err = svc.GetFeed(ctx, "berserk_tattoos", 8)
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.calls)
}

func TestGetFeed_CacheKeyedByHandleAndLimit(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{}
	svc, _, _ := newTestService(fetcher, staticCreds("uid", "token"))

	_, err := svc.GetFeed(ctx, "berserk_tattoos", 8)
	require.NoError(t, err)
	_, err = svc.GetFeed(ctx, "berserk_tattoos", 12)
	require.NoError(t, err)
	_, err = svc.GetFeed(ctx, "amzkelso", 8)
	require.NoError(t, err)

	// Three distinct (handle, limit) pairs, three fetches.
	assert.Equal(t, 3, fetcher.calls)
}

func TestGetFeed_NoCredentials(t *testing.T) {
	fetcher := &fakeFetcher{}
	svc, _, _ := newTestService(fetcher, noCreds())

	items, err := svc.GetFeed(context.Background(), "berserk_tattoos", 8)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Equal(t, 0, fetcher.calls, "no external call without credentials")
}

func TestGetFeed_UpstreamErrorDoesNotCache(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{err: fmt.Errorf("%w: status 500", instagram.ErrUpstream)}
	svc, _, _ := newTestService(fetcher, staticCreds("uid", "token"))

	_, err := svc.GetFeed(ctx, "berserk_tattoos", 8)
	assert.ErrorIs(t, err, instagram.ErrUpstream)

	// The failure wrote nothing, so the next read fetches again.
	fetcher.err = nil
	_, err = svc.GetFeed(ctx, "berserk_tattoos", 8)
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.calls)
}

func TestGetFeed_NormalizesVideoMedia(t *testing.T) {
	fetcher := &fakeFetcher{media: []instagram.RawMedia{
		{ID: "v1", MediaType: "VIDEO", MediaURL: "http://video/raw", ThumbnailURL: "http://video/thumb"},
		{ID: "v2", MediaType: "VIDEO", MediaURL: "http://video/only-raw"},
		{ID: "i1", MediaType: "IMAGE", MediaURL: "http://img/1", ThumbnailURL: "http://img/thumb"},
	}}
	svc, _, _ := newTestService(fetcher, staticCreds("uid", "token"))

	items, err := svc.GetFeed(context.Background(), "berserk_tattoos", 8)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "http://video/thumb", items[0].MediaURL)
	assert.Equal(t, "http://video/only-raw", items[1].MediaURL)
	assert.Equal(t, "http://img/1", items[2].MediaURL)
}

func TestIngest_NotConfigured(t *testing.T) {
	fetcher := &fakeFetcher{}
	svc, _, _ := newTestService(fetcher, noCreds())

	created, err := svc.Ingest(context.Background(), instagram.IngestRequest{Handle: "amzkelso"})
	assert.ErrorIs(t, err, instagram.ErrNotConfigured)
	assert.Zero(t, created)
	assert.Equal(t, 0, fetcher.calls)
}

func TestIngest_UnresolvedArtist(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{}
	svc, store, _ := newTestService(fetcher, staticCreds("uid", "token"))

	before, err := store.GetGalleryItems(ctx)
	require.NoError(t, err)

	created, err := svc.Ingest(ctx, instagram.IngestRequest{Handle: "unknown_handle"})
	assert.ErrorIs(t, err, instagram.ErrArtistUnresolved)
	assert.Zero(t, created)
	assert.Equal(t, 0, fetcher.calls, "resolution fails before any external call")

	after, err := store.GetGalleryItems(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestIngest_MappedHandleCreatesItems(t *testing.T) {
	ctx := context.Background()
	longCaption := strings.Repeat("a", 400)
	fetcher := &fakeFetcher{media: []instagram.RawMedia{
		{ID: "1", Caption: longCaption, MediaType: "IMAGE", MediaURL: "http://img/1"},
		{ID: "2", Caption: "", MediaType: "VIDEO", ThumbnailURL: "http://thumb/2"},
		{ID: "3", MediaType: "IMAGE"}, // no usable URL, skipped
	}}
	svc, store, _ := newTestService(fetcher, staticCreds("uid", "token"))

	created, err := svc.Ingest(ctx, instagram.IngestRequest{Handle: "amzkelso"})
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	items, err := store.GetGalleryItemsByStyle(ctx, "Instagram")
	require.NoError(t, err)
	require.Len(t, items, 2)

	// The mapped handle resolves to Amelia Kelso's seeded record.
	artists, err := store.GetArtists(ctx)
	require.NoError(t, err)
	var ameliaID string
	for _, a := range artists {
		if a.Name == "Amelia Kelso" {
			ameliaID = a.ID
		}
	}
	require.NotEmpty(t, ameliaID)

	first := items[0]
	assert.Equal(t, ameliaID, first.ArtistID)
	assert.Equal(t, longCaption[:60], first.Title)
	require.NotNil(t, first.Description)
	assert.Equal(t, longCaption[:300], *first.Description)

	second := items[1]
	assert.Equal(t, "Instagram Post", second.Title)
	assert.Nil(t, second.Description)
	assert.Equal(t, "http://thumb/2", second.ImageURL)
}

func TestIngest_ExplicitArtistID(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{media: []instagram.RawMedia{
		{ID: "1", Caption: "flash day", MediaType: "IMAGE", MediaURL: "http://img/1"},
	}}
	svc, store, _ := newTestService(fetcher, staticCreds("uid", "token"))

	created, err := svc.Ingest(ctx, instagram.IngestRequest{Handle: "somebody_else", ArtistID: "explicit-id"})
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	items, err := store.GetGalleryItemsByArtist(ctx, "explicit-id")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "flash day", items[0].Title)
}

func TestIngest_BypassesReadCache(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{media: []instagram.RawMedia{
		{ID: "1", MediaType: "IMAGE", MediaURL: "http://img/1"},
	}}
	svc, _, _ := newTestService(fetcher, staticCreds("uid", "token"))

	// Warm the read cache for the same handle and limit.
	_, err := svc.GetFeed(ctx, "amzkelso", 12)
	require.NoError(t, err)
	require.Equal(t, 1, fetcher.calls)

	_, err = svc.Ingest(ctx, instagram.IngestRequest{Handle: "amzkelso", Limit: 12})
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.calls, "ingest always fetches live")
}

func TestIngest_UpstreamError(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{err: errors.Join(instagram.ErrUpstream, errors.New("status 502"))}
	svc, store, _ := newTestService(fetcher, staticCreds("uid", "token"))

	created, err := svc.Ingest(ctx, instagram.IngestRequest{Handle: "amzkelso"})
	assert.ErrorIs(t, err, instagram.ErrUpstream)
	assert.Zero(t, created)

	items, err := store.GetGalleryItemsByStyle(ctx, "Instagram")
	require.NoError(t, err)
	assert.Empty(t, items)
}
