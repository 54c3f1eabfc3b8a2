package container

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"berserk-tattoos-backend/internal/config"
	"berserk-tattoos-backend/internal/infrastructure/memstore"

	"berserk-tattoos-backend/internal/domains/artist"
	artistHandler "berserk-tattoos-backend/internal/domains/artist/handler"
	artistService "berserk-tattoos-backend/internal/domains/artist/service"
	"berserk-tattoos-backend/internal/domains/booking"
	bookingHandler "berserk-tattoos-backend/internal/domains/booking/handler"
	bookingService "berserk-tattoos-backend/internal/domains/booking/service"
	"berserk-tattoos-backend/internal/domains/contact"
	contactHandler "berserk-tattoos-backend/internal/domains/contact/handler"
	contactService "berserk-tattoos-backend/internal/domains/contact/service"
	"berserk-tattoos-backend/internal/domains/gallery"
	galleryHandler "berserk-tattoos-backend/internal/domains/gallery/handler"
	galleryService "berserk-tattoos-backend/internal/domains/gallery/service"
	"berserk-tattoos-backend/internal/domains/instagram"
	instagramClient "berserk-tattoos-backend/internal/domains/instagram/client"
	instagramHandler "berserk-tattoos-backend/internal/domains/instagram/handler"
	instagramService "berserk-tattoos-backend/internal/domains/instagram/service"
)

// Container holds every dependency of the application, wired in dependency
// order: config, then the entity store, then services, then handlers. The
// store is an explicit instance owned here, not a package-level singleton,
// so tests can build isolated containers with fresh stores.
type Container struct {
	Config *config.Config
	Store  *memstore.MemStore

	ArtistService    artist.Service
	GalleryService   gallery.Service
	BookingService   booking.Service
	ContactService   contact.Service
	InstagramService instagram.Service

	ArtistHandler    *artistHandler.ArtistHandler
	GalleryHandler   *galleryHandler.GalleryHandler
	BookingHandler   *bookingHandler.BookingHandler
	ContactHandler   *contactHandler.ContactHandler
	InstagramHandler *instagramHandler.InstagramHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// The entity store seeds itself on construction: 3 artists, 6 gallery
	// items, referentially consistent.
	c.Store = memstore.New()
	log.Info().Msg("Entity store seeded")

	c.ArtistService = artistService.NewService(c.Store)
	c.GalleryService = galleryService.NewService(c.Store)
	c.BookingService = bookingService.NewService(c.Store)
	c.ContactService = contactService.NewService(c.Store)
	c.InstagramService = instagramService.NewFeedService(
		instagramClient.NewGraphClient(),
		config.Credentials,
		c.Store,
		c.Store,
	)

	c.ArtistHandler = artistHandler.NewArtistHandler(c.ArtistService)
	c.GalleryHandler = galleryHandler.NewGalleryHandler(c.GalleryService)
	c.BookingHandler = bookingHandler.NewBookingHandler(c.BookingService)
	c.ContactHandler = contactHandler.NewContactHandler(c.ContactService)
	c.InstagramHandler = instagramHandler.NewInstagramHandler(c.InstagramService)

	return c, nil
}
