package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"berserk-tattoos-backend/internal/domains/artist"
	"berserk-tattoos-backend/internal/domains/booking"
	"berserk-tattoos-backend/internal/domains/contact"
	"berserk-tattoos-backend/internal/domains/gallery"
)

// MemStore is the process-wide entity store. It backs all four domain
// repositories from a single struct so that the seed routine can create
// gallery items referencing artists it just created.
//
// Entities live for the process lifetime; there is no durable backend and a
// second instance of the process has an independent, divergent store.
//
// Iteration order is insertion order: Go maps iterate in random order, so
// each entity kind keeps an ordered id slice next to its map.
type MemStore struct {
	mu sync.RWMutex

	artists      map[string]artist.Artist
	artistOrder  []string
	items        map[string]gallery.GalleryItem
	itemOrder    []string
	bookings     map[string]booking.Booking
	bookingOrder []string
	contacts     map[string]contact.Contact
	contactOrder []string
}

// Interface checks: MemStore is every domain's repository.
var (
	_ artist.Repository  = (*MemStore)(nil)
	_ gallery.Repository = (*MemStore)(nil)
	_ booking.Repository = (*MemStore)(nil)
	_ contact.Repository = (*MemStore)(nil)
)

// New builds an empty store and runs the one-shot seed. Seeding must not be
// repeated against the same instance.
func New() *MemStore {
	s := &MemStore{
		artists:  make(map[string]artist.Artist),
		items:    make(map[string]gallery.GalleryItem),
		bookings: make(map[string]booking.Booking),
		contacts: make(map[string]contact.Contact),
	}
	s.seedData()
	return s
}

// ==================== ARTISTS ====================

func (s *MemStore) GetArtists(ctx context.Context) ([]artist.Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]artist.Artist, 0, len(s.artistOrder))
	for _, id := range s.artistOrder {
		out = append(out, s.artists[id])
	}
	return out, nil
}

func (s *MemStore) GetArtist(ctx context.Context, id string) (*artist.Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.artists[id]
	if !ok {
		return nil, artist.ErrNotFound
	}
	return &a, nil
}

func (s *MemStore) CreateArtist(ctx context.Context, input artist.CreateArtistInput) (*artist.Artist, error) {
	a := artist.Artist{
		ID:              uuid.NewString(),
		Name:            input.Name,
		Specialty:       input.Specialty,
		Bio:             input.Bio,
		YearsExperience: input.YearsExperience,
		TotalPieces:     input.TotalPieces,
		ThemeColor:      input.ThemeColor,
		ProfileImage:    input.ProfileImage,
		Skills:          input.Skills,
		CreatedAt:       time.Now(),
	}

	s.mu.Lock()
	s.artists[a.ID] = a
	s.artistOrder = append(s.artistOrder, a.ID)
	s.mu.Unlock()

	return &a, nil
}

// ==================== GALLERY ====================

func (s *MemStore) GetGalleryItems(ctx context.Context) ([]gallery.GalleryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]gallery.GalleryItem, 0, len(s.itemOrder))
	for _, id := range s.itemOrder {
		out = append(out, s.items[id])
	}
	return out, nil
}

func (s *MemStore) GetGalleryItemsByArtist(ctx context.Context, artistID string) ([]gallery.GalleryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]gallery.GalleryItem, 0)
	for _, id := range s.itemOrder {
		if item := s.items[id]; item.ArtistID == artistID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *MemStore) GetGalleryItemsByStyle(ctx context.Context, style string) ([]gallery.GalleryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Exact, case-sensitive match on the style label.
	out := make([]gallery.GalleryItem, 0)
	for _, id := range s.itemOrder {
		if item := s.items[id]; item.Style == style {
			out = append(out, item)
		}
	}
	return out, nil
}

// CreateGalleryItem stores a new item. ArtistID is not checked against the
// artist table; internal callers resolve it before calling.
func (s *MemStore) CreateGalleryItem(ctx context.Context, input gallery.CreateGalleryItemInput) (*gallery.GalleryItem, error) {
	item := gallery.GalleryItem{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Style:       input.Style,
		ArtistID:    input.ArtistID,
		ImageURL:    input.ImageURL,
		Description: input.Description,
		CreatedAt:   time.Now(),
	}

	s.mu.Lock()
	s.items[item.ID] = item
	s.itemOrder = append(s.itemOrder, item.ID)
	s.mu.Unlock()

	return &item, nil
}

// ==================== BOOKINGS ====================

func (s *MemStore) GetBookings(ctx context.Context) ([]booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]booking.Booking, 0, len(s.bookingOrder))
	for _, id := range s.bookingOrder {
		out = append(out, s.bookings[id])
	}
	return out, nil
}

// CreateBooking stores a new booking. Status is always stamped pending; the
// input type has no status field, so nothing a client sends can change that.
func (s *MemStore) CreateBooking(ctx context.Context, input booking.CreateBookingInput) (*booking.Booking, error) {
	b := booking.Booking{
		ID:              uuid.NewString(),
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           input.Email,
		Phone:           input.Phone,
		PreferredArtist: input.PreferredArtist,
		Styles:          input.Styles,
		Description:     input.Description,
		Status:          booking.StatusPending,
		CreatedAt:       time.Now(),
	}

	s.mu.Lock()
	s.bookings[b.ID] = b
	s.bookingOrder = append(s.bookingOrder, b.ID)
	s.mu.Unlock()

	return &b, nil
}

// ==================== CONTACTS ====================

func (s *MemStore) GetContacts(ctx context.Context) ([]contact.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]contact.Contact, 0, len(s.contactOrder))
	for _, id := range s.contactOrder {
		out = append(out, s.contacts[id])
	}
	return out, nil
}

func (s *MemStore) CreateContact(ctx context.Context, input contact.CreateContactInput) (*contact.Contact, error) {
	ct := contact.Contact{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.contacts[ct.ID] = ct
	s.contactOrder = append(s.contactOrder, ct.ID)
	s.mu.Unlock()

	return &ct, nil
}
