package memstore

import (
	"context"

	"berserk-tattoos-backend/internal/domains/artist"
	"berserk-tattoos-backend/internal/domains/gallery"
)

func strPtr(s string) *string { return &s }

// seedData populates the store with the studio's three resident artists and
// six portfolio pieces. It runs exactly once, from New, before the store is
// shared with anything else.
func (s *MemStore) seedData() {
	ctx := context.Background()

	amelia, _ := s.CreateArtist(ctx, artist.CreateArtistInput{
		Name:            "Amelia Kelso",
		Specialty:       "Fine Line Specialist",
		Bio:             "Amelia specializes in delicate fine line work and minimalist botanical designs. Her attention to detail and precision has made her one of Melbourne's most sought-after fine line artists.",
		YearsExperience: 8,
		TotalPieces:     450,
		ThemeColor:      "#C4A484",
		ProfileImage:    "https://unavatar.io/instagram/amzkelso",
		Skills:          []string{"Fine Line", "Minimalist", "Botanical", "Geometric"},
	})

	ben, _ := s.CreateArtist(ctx, artist.CreateArtistInput{
		Name:            "Ben White Raven",
		Specialty:       "Realism Master",
		Bio:             "Ben is a master of photorealistic tattoos, specializing in portraits and wildlife. His ability to capture emotion and detail in ink is unmatched.",
		YearsExperience: 12,
		TotalPieces:     600,
		ThemeColor:      "#8B9DC3",
		ProfileImage:    "https://unavatar.io/instagram/ben_whiteraven",
		Skills:          []string{"Realism", "Portraits", "Animals", "Color Work"},
	})

	monique, _ := s.CreateArtist(ctx, artist.CreateArtistInput{
		Name:            "Monique Moore",
		Specialty:       "Blackwork Specialist",
		Bio:             "Monique creates bold, striking blackwork pieces with gothic and traditional influences. Her powerful designs make a statement.",
		YearsExperience: 10,
		TotalPieces:     520,
		ThemeColor:      "#7B1113",
		ProfileImage:    "https://unavatar.io/instagram/moniquemoore666",
		Skills:          []string{"Blackwork", "Gothic", "Traditional", "Bold Designs"},
	})

	seedItems := []gallery.CreateGalleryItemInput{
		{
			Title:       "Realistic Portrait",
			Style:       "Realism",
			ArtistID:    ben.ID,
			ImageURL:    "https://images.unsplash.com/photo-1611501275019-9b5cda994e8d?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=800",
			Description: strPtr("Detailed portrait tattoo with incredible realism"),
		},
		{
			Title:       "Geometric Lines",
			Style:       "Fine Line",
			ArtistID:    amelia.ID,
			ImageURL:    "https://images.unsplash.com/photo-1590333748338-d629e4564ad9?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=900",
			Description: strPtr("Delicate fine line geometric design"),
		},
		{
			Title:       "Bold Blackwork",
			Style:       "Blackwork",
			ArtistID:    monique.ID,
			ImageURL:    "https://images.unsplash.com/photo-1598300042247-d088f8ab3a91?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=700",
			Description: strPtr("Striking blackwork with gothic elements"),
		},
		{
			Title:       "Floral Detail",
			Style:       "Fine Line",
			ArtistID:    amelia.ID,
			ImageURL:    "https://images.unsplash.com/photo-1609557927087-f9cf8e88de18?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=800",
			Description: strPtr("Intricate botanical fine line work"),
		},
		{
			Title:       "Animal Portrait",
			Style:       "Realism",
			ArtistID:    ben.ID,
			ImageURL:    "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=800",
			Description: strPtr("Realistic wildlife portrait tattoo"),
		},
		{
			Title:       "Traditional Style",
			Style:       "Traditional",
			ArtistID:    monique.ID,
			ImageURL:    "https://images.unsplash.com/photo-1590736969955-71cc94901144?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=700",
			Description: strPtr("Bold traditional tattoo design"),
		},
	}

	for _, item := range seedItems {
		_, _ = s.CreateGalleryItem(ctx, item)
	}
}
