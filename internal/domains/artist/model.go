package artist

import "time"

// Artist is a resident tattoo artist shown on the studio site. Artists are
// write-once: created by the seed routine (or a future admin tool) and never
// updated or deleted afterwards.
type Artist struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Specialty       string    `json:"specialty"`
	Bio             string    `json:"bio"`
	YearsExperience int       `json:"yearsExperience"`
	TotalPieces     int       `json:"totalPieces"`
	ThemeColor      string    `json:"themeColor"`
	ProfileImage    string    `json:"profileImage"`
	Skills          []string  `json:"skills"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CreateArtistInput carries the caller-supplied fields for a new artist.
// ID and CreatedAt are assigned by the store.
type CreateArtistInput struct {
	Name            string
	Specialty       string
	Bio             string
	YearsExperience int
	TotalPieces     int
	ThemeColor      string
	ProfileImage    string
	Skills          []string
}
