package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"berserk-tattoos-backend/internal/domains/artist"
	"berserk-tattoos-backend/internal/shared/response"
)

type ArtistHandler struct {
	svc artist.Service
}

func NewArtistHandler(svc artist.Service) *ArtistHandler {
	return &ArtistHandler{svc: svc}
}

// ListArtists returns every artist.
// GET /api/artists
func (h *ArtistHandler) ListArtists(c *gin.Context) {
	artists, err := h.svc.ListArtists(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to fetch artists")
		return
	}

	response.JSON(c, http.StatusOK, artists)
}

// GetArtist returns one artist by id.
// GET /api/artists/:id
func (h *ArtistHandler) GetArtist(c *gin.Context) {
	a, err := h.svc.GetArtist(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, artist.ErrNotFound) {
			response.NotFound(c, "Artist not found")
			return
		}
		response.InternalServerError(c, "Failed to fetch artist")
		return
	}

	response.JSON(c, http.StatusOK, a)
}
