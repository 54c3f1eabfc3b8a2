package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"berserk-tattoos-backend/internal/domains/gallery"
	"berserk-tattoos-backend/internal/shared/response"
)

type GalleryHandler struct {
	svc gallery.Service
}

func NewGalleryHandler(svc gallery.Service) *GalleryHandler {
	return &GalleryHandler{svc: svc}
}

// ListGalleryItems returns gallery items, optionally filtered by
// ?artist=<id> or ?style=<label>.
// GET /api/gallery
func (h *GalleryHandler) ListGalleryItems(c *gin.Context) {
	items, err := h.svc.ListGalleryItems(c.Request.Context(), c.Query("artist"), c.Query("style"))
	if err != nil {
		response.InternalServerError(c, "Failed to fetch gallery items")
		return
	}

	response.JSON(c, http.StatusOK, items)
}
