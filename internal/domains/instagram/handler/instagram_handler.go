package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"berserk-tattoos-backend/internal/config"
	"berserk-tattoos-backend/internal/domains/instagram"
	"berserk-tattoos-backend/internal/shared/response"
)

type InstagramHandler struct {
	svc instagram.Service
}

func NewInstagramHandler(svc instagram.Service) *InstagramHandler {
	return &InstagramHandler{svc: svc}
}

// GetFeed serves the studio's Instagram feed, cached per (handle, limit).
// GET /api/instagram?handle=&limit=
func (h *InstagramHandler) GetFeed(c *gin.Context) {
	handle := strings.TrimSpace(c.Query("handle"))
	if handle == "" {
		handle = config.DefaultHandle
	}

	limit := config.FeedLimit()
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	items, err := h.svc.GetFeed(c.Request.Context(), handle, limit)
	if err != nil {
		if errors.Is(err, instagram.ErrUpstream) {
			response.BadGateway(c, "Failed to fetch Instagram feed")
			return
		}
		response.InternalServerError(c, "Instagram feed error")
		return
	}

	response.JSON(c, http.StatusOK, items)
}

// Ingest pulls a handle's posts into the gallery. The route is mounted
// behind middleware.AdminAuth, so an invalid secret never reaches here.
// POST /api/admin/ingest-instagram
func (h *InstagramHandler) Ingest(c *gin.Context) {
	var req instagram.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing handle")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Missing handle", err)
		return
	}

	created, err := h.svc.Ingest(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, instagram.ErrNotConfigured):
			response.BadRequest(c, "Instagram tokens not configured")
		case errors.Is(err, instagram.ErrArtistUnresolved):
			response.BadRequest(c, "Unable to resolve artistId")
		case errors.Is(err, instagram.ErrUpstream):
			response.BadGateway(c, "Failed to fetch Instagram feed")
		default:
			response.InternalServerError(c, "Ingest error")
		}
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"created": created})
}
