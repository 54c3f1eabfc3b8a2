package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"berserk-tattoos-backend/internal/domains/contact"
	"berserk-tattoos-backend/internal/shared/response"
)

type ContactHandler struct {
	svc contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// CreateContact accepts a contact-form submission.
// POST /api/contacts
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req contact.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid contact data")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Invalid contact data", err)
		return
	}

	ct, err := h.svc.CreateContact(c.Request.Context(), req.ToInput())
	if err != nil {
		response.InternalServerError(c, "Failed to create contact")
		return
	}

	response.JSON(c, http.StatusCreated, ct)
}

// ListContacts returns every contact message.
// GET /api/admin/contacts (admin only)
func (h *ContactHandler) ListContacts(c *gin.Context) {
	contacts, err := h.svc.ListContacts(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to fetch contacts")
		return
	}

	response.JSON(c, http.StatusOK, contacts)
}
