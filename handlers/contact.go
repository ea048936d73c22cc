package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pytechdigital/content-api/internal/contact"
	"github.com/pytechdigital/content-api/pkg/metrics"
)

// ContactHandler records contact-form submissions.
type ContactHandler struct {
	contact *contact.Service
}

func NewContactHandler(svc *contact.Service) *ContactHandler {
	return &ContactHandler{contact: svc}
}

func (h *ContactHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/contact", h.SubmitContact)
}

// SubmitContact validates the form (all six fields required, no format
// checks beyond that) and appends a submission. Duplicate content is never
// rejected; each call yields a fresh record.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var form contact.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sub, err := h.contact.Submit(c.Request.Context(), &form)
	if err != nil {
		internalError(c, "submit contact", err)
		return
	}
	metrics.ContactSubmissions.Inc()
	c.JSON(http.StatusOK, sub)
}
