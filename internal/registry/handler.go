package registry

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"docanalyzer-backend/internal/documents"
	"docanalyzer-backend/internal/shared/server/respond"
)

// Handler wires the read API to the query service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the read routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/documents", h.list)
	rg.GET("/documents/:id", h.get)
	rg.GET("/stats", h.stats)
}

func (h *Handler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(c, http.StatusBadRequest, "Valid document ID is required")
		return
	}

	view, err := h.Svc.GetDocument(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidID):
			respond.Error(c, http.StatusBadRequest, "Valid document ID is required")
		case errors.Is(err, documents.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Document not found")
		default:
			respond.Error(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respond.OK(c, view)
}

func (h *Handler) list(c *gin.Context) {
	// Missing, non-numeric, and negative offsets all normalize to 0.
	offset := 0
	if raw := c.Query("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			offset = parsed
		}
	}

	page, err := h.Svc.ListDocuments(c.Request.Context(), offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	respond.OK(c, page)
}

func (h *Handler) stats(c *gin.Context) {
	stats, err := h.Svc.GetStats(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	respond.OK(c, stats)
}
