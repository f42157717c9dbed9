package documents

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"docanalyzer-backend/internal/extract"
	"docanalyzer-backend/internal/shared/metrics"
	"docanalyzer-backend/internal/shared/server/respond"
	"docanalyzer-backend/internal/shared/util"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires the ingestion and lifecycle HTTP endpoints to the
// service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document write routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.upload)
	rg.DELETE("/documents/:id", h.delete)
}

// uploadResponse mirrors the ingestion collaborator contract.
type uploadResponse struct {
	DocID    int64  `json:"doc_id"`
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "file is required")
		return
	}
	filename, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := extract.CheckFilename(filename); err != nil {
		respond.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "unable to read file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "unable to read file")
		return
	}

	text, err := extract.PDFText(c.Request.Context(), data)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Failed to extract PDF text: "+err.Error())
		return
	}

	doc, err := h.Svc.Create(c.Request.Context(), filename, text)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		respond.Error(c, http.StatusInternalServerError, "failed to store document")
		return
	}

	metrics.IncDocumentIngested()
	respond.OK(c, uploadResponse{DocID: doc.ID, Filename: doc.Filename, Text: doc.Text})
}

func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(c, http.StatusBadRequest, "Valid document ID is required")
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Document not found")
		default:
			respond.Error(c, http.StatusInternalServerError, "failed to delete document")
		}
		return
	}

	metrics.IncDocumentDeleted()
	c.Status(http.StatusNoContent)
}
