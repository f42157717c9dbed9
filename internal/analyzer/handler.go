package analyzer

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"docanalyzer-backend/internal/analyses"
	"docanalyzer-backend/internal/documents"
	"docanalyzer-backend/internal/shared/server/respond"
)

// Handler wires the analysis endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the analyze route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze/:doc_id", h.analyze)
}

type analyzeResponse struct {
	AnalysisID int64  `json:"analysis_id"`
	DocID      int64  `json:"doc_id"`
	Result     Result `json:"result"`
	CreatedAt  int64  `json:"created_at"`
}

func (h *Handler) analyze(c *gin.Context) {
	docID, err := strconv.ParseInt(c.Param("doc_id"), 10, 64)
	if err != nil || docID <= 0 {
		respond.Error(c, http.StatusBadRequest, "Valid document ID is required")
		return
	}

	row, result, err := h.Svc.Analyze(c.Request.Context(), docID)
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Document not found")
		case errors.Is(err, analyses.ErrDocumentNotFound):
			// Document deleted between lookup and append.
			respond.Error(c, http.StatusNotFound, "Document not found")
		case errors.Is(err, ErrUnparseable):
			respond.Error(c, http.StatusBadGateway, "Model returned unparseable JSON")
		case errors.Is(err, ErrNotConfigured):
			respond.Error(c, http.StatusInternalServerError, "OPENAI_API_KEY not configured")
		default:
			respond.Error(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respond.OK(c, analyzeResponse{
		AnalysisID: row.ID,
		DocID:      row.DocID,
		Result:     result,
		CreatedAt:  row.CreatedAt,
	})
}
