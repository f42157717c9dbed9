package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"docanalyzer-backend/internal/analyses"
	"docanalyzer-backend/internal/documents"
	"docanalyzer-backend/internal/shared/telemetry"
)

// PageSize is the fixed page size for document listings.
const PageSize = 20

// ErrInvalidID is returned when a document id is not a positive integer.
var ErrInvalidID = errors.New("invalid document id")

// Service composes the document and analysis stores into read-only
// query responses. It holds no state of its own; every operation is a
// single request/response against the underlying stores, so instances
// can be replicated freely.
type Service struct {
	Docs     documents.Repo
	Analyses analyses.Repo
}

// NewService constructs a Service.
func NewService(docs documents.Repo, results analyses.Repo) *Service {
	return &Service{Docs: docs, Analyses: results}
}

// GetDocument returns a document together with its latest analysis, if
// one exists. The two lookups are a point-in-time snapshot: an append
// committing between them may or may not be observed, which is
// acceptable for this read path.
func (s *Service) GetDocument(ctx context.Context, id int64) (DocumentView, error) {
	if id <= 0 {
		return DocumentView{}, ErrInvalidID
	}

	doc, err := s.Docs.GetByID(ctx, id)
	if err != nil {
		return DocumentView{}, err
	}

	view := DocumentView{
		ID:        doc.ID,
		Filename:  doc.Filename,
		Text:      doc.Text,
		CreatedAt: doc.CreatedAt,
	}

	latest, err := s.Analyses.LatestForDocument(ctx, id)
	if err != nil {
		if errors.Is(err, analyses.ErrNotFound) {
			return view, nil
		}
		return DocumentView{}, err
	}

	view.LatestAnalysis = &LatestAnalysis{
		ID:        latest.ID,
		DocID:     latest.DocID,
		CreatedAt: latest.CreatedAt,
	}
	// Schema-on-read: a payload that fails to parse degrades to a null
	// result instead of failing the whole request.
	if json.Valid([]byte(latest.ResultJSON)) {
		view.LatestAnalysis.ResultJSON = json.RawMessage(latest.ResultJSON)
	} else {
		telemetry.Warn("registry.payload_corrupt", map[string]any{
			"doc_id":      latest.DocID,
			"analysis_id": latest.ID,
		})
	}
	return view, nil
}

// ListDocuments returns one fixed-size page of document summaries,
// newest first. Negative offsets are normalized to 0.
func (s *Service) ListDocuments(ctx context.Context, offset int) (Page, error) {
	if offset < 0 {
		offset = 0
	}
	items, total, err := s.Docs.List(ctx, PageSize, offset)
	if err != nil {
		return Page{}, err
	}
	if items == nil {
		items = []documents.Summary{}
	}
	return Page{Items: items, Total: total}, nil
}

// GetStats counts documents and analyses with two independent
// aggregate queries. Either failure fails the whole operation; partial
// stats are never returned.
func (s *Service) GetStats(ctx context.Context) (Stats, error) {
	docCount, err := s.Docs.Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count documents: %w", err)
	}
	analysisCount, err := s.Analyses.Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count analyses: %w", err)
	}
	return Stats{Documents: docCount, Analyses: analysisCount}, nil
}
