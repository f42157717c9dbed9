package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"docanalyzer-backend/internal/analyses"
	"docanalyzer-backend/internal/documents"
	"docanalyzer-backend/internal/shared/metrics"
	"docanalyzer-backend/internal/shared/telemetry"
)

// ErrUnparseable means the model failed to return valid JSON even
// after a retry.
var ErrUnparseable = errors.New("model returned unparseable JSON")

// Service runs LLM classification for a document and appends the
// result to the analysis store. Re-analysis always appends a new row;
// earlier results are never overwritten.
type Service struct {
	Docs    documents.Repo
	Results analyses.Repo
	LLM     Client

	Now func() int64
}

// NewService constructs a Service.
func NewService(docs documents.Repo, results analyses.Repo, llm Client) *Service {
	return &Service{
		Docs:    docs,
		Results: results,
		LLM:     llm,
		Now:     func() int64 { return time.Now().UnixMilli() },
	}
}

// Analyze classifies the document's text and persists the normalized
// result. The model gets one retry with a minified-JSON nudge before
// the run is abandoned with ErrUnparseable. An abandoned run writes
// nothing.
func (s *Service) Analyze(ctx context.Context, docID int64) (analyses.AnalysisResult, Result, error) {
	doc, err := s.Docs.GetByID(ctx, docID)
	if err != nil {
		return analyses.AnalysisResult{}, Result{}, err
	}

	metrics.IncAnalysisStarted()
	started := time.Now()
	row, result, err := s.analyze(ctx, doc)
	metrics.ObserveAnalysisDurationMs(float64(time.Since(started).Milliseconds()))
	if err != nil {
		metrics.IncAnalysisFailed()
		return analyses.AnalysisResult{}, Result{}, err
	}
	metrics.IncAnalysisCompleted()
	return row, result, nil
}

func (s *Service) analyze(ctx context.Context, doc documents.Document) (analyses.AnalysisResult, Result, error) {
	prompt := BuildPrompt(doc.Text)
	raw, err := s.LLM.Classify(ctx, prompt)
	if err != nil {
		return analyses.AnalysisResult{}, Result{}, err
	}

	result, ok := ParseResult(raw)
	if !ok {
		telemetry.Warn("analyzer.retry", map[string]any{"doc_id": doc.ID})
		raw, err = s.LLM.Classify(ctx, prompt+"\n\nReturn ONLY minified JSON.")
		if err != nil {
			return analyses.AnalysisResult{}, Result{}, err
		}
		result, ok = ParseResult(raw)
		if !ok {
			return analyses.AnalysisResult{}, Result{}, ErrUnparseable
		}
	}

	result = Normalize(result)
	payload, err := json.Marshal(result)
	if err != nil {
		return analyses.AnalysisResult{}, Result{}, err
	}

	row, err := s.Results.Append(ctx, doc.ID, string(payload), s.Now())
	if err != nil {
		return analyses.AnalysisResult{}, Result{}, err
	}
	return row, result, nil
}
