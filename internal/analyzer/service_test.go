package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"docanalyzer-backend/internal/analyses"
	"docanalyzer-backend/internal/documents"
)

type scriptedClient struct {
	responses []string
	calls     int
}

func (c *scriptedClient) Classify(ctx context.Context, prompt string) (string, error) {
	if c.calls >= len(c.responses) {
		return "", errors.New("no scripted response left")
	}
	resp := c.responses[c.calls]
	c.calls++
	return resp, nil
}

func newAnalyzerFixture(t *testing.T, llm Client) (*Service, *documents.MemoryRepo, *analyses.MemoryRepo) {
	t.Helper()
	docRepo := documents.NewMemoryRepo()
	analysisRepo := analyses.NewMemoryRepo(docRepo)
	svc := NewService(docRepo, analysisRepo, llm)
	svc.Now = func() int64 { return 5000 }
	return svc, docRepo, analysisRepo
}

func TestAnalyzeAppendsNormalizedResult(t *testing.T) {
	llm := &scriptedClient{responses: []string{
		`{"type":"invoice","confidence":1.4,"missing_fields":[{"name":"due_date","status":"missing","details":"no due date found"}]}`,
	}}
	svc, docRepo, analysisRepo := newAnalyzerFixture(t, llm)
	ctx := context.Background()

	doc, err := docRepo.Create(ctx, "invoice.pdf", "invoice text", 1000)
	if err != nil {
		t.Fatalf("create document: %v", err)
	}

	row, result, err := svc.Analyze(ctx, doc.ID)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.Type != "invoice" {
		t.Fatalf("expected type invoice, got %q", result.Type)
	}
	if result.Confidence != 1 {
		t.Fatalf("expected confidence clamped to 1, got %v", result.Confidence)
	}
	if result.Recommendations == nil {
		t.Fatal("expected recommendations slice, got nil")
	}
	if row.DocID != doc.ID || row.CreatedAt != 5000 {
		t.Fatalf("unexpected row: %+v", row)
	}

	stored, err := analysisRepo.LatestForDocument(ctx, doc.ID)
	if err != nil {
		t.Fatalf("LatestForDocument: %v", err)
	}
	var decoded Result
	if err := json.Unmarshal([]byte(stored.ResultJSON), &decoded); err != nil {
		t.Fatalf("stored payload is not JSON: %v", err)
	}
	if decoded.Type != "invoice" || len(decoded.MissingFields) != 1 {
		t.Fatalf("unexpected stored payload: %+v", decoded)
	}
}

func TestAnalyzeRetriesOnceOnBadJSON(t *testing.T) {
	llm := &scriptedClient{responses: []string{
		"Sure! Here is the classification you asked for.",
		`{"type":"contract","confidence":0.9}`,
	}}
	svc, docRepo, _ := newAnalyzerFixture(t, llm)
	ctx := context.Background()

	doc, err := docRepo.Create(ctx, "contract.pdf", "contract text", 1000)
	if err != nil {
		t.Fatalf("create document: %v", err)
	}

	_, result, err := svc.Analyze(ctx, doc.ID)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if llm.calls != 2 {
		t.Fatalf("expected 2 model calls, got %d", llm.calls)
	}
	if result.Type != "contract" {
		t.Fatalf("expected type contract, got %q", result.Type)
	}
}

func TestAnalyzeGivesUpAfterSecondBadResponse(t *testing.T) {
	llm := &scriptedClient{responses: []string{"not json", "still not json"}}
	svc, docRepo, analysisRepo := newAnalyzerFixture(t, llm)
	ctx := context.Background()

	doc, err := docRepo.Create(ctx, "report.pdf", "report text", 1000)
	if err != nil {
		t.Fatalf("create document: %v", err)
	}

	if _, _, err := svc.Analyze(ctx, doc.ID); !errors.Is(err, ErrUnparseable) {
		t.Fatalf("expected ErrUnparseable, got %v", err)
	}
	if llm.calls != 2 {
		t.Fatalf("expected 2 model calls, got %d", llm.calls)
	}
	// An abandoned run must leave no trace.
	total, err := analysisRepo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected nothing appended, got %d rows", total)
	}
}

func TestAnalyzeUnknownDocument(t *testing.T) {
	svc, _, _ := newAnalyzerFixture(t, &scriptedClient{})

	if _, _, err := svc.Analyze(context.Background(), 999); !errors.Is(err, documents.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAnalyzeNotConfigured(t *testing.T) {
	svc, docRepo, _ := newAnalyzerFixture(t, PlaceholderClient{})

	doc, err := docRepo.Create(context.Background(), "doc.pdf", "text", 1000)
	if err != nil {
		t.Fatalf("create document: %v", err)
	}

	if _, _, err := svc.Analyze(context.Background(), doc.ID); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
