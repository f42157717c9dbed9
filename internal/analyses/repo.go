package analyses

import "context"

// Repo defines persistence operations for analysis results. The store
// is append-only: rows are never mutated, only added or removed by
// document cascade.
type Repo interface {
	// Append records a completed analysis run for a document and
	// returns the row with its store-assigned identity. Returns
	// ErrDocumentNotFound when docID references no document.
	Append(ctx context.Context, docID int64, resultJSON string, createdAt int64) (AnalysisResult, error)
	// LatestForDocument returns the result with the greatest
	// (created_at, id) among rows for docID, or ErrNotFound when the
	// document has no analyses yet.
	LatestForDocument(ctx context.Context, docID int64) (AnalysisResult, error)
	// Count returns the total number of analysis results.
	Count(ctx context.Context) (int64, error)
}
