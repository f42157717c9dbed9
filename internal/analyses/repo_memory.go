package analyses

import (
	"context"
	"sync"
)

// DocumentChecker reports whether a document exists. The memory repo
// uses it to enforce the same referential integrity the foreign key
// provides in Postgres.
type DocumentChecker interface {
	Exists(ctx context.Context, id int64) bool
}

// MemoryRepo is an in-memory implementation of Repo used when no
// database is configured and by tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	byDoc  map[int64][]AnalysisResult

	Docs DocumentChecker
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo(docs DocumentChecker) *MemoryRepo {
	return &MemoryRepo{
		byDoc: make(map[int64][]AnalysisResult),
		Docs:  docs,
	}
}

// Append records a completed analysis run for a document.
func (r *MemoryRepo) Append(ctx context.Context, docID int64, resultJSON string, createdAt int64) (AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return AnalysisResult{}, err
	}
	if r.Docs != nil && !r.Docs.Exists(ctx, docID) {
		return AnalysisResult{}, ErrDocumentNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	result := AnalysisResult{
		ID:         r.nextID,
		DocID:      docID,
		ResultJSON: resultJSON,
		CreatedAt:  createdAt,
	}
	r.byDoc[docID] = append(r.byDoc[docID], result)
	return result, nil
}

// LatestForDocument returns the row with the greatest (created_at, id)
// for a document.
func (r *MemoryRepo) LatestForDocument(ctx context.Context, docID int64) (AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return AnalysisResult{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	results := r.byDoc[docID]
	if len(results) == 0 {
		return AnalysisResult{}, ErrNotFound
	}
	latest := results[0]
	for _, res := range results[1:] {
		if res.CreatedAt > latest.CreatedAt ||
			(res.CreatedAt == latest.CreatedAt && res.ID > latest.ID) {
			latest = res
		}
	}
	return latest, nil
}

// Count returns the number of stored analysis results.
func (r *MemoryRepo) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total int64
	for _, results := range r.byDoc {
		total += int64(len(results))
	}
	return total, nil
}

// DeleteForDocument removes all analyses for a document. Mirrors the
// ON DELETE CASCADE behavior of the Postgres schema; wired as the
// documents memory repo cascade hook.
func (r *MemoryRepo) DeleteForDocument(ctx context.Context, docID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byDoc, docID)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
