package documents

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo used when no
// database is configured and by handler tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	docs   map[int64]Document

	// Cascade, when set, removes dependent analysis rows during Delete.
	// Wired by bootstrap so the memory stores mirror the FK cascade.
	Cascade func(ctx context.Context, docID int64) error
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{docs: make(map[int64]Document)}
}

// Create stores a new document with a monotonically assigned identity.
func (r *MemoryRepo) Create(ctx context.Context, filename, text string, createdAt int64) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	doc := Document{
		ID:        r.nextID,
		Filename:  filename,
		Text:      text,
		CreatedAt: createdAt,
	}
	r.docs[doc.ID] = doc
	return doc, nil
}

// GetByID returns a document by identity.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[id]
	if !ok {
		return Document{}, ErrNotFound
	}
	return doc, nil
}

// List returns a page of summaries newest-first plus the total count.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Summary, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	r.mu.RLock()
	all := make([]Summary, 0, len(r.docs))
	for _, doc := range r.docs {
		all = append(all, Summary{ID: doc.ID, Filename: doc.Filename, CreatedAt: doc.CreatedAt})
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt != all[j].CreatedAt {
			return all[i].CreatedAt > all[j].CreatedAt
		}
		return all[i].ID > all[j].ID
	})

	total := int64(len(all))
	if offset >= len(all) {
		return []Summary{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

// Delete removes a document and cascades to its analyses.
func (r *MemoryRepo) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	if _, ok := r.docs[id]; !ok {
		r.mu.Unlock()
		return ErrNotFound
	}
	delete(r.docs, id)
	r.mu.Unlock()

	if r.Cascade != nil {
		return r.Cascade(ctx, id)
	}
	return nil
}

// Count returns the number of stored documents.
func (r *MemoryRepo) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.docs)), nil
}

// Exists reports whether a document is present. Used by the analyses
// memory repo to enforce referential integrity.
func (r *MemoryRepo) Exists(ctx context.Context, id int64) bool {
	if err := ctx.Err(); err != nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.docs[id]
	return ok
}

var _ Repo = (*MemoryRepo)(nil)
