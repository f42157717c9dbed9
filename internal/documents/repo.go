package documents

import "context"

// Repo defines persistence operations for documents.
type Repo interface {
	// Create inserts a new document and returns it with the
	// store-assigned identity.
	Create(ctx context.Context, filename, text string, createdAt int64) (Document, error)
	// GetByID returns a document by identity, or ErrNotFound.
	GetByID(ctx context.Context, id int64) (Document, error)
	// List returns a page of summaries ordered newest-first plus the
	// total row count. The total is counted independently of the page,
	// so offsets past the end yield an empty page with the true total.
	List(ctx context.Context, limit, offset int) ([]Summary, int64, error)
	// Delete removes a document and, via cascade, all of its analysis
	// results. Returns ErrNotFound when no row matches.
	Delete(ctx context.Context, id int64) error
	// Count returns the total number of documents.
	Count(ctx context.Context) (int64, error)
}
