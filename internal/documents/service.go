package documents

import (
	"context"
	"strings"
	"time"
)

// Service contains business logic for documents.
type Service struct {
	Repo Repo

	// Now is overridable for tests; defaults to wall-clock milliseconds.
	Now func() int64
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{
		Repo: repo,
		Now:  func() int64 { return time.Now().UnixMilli() },
	}
}

// Create validates and stores a new document record. Filename and text
// must be non-empty.
func (s *Service) Create(ctx context.Context, filename, text string) (Document, error) {
	if strings.TrimSpace(filename) == "" || strings.TrimSpace(text) == "" {
		return Document{}, ErrInvalidInput
	}
	return s.Repo.Create(ctx, filename, text, s.Now())
}

// Get returns a document by identity.
func (s *Service) Get(ctx context.Context, id int64) (Document, error) {
	if id <= 0 {
		return Document{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, id)
}

// Delete removes a document and all of its analysis results.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	return s.Repo.Delete(ctx, id)
}
