package analyses

import "errors"

var (
	// ErrNotFound means no analysis exists for the queried document.
	ErrNotFound = errors.New("analysis not found")
	// ErrDocumentNotFound means an append referenced a document that
	// does not exist. This is an upstream invariant violation and is
	// surfaced to the caller, never dropped.
	ErrDocumentNotFound = errors.New("referenced document not found")
)
