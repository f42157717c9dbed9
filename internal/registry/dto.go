package registry

import (
	"encoding/json"

	"docanalyzer-backend/internal/documents"
)

// LatestAnalysis is the analysis envelope embedded in a document view.
// ResultJSON holds the parsed payload, or null when the stored payload
// is not valid JSON.
type LatestAnalysis struct {
	ID         int64           `json:"id"`
	DocID      int64           `json:"doc_id"`
	ResultJSON json.RawMessage `json:"result_json"`
	CreatedAt  int64           `json:"created_at"`
}

// DocumentView is the composite response for a single document lookup.
type DocumentView struct {
	ID             int64           `json:"id"`
	Filename       string          `json:"filename"`
	Text           string          `json:"text"`
	CreatedAt      int64           `json:"created_at"`
	LatestAnalysis *LatestAnalysis `json:"latest_analysis,omitempty"`
}

// Page is one page of document summaries plus the total row count.
type Page struct {
	Items []documents.Summary `json:"items"`
	Total int64               `json:"total"`
}

// Stats holds the global row counts.
type Stats struct {
	Documents int64 `json:"documents"`
	Analyses  int64 `json:"analyses"`
}
