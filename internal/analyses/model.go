package analyses

// AnalysisResult is one immutable, timestamped output of running
// analysis against a document. ResultJSON is stored verbatim; the
// store never inspects its structure.
type AnalysisResult struct {
	ID         int64  `json:"id"`
	DocID      int64  `json:"doc_id"`
	ResultJSON string `json:"result_json"`
	CreatedAt  int64  `json:"created_at"` // unix milliseconds
}
