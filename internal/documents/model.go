package documents

// Document is a stored record of one uploaded file's extracted text and
// metadata. Rows are immutable after creation.
type Document struct {
	ID        int64  `json:"id"`
	Filename  string `json:"filename"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"created_at"` // unix milliseconds
}

// Summary is the listing projection of a document. Text is excluded to
// keep list payloads small.
type Summary struct {
	ID        int64  `json:"id"`
	Filename  string `json:"filename"`
	CreatedAt int64  `json:"created_at"`
}
