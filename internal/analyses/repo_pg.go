package analyses

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgForeignKeyViolation = "23503"

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Append inserts a new analysis row. Referential integrity is enforced
// by the doc_id foreign key; a violation maps to ErrDocumentNotFound.
func (r *PGRepo) Append(ctx context.Context, docID int64, resultJSON string, createdAt int64) (AnalysisResult, error) {
	const query = `
INSERT INTO analysis_results (doc_id, result_json, created_at)
VALUES ($1, $2, $3)
RETURNING id`

	result := AnalysisResult{
		DocID:      docID,
		ResultJSON: resultJSON,
		CreatedAt:  createdAt,
	}
	err := r.DB.QueryRowContext(ctx, query, docID, resultJSON, createdAt).Scan(&result.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return AnalysisResult{}, ErrDocumentNotFound
		}
		return AnalysisResult{}, err
	}
	return result, nil
}

// LatestForDocument returns the newest analysis for a document.
// Identical timestamps are disambiguated by the higher id, so the last
// committed row always wins.
func (r *PGRepo) LatestForDocument(ctx context.Context, docID int64) (AnalysisResult, error) {
	const query = `
SELECT id, doc_id, result_json, created_at
FROM analysis_results
WHERE doc_id = $1
ORDER BY created_at DESC, id DESC
LIMIT 1`

	var result AnalysisResult
	err := r.DB.QueryRowContext(ctx, query, docID).Scan(
		&result.ID,
		&result.DocID,
		&result.ResultJSON,
		&result.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AnalysisResult{}, ErrNotFound
		}
		return AnalysisResult{}, err
	}
	return result, nil
}

// Count returns the total number of analysis results.
func (r *PGRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT count(*) FROM analysis_results`

	var total int64
	if err := r.DB.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

var _ Repo = (*PGRepo)(nil)
