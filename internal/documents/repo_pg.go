package documents

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new document and returns the assigned identity.
func (r *PGRepo) Create(ctx context.Context, filename, text string, createdAt int64) (Document, error) {
	const query = `
INSERT INTO documents (filename, text, created_at)
VALUES ($1, $2, $3)
RETURNING id`

	doc := Document{
		Filename:  filename,
		Text:      text,
		CreatedAt: createdAt,
	}
	if err := r.DB.QueryRowContext(ctx, query, filename, text, createdAt).Scan(&doc.ID); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// GetByID fetches a document by identity.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Document, error) {
	const query = `
SELECT id, filename, text, created_at
FROM documents
WHERE id = $1
LIMIT 1`

	var doc Document
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&doc.ID,
		&doc.Filename,
		&doc.Text,
		&doc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

// List returns one page of summaries newest-first plus the total row
// count. The count is a separate query so it stays correct for offsets
// past the end of the table.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Summary, int64, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	const query = `
SELECT id, filename, created_at
FROM documents
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := []Summary{}
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.Filename, &s.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	total, err := r.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Delete removes a document. Dependent analysis_results rows are
// removed by the ON DELETE CASCADE foreign key.
func (r *PGRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM documents WHERE id = $1`

	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of documents.
func (r *PGRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT count(*) FROM documents`

	var total int64
	if err := r.DB.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

var _ Repo = (*PGRepo)(nil)
