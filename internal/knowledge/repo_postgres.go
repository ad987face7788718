package knowledge

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresRepository reads knowledge_documents rows written by the offline
// ingestion job. Relevance uses websearch_to_tsquery so caller speech can be
// passed through without pre-tokenizing.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const searchQuery = `
SELECT id, title, content
FROM knowledge_documents
WHERE search_vector @@ websearch_to_tsquery('english', $1)
ORDER BY ts_rank(search_vector, websearch_to_tsquery('english', $1)) DESC
LIMIT $2`

func (r *PostgresRepository) Search(ctx context.Context, query string, limit int) ([]Document, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx, searchQuery, query, limit)
	if err != nil {
		return nil, fmt.Errorf("knowledge: search query: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.Title, &d.Content); err != nil {
			return nil, fmt.Errorf("knowledge: scan row: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("knowledge: iterate rows: %w", err)
	}
	return docs, nil
}
