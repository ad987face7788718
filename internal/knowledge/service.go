package knowledge

import (
	"context"
	"errors"
	"strings"
)

// Repository looks up the documents most relevant to a query.
//
// Contract:
// - Search returns at most limit documents, best match first.
// - An empty result is not an error; it means nothing relevant was stored.
type Repository interface {
	Search(ctx context.Context, query string, limit int) ([]Document, error)
}

const defaultTopK = 3

var ErrInvalidQuery = errors.New("knowledge: empty query")

// Service turns repository hits into a prompt context block for the answer
// backend.
type Service struct {
	repo Repository
	topK int
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, topK: defaultTopK}
}

// Context returns the joined content of the most relevant documents for the
// question, separated by blank lines. Returns "" when nothing matches.
func (s *Service) Context(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", ErrInvalidQuery
	}
	docs, err := s.repo.Search(ctx, question, s.topK)
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, len(docs))
	for _, d := range docs {
		if strings.TrimSpace(d.Content) == "" {
			continue
		}
		parts = append(parts, d.Content)
	}
	return strings.Join(parts, "\n\n"), nil
}
