package knowledge

import (
	"context"
	"strings"
	"testing"
)

func TestMemorySearchRanksByOverlap(t *testing.T) {
	repo := NewMemoryRepository(nil)
	docs, err := repo.Search(context.Background(), "what is your technology stack", 3)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(docs) == 0 {
		t.Fatalf("expected hits")
	}
	if docs[0].ID != "technologies" {
		t.Fatalf("expected technologies first, got %q", docs[0].ID)
	}
}

func TestMemorySearchLimit(t *testing.T) {
	repo := NewMemoryRepository(nil)
	docs, err := repo.Search(context.Background(), "nextcore ai company services", 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(docs) > 1 {
		t.Fatalf("expected at most 1 doc, got %d", len(docs))
	}
}

func TestMemorySearchNoMatch(t *testing.T) {
	repo := NewMemoryRepository(nil)
	docs, err := repo.Search(context.Background(), "zzz qqq", 3)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected no hits, got %d", len(docs))
	}
}

func TestServiceContextJoinsDocuments(t *testing.T) {
	repo := NewMemoryRepository([]Document{
		{ID: "a", Title: "A", Content: "alpha services info"},
		{ID: "b", Title: "B", Content: "beta services info"},
	})
	svc := NewService(repo)

	ctxBlock, err := svc.Context(context.Background(), "services")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(ctxBlock, "alpha") || !strings.Contains(ctxBlock, "beta") {
		t.Fatalf("expected both documents in context, got: %s", ctxBlock)
	}
}

func TestServiceContextEmptyQuestion(t *testing.T) {
	svc := NewService(NewMemoryRepository(nil))
	if _, err := svc.Context(context.Background(), "  "); err != ErrInvalidQuery {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}
