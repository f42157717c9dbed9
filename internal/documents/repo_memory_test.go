package documents

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryRepoListNewestFirstWithIDTieBreak(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if _, err := repo.Create(ctx, "old.pdf", "x", 100); err != nil {
		t.Fatalf("Create: %v", err)
	}
	first, err := repo.Create(ctx, "tie-a.pdf", "x", 200)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := repo.Create(ctx, "tie-b.pdf", "x", 200)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	items, total, err := repo.List(ctx, 20, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 || len(items) != 3 {
		t.Fatalf("expected 3 items, got %d (total %d)", len(items), total)
	}
	if items[0].ID != second.ID || items[1].ID != first.ID {
		t.Fatalf("expected ties broken by higher id, got %+v", items)
	}
	if items[2].Filename != "old.pdf" {
		t.Fatalf("expected oldest last, got %+v", items[2])
	}
}

func TestMemoryRepoListWindow(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := repo.Create(ctx, "doc.pdf", "x", int64(100+i)); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	items, total, err := repo.List(ctx, 2, 4)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected total 5, got %d", total)
	}
	if len(items) != 1 {
		t.Fatalf("expected partial final page of 1, got %d", len(items))
	}

	items, _, err = repo.List(ctx, 2, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty page past the end, got %d", len(items))
	}
}

func TestMemoryRepoDeleteInvokesCascade(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	var cascaded int64
	repo.Cascade = func(ctx context.Context, docID int64) error {
		cascaded = docID
		return nil
	}

	doc, err := repo.Create(ctx, "doc.pdf", "x", 100)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, doc.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if cascaded != doc.ID {
		t.Fatalf("expected cascade for %d, got %d", doc.ID, cascaded)
	}
	if repo.Exists(ctx, doc.ID) {
		t.Fatal("expected document gone")
	}
	if err := repo.Delete(ctx, doc.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
