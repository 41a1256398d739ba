package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/scholarfind/scholarship-api/internal/core/domain"
)

type bookmarkKey struct {
	userID        int64
	scholarshipID int64
}

// stubBookmarkRepo enforces pair uniqueness the way the real unique
// constraint does.
type stubBookmarkRepo struct {
	rows map[bookmarkKey]struct{}
}

func newStubBookmarkRepo() *stubBookmarkRepo {
	return &stubBookmarkRepo{rows: make(map[bookmarkKey]struct{})}
}

func (r *stubBookmarkRepo) ListScholarships(_ context.Context, userID int64) ([]*domain.Scholarship, error) {
	out := make([]*domain.Scholarship, 0)
	for k := range r.rows {
		if k.userID == userID {
			out = append(out, &domain.Scholarship{ID: k.scholarshipID})
		}
	}
	return out, nil
}

func (r *stubBookmarkRepo) Insert(_ context.Context, userID, scholarshipID int64) error {
	k := bookmarkKey{userID, scholarshipID}
	if _, exists := r.rows[k]; exists {
		return domain.ErrAlreadyBookmarked
	}
	r.rows[k] = struct{}{}
	return nil
}

func (r *stubBookmarkRepo) Delete(_ context.Context, userID, scholarshipID int64) error {
	delete(r.rows, bookmarkKey{userID, scholarshipID})
	return nil
}

func TestBookmarkService_Add_ThenDuplicate(t *testing.T) {
	repo := newStubBookmarkRepo()
	svc := NewBookmarkService(repo, zerolog.Nop())

	if err := svc.Add(context.Background(), 1, 10); err != nil {
		t.Fatalf("first add failed: %v", err)
	}

	if err := svc.Add(context.Background(), 1, 10); err != domain.ErrAlreadyBookmarked {
		t.Fatalf("expected ErrAlreadyBookmarked, got %v", err)
	}

	// Exactly one row for the pair.
	if len(repo.rows) != 1 {
		t.Fatalf("expected 1 bookmark row, got %d", len(repo.rows))
	}
}

func TestBookmarkService_Add_DistinctPairs(t *testing.T) {
	repo := newStubBookmarkRepo()
	svc := NewBookmarkService(repo, zerolog.Nop())

	if err := svc.Add(context.Background(), 1, 10); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.Add(context.Background(), 2, 10); err != nil {
		t.Fatalf("same scholarship, different user should succeed: %v", err)
	}
	if err := svc.Add(context.Background(), 1, 11); err != nil {
		t.Fatalf("same user, different scholarship should succeed: %v", err)
	}
}

func TestBookmarkService_Remove_Idempotent(t *testing.T) {
	repo := newStubBookmarkRepo()
	svc := NewBookmarkService(repo, zerolog.Nop())

	if err := svc.Add(context.Background(), 1, 10); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.Remove(context.Background(), 1, 10); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	// Second remove of an absent bookmark still succeeds.
	if err := svc.Remove(context.Background(), 1, 10); err != nil {
		t.Fatalf("idempotent remove failed: %v", err)
	}
	if len(repo.rows) != 0 {
		t.Fatalf("expected empty relation, got %d rows", len(repo.rows))
	}
}

func TestBookmarkService_List(t *testing.T) {
	repo := newStubBookmarkRepo()
	svc := NewBookmarkService(repo, zerolog.Nop())

	_ = svc.Add(context.Background(), 1, 10)
	_ = svc.Add(context.Background(), 1, 11)
	_ = svc.Add(context.Background(), 2, 12)

	items, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 bookmarks for user 1, got %d", len(items))
	}
}
