package ports

import (
	"context"

	"github.com/scholarfind/scholarship-api/internal/core/domain"
)

// BookmarkService defines use-case operations for per-user bookmarks.
type BookmarkService interface {
	List(ctx context.Context, userID int64) ([]*domain.Scholarship, error)
	Add(ctx context.Context, userID, scholarshipID int64) error
	Remove(ctx context.Context, userID, scholarshipID int64) error
}
