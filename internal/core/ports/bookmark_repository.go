package ports

import (
	"context"

	"github.com/scholarfind/scholarship-api/internal/core/domain"
)

// BookmarkRepository defines persistence operations for the user↔scholarship
// bookmark relation.
type BookmarkRepository interface {
	// ListScholarships returns the scholarships bookmarked by the user,
	// ordered by bookmark creation time, newest first.
	ListScholarships(ctx context.Context, userID int64) ([]*domain.Scholarship, error)
	// Insert adds a bookmark. The storage layer enforces the composite
	// uniqueness invariant and returns domain.ErrAlreadyBookmarked on a
	// duplicate pair.
	Insert(ctx context.Context, userID, scholarshipID int64) error
	// Delete removes a bookmark. Removing an absent bookmark is a no-op.
	Delete(ctx context.Context, userID, scholarshipID int64) error
}
