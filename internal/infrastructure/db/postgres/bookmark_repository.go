package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/scholarfind/scholarship-api/internal/core/domain"
)

type BookmarkRepository struct {
	db *sql.DB
}

func NewBookmarkRepository(db *sql.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

// ListScholarships joins through the bookmark relation, newest bookmark first.
func (r *BookmarkRepository) ListScholarships(ctx context.Context, userID int64) ([]*domain.Scholarship, error) {
	query := `SELECT s.id, s.title, s.provider, s.category, s.amount, s.deadline,
	                 s.eligibility, s.location, s.description, s.created_by, s.created_at
	          FROM scholarships s
	          INNER JOIN bookmarks b ON s.id = b.scholarship_id
	          WHERE b.user_id = $1
	          ORDER BY b.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.Scholarship, 0)
	for rows.Next() {
		s, err := scanScholarship(rows)
		if err != nil {
			return nil, fmt.Errorf("list bookmarks: %w", err)
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}

	return items, nil
}

// Insert relies on the composite primary key for the uniqueness invariant:
// the constraint check is atomic in the database, no application locking.
func (r *BookmarkRepository) Insert(ctx context.Context, userID, scholarshipID int64) error {
	query := `INSERT INTO bookmarks (user_id, scholarship_id) VALUES ($1, $2)`

	if _, err := r.db.ExecContext(ctx, query, userID, scholarshipID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyBookmarked
		}
		return fmt.Errorf("insert bookmark: %w", err)
	}

	return nil
}

// Delete is idempotent: zero rows affected is still success.
func (r *BookmarkRepository) Delete(ctx context.Context, userID, scholarshipID int64) error {
	query := `DELETE FROM bookmarks WHERE user_id = $1 AND scholarship_id = $2`

	if _, err := r.db.ExecContext(ctx, query, userID, scholarshipID); err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}

	return nil
}
