package ports

import (
	"context"
	"time"

	"github.com/scholarfind/scholarship-api/internal/core/domain"
)

// ScholarshipFilter carries all query parameters for listing scholarships.
// Every field is optional; supplied filters combine with AND.
type ScholarshipFilter struct {
	Category  string   // exact match
	MinAmount *float64 // inclusive lower bound
	MaxAmount *float64 // inclusive upper bound
	Location  string   // case-insensitive substring
	Search    string   // case-insensitive substring on title, provider or description
	Limit     int      // 0 = no cap
}

// ScholarshipInput carries the full mutable field set for create and update.
type ScholarshipInput struct {
	Title       string
	Provider    string
	Category    string
	Amount      float64
	Deadline    time.Time
	Eligibility string
	Location    string
	Description string
}

// ScholarshipRepository defines persistence operations for scholarships.
// Update and Delete succeed even when no row matches the id.
type ScholarshipRepository interface {
	Insert(ctx context.Context, s *domain.Scholarship) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Scholarship, error)
	// List returns rows matching filter, newest first. No match is an empty
	// slice, not an error.
	List(ctx context.Context, filter ScholarshipFilter) ([]*domain.Scholarship, error)
	Update(ctx context.Context, id int64, in ScholarshipInput) error
	Delete(ctx context.Context, id int64) error
}
