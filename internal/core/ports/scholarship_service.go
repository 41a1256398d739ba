package ports

import (
	"context"

	"github.com/scholarfind/scholarship-api/internal/core/domain"
)

// ScholarshipService defines use-case operations for scholarship listings.
type ScholarshipService interface {
	List(ctx context.Context, filter ScholarshipFilter) ([]*domain.Scholarship, error)
	Get(ctx context.Context, id int64) (*domain.Scholarship, error)
	Create(ctx context.Context, in ScholarshipInput, createdBy int64) (int64, error)
	Update(ctx context.Context, id int64, in ScholarshipInput) error
	Delete(ctx context.Context, id int64) error
}
