package ports

import (
	"context"

	"github.com/scholarfind/scholarship-api/internal/core/domain"
)

// StatsRepository aggregates dashboard counters across tables.
type StatsRepository interface {
	Collect(ctx context.Context) (*domain.AdminStats, error)
}

// StatsService exposes the admin dashboard aggregates.
type StatsService interface {
	Collect(ctx context.Context) (*domain.AdminStats, error)
}
