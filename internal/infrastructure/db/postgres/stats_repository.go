package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/scholarfind/scholarship-api/internal/core/domain"
)

type StatsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Collect gathers the dashboard counters. TotalUsers counts only user-role
// accounts; TotalAmount is zero, not NULL, when no scholarships exist.
func (r *StatsRepository) Collect(ctx context.Context) (*domain.AdminStats, error) {
	stats := &domain.AdminStats{}

	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM scholarships`,
	).Scan(&stats.TotalScholarships); err != nil {
		return nil, fmt.Errorf("count scholarships: %w", err)
	}

	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE role = $1`, domain.RoleUser,
	).Scan(&stats.TotalUsers); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	if err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM scholarships`,
	).Scan(&stats.TotalAmount); err != nil {
		return nil, fmt.Errorf("sum amounts: %w", err)
	}

	return stats, nil
}
