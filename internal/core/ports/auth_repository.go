package ports

import (
	"context"

	"github.com/scholarfind/scholarship-api/internal/core/domain"
)

// AuthRepository defines the interface for user persistence.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// GetRole returns the current role stored for the user, not whatever a
	// token may claim. Returns domain.ErrUserNotFound for unknown ids.
	GetRole(ctx context.Context, userID int64) (string, error)
}

// RoleSource is the narrow read used by the admin gate to re-check a caller's
// authoritative role on every admin request.
type RoleSource interface {
	GetRole(ctx context.Context, userID int64) (string, error)
}
