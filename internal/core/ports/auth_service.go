package ports

import (
	"context"

	"github.com/scholarfind/scholarship-api/internal/core/domain"
)

type AuthService interface {
	// Register creates a new user-role account and returns a freshly issued token.
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	// Login verifies credentials and returns a token. Unknown email and wrong
	// password fail identically to avoid account enumeration.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
