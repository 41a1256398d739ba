package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/scholarfind/scholarship-api/internal/core/domain"
)

type stubAuthRepo struct {
	users  map[string]*domain.User // keyed by email
	nextID int64
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	created := cloneUser(user)
	created.ID = r.nextID
	r.nextID++
	r.users[created.Email] = cloneUser(created)
	return cloneUser(created), nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubAuthRepo) GetRole(_ context.Context, userID int64) (string, error) {
	for _, u := range r.users {
		if u.ID == userID {
			return u.Role, nil
		}
	}
	return "", domain.ErrUserNotFound
}

func newAuthService(repo *stubAuthRepo) *AuthService {
	return NewAuthService(repo, NewTokenService("secret", time.Hour), zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newAuthService(repo)

	token, user, err := svc.Register(context.Background(), "Ana", "ana@x.com", "secret1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected role %q, got %q", domain.RoleUser, user.Role)
	}
	if user.PasswordHash == "secret1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	claims, err := NewTokenService("secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := newAuthService(newStubAuthRepo())

	if _, _, err := svc.Register(context.Background(), "", "a@x.com", "pass"); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "Ana", "a@x.com", ""); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newAuthService(repo)

	_, first, err := svc.Register(context.Background(), "Ana", "ana@x.com", "secret1")
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	if _, _, err := svc.Register(context.Background(), "Imposter", "ana@x.com", "other"); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// First record untouched.
	stored, err := repo.FindByEmail(context.Background(), "ana@x.com")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if stored.ID != first.ID || stored.Name != "Ana" {
		t.Fatalf("first record modified: %+v", stored)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newAuthService(repo)

	_, registered, err := svc.Register(context.Background(), "Ana", "ana@x.com", "secret1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "ana@x.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.ID != registered.ID {
		t.Fatalf("expected user id %d, got %d", registered.ID, user.ID)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newAuthService(newStubAuthRepo())

	if _, _, err := svc.Register(context.Background(), "Ana", "ana@x.com", "secret1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "ana@x.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService(newStubAuthRepo())

	// Unknown email must fail exactly like a wrong password.
	if _, _, err := svc.Login(context.Background(), "nobody@x.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
