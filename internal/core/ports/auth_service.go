package ports

import (
	"context"

	"github.com/sysadmin/sysadmin-api/internal/core/domain"
)

type AuthService interface {
	// Login verifies the credentials and opens a session. The returned token
	// is the opaque cookie value for that session.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Authenticate resolves a token to its live session or domain.ErrNoSession.
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
	Logout(ctx context.Context, token string) error
}
