package ports

import (
	"context"

	"github.com/sysadmin/sysadmin-api/internal/core/domain"
)

// SessionStore persists login sessions.
type SessionStore interface {
	Save(ctx context.Context, session domain.Session) error
	// Get returns (nil, nil) for unknown or expired ids.
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
