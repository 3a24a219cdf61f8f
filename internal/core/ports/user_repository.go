package ports

import (
	"context"
	"time"

	"github.com/sysadmin/sysadmin-api/internal/core/domain"
)

// UserRepository defines persistence operations for system users.
//
// Find* methods return (nil, nil) when no row matches; absence is left to the
// caller to interpret.
type UserRepository interface {
	List(ctx context.Context) ([]domain.UserSummary, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create inserts the user and returns the generated id.
	Create(ctx context.Context, user domain.User) (int64, error)
	// Update overwrites every mutable column of the row matching user.ID and
	// returns the number of affected rows. A missing row is
	// domain.ErrRecordNotFound.
	Update(ctx context.Context, user domain.User) (int64, error)
	// Delete removes the row and returns the number of affected rows.
	Delete(ctx context.Context, id int64) (int64, error)
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
}
