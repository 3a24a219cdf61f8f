package ports

import (
	"context"

	"github.com/sysadmin/sysadmin-api/internal/core/domain"
)

// UserService defines the use cases behind the /sys/user routes.
type UserService interface {
	List(ctx context.Context) ([]domain.UserSummary, error)
	// Get returns (nil, nil) when the user does not exist.
	Get(ctx context.Context, id int64) (*domain.User, error)
	Save(ctx context.Context, user domain.User) (int64, error)
	Modify(ctx context.Context, user domain.User) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
