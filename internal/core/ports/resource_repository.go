package ports

import (
	"context"

	"github.com/sysadmin/sysadmin-api/internal/core/domain"
)

// ResourceRepository defines persistence operations for resources. It follows
// the same absence and row-count conventions as UserRepository.
type ResourceRepository interface {
	List(ctx context.Context) ([]domain.Resource, error)
	FindByID(ctx context.Context, id int64) (*domain.Resource, error)
	Create(ctx context.Context, res domain.Resource) (int64, error)
	Update(ctx context.Context, res domain.Resource) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
