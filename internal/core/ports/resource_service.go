package ports

import (
	"context"

	"github.com/sysadmin/sysadmin-api/internal/core/domain"
)

type ResourceService interface {
	List(ctx context.Context) ([]domain.Resource, error)
	Get(ctx context.Context, id int64) (*domain.Resource, error)
	Save(ctx context.Context, res domain.Resource) (int64, error)
	Modify(ctx context.Context, res domain.Resource) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
