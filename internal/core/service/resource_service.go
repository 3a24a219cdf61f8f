package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sysadmin/sysadmin-api/internal/core/domain"
	"github.com/sysadmin/sysadmin-api/internal/core/ports"
)

type ResourceService struct {
	repo   ports.ResourceRepository
	logger zerolog.Logger
}

func NewResourceService(repo ports.ResourceRepository, logger zerolog.Logger) *ResourceService {
	return &ResourceService{repo: repo, logger: logger}
}

func (s *ResourceService) List(ctx context.Context) ([]domain.Resource, error) {
	return s.repo.List(ctx)
}

func (s *ResourceService) Get(ctx context.Context, id int64) (*domain.Resource, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ResourceService) Save(ctx context.Context, res domain.Resource) (int64, error) {
	if err := s.ensureParentExists(ctx, res); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, res.WithID(0))
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("resource_id", id).Str("name", res.Name).Msg("resource created")
	return id, nil
}

func (s *ResourceService) Modify(ctx context.Context, res domain.Resource) (int64, error) {
	if res.ParentID != nil && *res.ParentID == res.ID {
		return 0, domain.InvalidInput("resource cannot be its own parent")
	}
	if err := s.ensureParentExists(ctx, res); err != nil {
		return 0, err
	}

	n, err := s.repo.Update(ctx, res)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("resource_id", res.ID).Msg("resource updated")
	return n, nil
}

func (s *ResourceService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.repo.Delete(ctx, id)
}

func (s *ResourceService) ensureParentExists(ctx context.Context, res domain.Resource) error {
	if res.IsRoot() {
		return nil
	}
	parent, err := s.repo.FindByID(ctx, *res.ParentID)
	if err != nil {
		return err
	}
	if parent == nil {
		return domain.InvalidInput("parent resource does not exist")
	}
	return nil
}

var _ ports.ResourceService = (*ResourceService)(nil)
