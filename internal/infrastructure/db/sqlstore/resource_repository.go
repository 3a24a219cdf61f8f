package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/sysadmin/sysadmin-api/internal/core/domain"
	"github.com/sysadmin/sysadmin-api/internal/core/ports"
)

type ResourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

func (r *ResourceRepository) List(ctx context.Context) ([]domain.Resource, error) {
	var rows []resourceRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}

	out := make([]domain.Resource, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ResourceRepository) FindByID(ctx context.Context, id int64) (*domain.Resource, error) {
	var rec resourceRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find resource: %w", err)
	}
	res := rec.toDomain()
	return &res, nil
}

func (r *ResourceRepository) Create(ctx context.Context, res domain.Resource) (int64, error) {
	rec := toResourceRecord(res)
	rec.ID = 0
	if err := r.db.WithContext(ctx).Omit("Parent").Create(&rec).Error; err != nil {
		return 0, translateResourceError("insert resource", err)
	}
	return rec.ID, nil
}

func (r *ResourceRepository) Update(ctx context.Context, res domain.Resource) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&resourceRecord{}).Where("id = ?", res.ID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("update resource: %w", err)
	}
	if count == 0 {
		return 0, domain.ErrRecordNotFound
	}

	result := r.db.WithContext(ctx).
		Model(&resourceRecord{}).
		Where("id = ?", res.ID).
		Select(resourceMutableColumns).
		Updates(toResourceRecord(res))
	if result.Error != nil {
		return 0, translateResourceError("update resource", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *ResourceRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&resourceRecord{}, id)
	if res.Error != nil {
		return 0, fmt.Errorf("delete resource: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// The parent reference is enforced by the store's foreign key.
func translateResourceError(op string, err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.InvalidInput("parent resource does not exist")
	}
	return fmt.Errorf("%s: %w", op, err)
}

var _ ports.ResourceRepository = (*ResourceRepository)(nil)
