package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/sysadmin/sysadmin-api/internal/core/domain"
	"github.com/sysadmin/sysadmin-api/internal/core/ports"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// List returns every user in insertion order, projected to the summary columns.
func (r *UserRepository) List(ctx context.Context) ([]domain.UserSummary, error) {
	var rows []userRecord
	if err := r.db.WithContext(ctx).
		Select(userSummaryColumns).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]domain.UserSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toSummary())
	}
	return out, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(r.db.WithContext(ctx).Where("username = ?", username))
}

func (r *UserRepository) findOne(q *gorm.DB) (*domain.User, error) {
	var rec userRecord
	if err := q.First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	u := rec.toDomain()
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (int64, error) {
	rec := toUserRecord(user)
	rec.ID = 0
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return 0, translateUserError("insert user", err)
	}
	return rec.ID, nil
}

// Update overwrites the mutable columns. created_at is never written.
func (r *UserRepository) Update(ctx context.Context, user domain.User) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&userRecord{}).Where("id = ?", user.ID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("update user: %w", err)
	}
	if count == 0 {
		return 0, domain.ErrRecordNotFound
	}

	res := r.db.WithContext(ctx).
		Model(&userRecord{}).
		Where("id = ?", user.ID).
		Select(userMutableColumns).
		Updates(toUserRecord(user))
	if res.Error != nil {
		return 0, translateUserError("update user", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&userRecord{}, id)
	if res.Error != nil {
		return 0, fmt.Errorf("delete user: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	if err := r.db.WithContext(ctx).
		Model(&userRecord{}).
		Where("id = ?", id).
		Update("last_login", at).Error; err != nil {
		return fmt.Errorf("touch last login: %w", err)
	}
	return nil
}

func translateUserError(op string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrUsernameTaken
	}
	return fmt.Errorf("%s: %w", op, err)
}

var _ ports.UserRepository = (*UserRepository)(nil)
