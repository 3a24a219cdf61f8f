package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sysadmin/sysadmin-api/internal/core/domain"
	"github.com/sysadmin/sysadmin-api/internal/core/ports"
)

// UserService implements the system user use cases. Passwords are hashed here
// on every write and never on read.
type UserService struct {
	repo     ports.UserRepository
	logger   zerolog.Logger
	now      func() time.Time
	hashCost int
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{
		repo:     repo,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
		hashCost: bcrypt.DefaultCost,
	}
}

func (s *UserService) List(ctx context.Context) ([]domain.UserSummary, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Save assigns the server-side fields and inserts the user.
func (s *UserService) Save(ctx context.Context, user domain.User) (int64, error) {
	if err := s.ensureUsernameFree(ctx, user.Username, 0); err != nil {
		return 0, err
	}

	hash, err := hashPassword(user.Password, s.hashCost)
	if err != nil {
		return 0, err
	}

	user = user.WithPassword(hash).WithCreatedAt(s.now())
	id, err := s.repo.Create(ctx, user)
	if err != nil {
		s.logger.Warn().Err(err).Str("username", user.Username).Msg("failed to create user")
		return 0, err
	}

	s.logger.Info().Int64("user_id", id).Str("username", user.Username).Msg("user created")
	return id, nil
}

// Modify overwrites every mutable field of an existing user, re-hashing the
// supplied password. CreatedAt is never touched.
func (s *UserService) Modify(ctx context.Context, user domain.User) (int64, error) {
	if err := s.ensureUsernameFree(ctx, user.Username, user.ID); err != nil {
		return 0, err
	}

	hash, err := hashPassword(user.Password, s.hashCost)
	if err != nil {
		return 0, err
	}

	n, err := s.repo.Update(ctx, user.WithPassword(hash))
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user updated")
	return n, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) (int64, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info().Int64("user_id", id).Msg("user deleted")
	}
	return n, nil
}

// ensureUsernameFree fails when username belongs to a user other than selfID.
// The unique index still guards concurrent writers.
func (s *UserService) ensureUsernameFree(ctx context.Context, username string, selfID int64) error {
	existing, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return domain.ErrUsernameTaken
	}
	return nil
}

var _ ports.UserService = (*UserService)(nil)
