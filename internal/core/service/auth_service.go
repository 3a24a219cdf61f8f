package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sysadmin/sysadmin-api/internal/core/domain"
	"github.com/sysadmin/sysadmin-api/internal/core/ports"
)

// AuthService implements password login backed by server-side sessions. The
// cookie token is an HS256 JWT whose jti names the stored session, so a
// forged or tampered cookie never reaches the session store.
type AuthService struct {
	users     ports.UserRepository
	sessions  ports.SessionStore
	secret    []byte
	ttl       time.Duration
	logger    zerolog.Logger
	now       func() time.Time
	dummyHash string
}

func NewAuthService(
	users ports.UserRepository,
	sessions ports.SessionStore,
	secret string,
	ttl time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	// Compared against when the username is unknown so both failure paths
	// cost one bcrypt comparison.
	dummy, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	return &AuthService{
		users:     users,
		sessions:  sessions,
		secret:    []byte(secret),
		ttl:       ttl,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
		dummyHash: string(dummy),
	}
}

// Login never tells an unknown username, a wrong password or an inactive
// account apart: all return domain.ErrBadCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrBadCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}
	if user == nil {
		passwordMatches(s.dummyHash, password)
		s.logger.Warn().Str("username", username).Msg("login failed")
		return "", nil, domain.ErrBadCredentials
	}
	if !passwordMatches(user.Password, password) {
		s.logger.Warn().Str("username", username).Msg("login failed")
		return "", nil, domain.ErrBadCredentials
	}
	// Inactive accounts fail the same way as a wrong password.
	if user.IsActive != domain.UserActive {
		s.logger.Warn().Str("username", username).Msg("login rejected: user inactive")
		return "", nil, domain.ErrBadCredentials
	}

	now := s.now()
	if err := s.users.TouchLastLogin(ctx, user.ID, now); err != nil {
		s.logger.Warn().Err(err).Int64("user_id", user.ID).Msg("failed to record last login")
	}

	session := domain.Session{
		ID:        uuid.NewString(),
		Username:  user.Username,
		Roles:     []string{},
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return "", nil, fmt.Errorf("login: save session: %w", err)
	}

	token, err := s.issueToken(session)
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}

	s.logger.Info().Str("username", user.Username).Msg("login succeeded")
	logged := user.WithLastLogin(now)
	return token, &logged, nil
}

func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil, domain.ErrNoSession
	}

	session, err := s.sessions.Get(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if session == nil || session.Username != claims.Subject || session.Expired(s.now()) {
		return nil, domain.ErrNoSession
	}
	return session, nil
}

// Logout drops the session behind token. Unknown or invalid tokens are a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.parseToken(token, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, claims.ID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.logger.Info().Str("username", claims.Subject).Msg("logged out")
	return nil
}

func (s *AuthService) issueToken(session domain.Session) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        session.ID,
		Subject:   session.Username,
		IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

func (s *AuthService) parseToken(token string, opts ...jwt.ParserOption) (*jwt.RegisteredClaims, error) {
	if token == "" {
		return nil, domain.ErrNoSession
	}
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid || claims.ID == "" {
		return nil, errors.New("session token missing id")
	}
	return claims, nil
}

var _ ports.AuthService = (*AuthService)(nil)
