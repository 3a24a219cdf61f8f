package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sysadmin/sysadmin-api/internal/core/domain"
)

func newTestAuth(t *testing.T) (*AuthService, *stubUserRepo, *stubSessionStore) {
	t.Helper()
	users := newStubUserRepo()
	sessions := newStubSessionStore()

	userSvc := newTestUserService(users)
	if _, err := userSvc.Save(context.Background(), domain.NewUser("carol", nil, "s3cret")); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	return NewAuthService(users, sessions, "secret", time.Hour, discardLogger), users, sessions
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, users, sessions := newTestAuth(t)

	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Username != "carol" || user.LastLogin == nil {
		t.Fatalf("unexpected user: %+v", user)
	}
	if _, ok := users.touched[user.ID]; !ok {
		t.Fatalf("last login not recorded")
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Subject != "carol" {
		t.Fatalf("expected subject carol, got %q", claims.Subject)
	}

	session, ok := sessions.sessions[claims.ID]
	if !ok {
		t.Fatalf("session %q not stored", claims.ID)
	}
	if session.Username != "carol" || len(session.Roles) != 0 {
		t.Fatalf("unexpected session: %+v", session)
	}
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	svc, _, sessions := newTestAuth(t)

	_, _, wrongPassword := svc.Login(context.Background(), "carol", "nope")
	_, _, unknownUser := svc.Login(context.Background(), "ghost", "s3cret")

	if !errors.Is(wrongPassword, domain.ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", wrongPassword)
	}
	if !errors.Is(unknownUser, domain.ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", unknownUser)
	}
	if wrongPassword.Error() != unknownUser.Error() {
		t.Fatalf("messages differ: %q vs %q", wrongPassword, unknownUser)
	}
	if len(sessions.sessions) != 0 {
		t.Fatalf("no session should be created on failure")
	}
}

func TestAuthService_Login_InactiveUserRejected(t *testing.T) {
	svc, users, sessions := newTestAuth(t)

	users.mu.Lock()
	for id, u := range users.rows {
		users.rows[id] = u.WithActive(domain.UserInactive)
	}
	users.mu.Unlock()

	_, _, err := svc.Login(context.Background(), "carol", "s3cret")
	if !errors.Is(err, domain.ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
	if len(sessions.sessions) != 0 || len(users.touched) != 0 {
		t.Fatalf("inactive login must not create a session or record a login")
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc, _, _ := newTestAuth(t)

	if _, _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
}

func TestAuthService_Login_RepositoryFailure(t *testing.T) {
	svc, users, _ := newTestAuth(t)
	users.findErr = errors.New("db down")

	_, _, err := svc.Login(context.Background(), "carol", "s3cret")
	if err == nil || errors.Is(err, domain.ErrBadCredentials) {
		t.Fatalf("expected infrastructure error, got %v", err)
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	svc, _, _ := newTestAuth(t)

	token, _, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	session, err := svc.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if session.Username != "carol" {
		t.Fatalf("unexpected session: %+v", session)
	}
}

func TestAuthService_Authenticate_RejectsForeignSignature(t *testing.T) {
	svc, _, _ := newTestAuth(t)
	other := NewAuthService(newStubUserRepo(), newStubSessionStore(), "other-secret", time.Hour, discardLogger)

	forged, err := other.issueToken(domain.Session{ID: "x", Username: "carol", CreatedAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour)})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), forged); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "garbage"); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession for garbage, got %v", err)
	}
}

func TestAuthService_Authenticate_ExpiredSession(t *testing.T) {
	svc, _, sessions := newTestAuth(t)

	token, _, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	for id, s := range sessions.sessions {
		s.ExpiresAt = time.Now().Add(-time.Minute)
		sessions.sessions[id] = s
	}

	if _, err := svc.Authenticate(context.Background(), token); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	svc, _, sessions := newTestAuth(t)

	token, _, _ := svc.Login(context.Background(), "carol", "s3cret")
	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if len(sessions.sessions) != 0 {
		t.Fatalf("session not removed")
	}
	if _, err := svc.Authenticate(context.Background(), token); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession after logout, got %v", err)
	}
	if err := svc.Logout(context.Background(), "not-a-token"); err != nil {
		t.Fatalf("logout of unknown token should be a no-op, got %v", err)
	}
}
