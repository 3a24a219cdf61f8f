package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sysadmin/sysadmin-api/internal/core/domain"
)

func runWithRoles(t *testing.T, sess *domain.Session, roles ...string) (bool, error) {
	t.Helper()
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/sys/user", nil), httptest.NewRecorder())
	if sess != nil {
		c.Set(sessionContextKey, sess)
	}

	called := false
	err := WithRoles(roles...)(func(c echo.Context) error {
		called = true
		return nil
	})(c)
	return called, err
}

func TestWithRoles_EmptyListAllowsAll(t *testing.T) {
	called, err := runWithRoles(t, &domain.Session{Username: "alice"})
	if err != nil || !called {
		t.Fatalf("expected pass-through, called=%v err=%v", called, err)
	}
}

func TestWithRoles_MatchingRole(t *testing.T) {
	called, err := runWithRoles(t, &domain.Session{Roles: []string{"auditor"}}, "admin", "auditor")
	if err != nil || !called {
		t.Fatalf("expected access, called=%v err=%v", called, err)
	}
}

func TestWithRoles_MissingRole(t *testing.T) {
	called, err := runWithRoles(t, &domain.Session{Roles: []string{"viewer"}}, "admin")
	if called {
		t.Fatalf("should not reach next")
	}
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestWithRoles_NoSession(t *testing.T) {
	_, err := runWithRoles(t, nil, "admin")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}
