package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sysadmin/sysadmin-api/internal/core/domain"
)

const (
	// LoginPath is where unauthenticated requests are sent.
	LoginPath = "/login"
	// ReturnToCookie remembers the URI that triggered the login challenge.
	ReturnToCookie = "return_to"

	sessionContextKey = "session"
	returnToMaxAge    = 300
)

// Authenticator resolves a session cookie value to a live session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
}

type SessionConfig struct {
	CookieName string
	Secure     bool
}

// Session requires a valid session cookie. Requests without one are
// redirected to the login page and their URI is kept in the return_to cookie.
func Session(auth Authenticator, cfg SessionConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cfg.CookieName)
			if err == nil && cookie.Value != "" {
				sess, err := auth.Authenticate(c.Request().Context(), cookie.Value)
				switch {
				case err == nil:
					c.Set(sessionContextKey, sess)
					return next(c)
				case !errors.Is(err, domain.ErrNoSession):
					return err
				}
			}

			c.SetCookie(&http.Cookie{
				Name:     ReturnToCookie,
				Value:    url.QueryEscape(c.Request().URL.RequestURI()),
				Path:     "/",
				MaxAge:   returnToMaxAge,
				HttpOnly: true,
				Secure:   cfg.Secure,
				SameSite: http.SameSiteLaxMode,
			})
			return c.Redirect(http.StatusFound, LoginPath)
		}
	}
}

// SessionFromContext returns the session stored by the Session middleware.
func SessionFromContext(c echo.Context) (*domain.Session, bool) {
	sess, ok := c.Get(sessionContextKey).(*domain.Session)
	return sess, ok && sess != nil
}

// SafeReturnPath decodes a return_to cookie value. Anything that is not a
// local absolute path yields "/".
func SafeReturnPath(raw string) string {
	p, err := url.QueryUnescape(raw)
	if err != nil || !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return "/"
	}
	u, err := url.Parse(p)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return p
}
