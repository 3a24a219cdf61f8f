package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/sysadmin/sysadmin-api/internal/core/domain"
)

// WithRoles lets a request through when its session holds one of roles.
// An empty role list admits every authenticated session.
func WithRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if len(roles) == 0 {
			return next
		}
		return func(c echo.Context) error {
			sess, ok := SessionFromContext(c)
			if !ok || !sess.HasAnyRole(roles...) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
