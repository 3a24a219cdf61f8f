package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sysadmin/sysadmin-api/internal/api/metrics"
	"github.com/sysadmin/sysadmin-api/internal/api/middleware"
	"github.com/sysadmin/sysadmin-api/internal/core/ports"
)

// CookieConfig describes the session cookie written on login.
type CookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

type AuthHandler struct {
	authService ports.AuthService
	cookie      CookieConfig
	metrics     *metrics.Metrics
}

func NewAuthHandler(authService ports.AuthService, cookie CookieConfig, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie, metrics: m}
}

const loginPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Sign in</title></head>
<body>
<form method="post" action="/login">
  <label>Username <input name="username" autocomplete="username" required></label>
  <label>Password <input name="password" type="password" autocomplete="current-password" required></label>
  <button type="submit">Sign in</button>
</form>
</body>
</html>
`

// LoginPage handles GET /login.
//
// @Summary      Login form
// @Tags         auth
// @Produce      html
// @Success      200
// @Router       /login [get]
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.HTML(http.StatusOK, loginPage)
}

// Login handles POST /login. On success the session cookie is set and the
// client is sent back to the URI that triggered the login, or to "/".
//
// @Summary      Login
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      302
// @Failure      412  {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	token, _, err := h.authService.Login(c.Request().Context(), c.FormValue("username"), c.FormValue("password"))
	if err != nil {
		h.metrics.LoginAttempt(metrics.LoginFailure)
		return err
	}
	h.metrics.LoginAttempt(metrics.LoginSuccess)

	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookie.TTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	target := "/"
	if rt, err := c.Cookie(middleware.ReturnToCookie); err == nil {
		target = middleware.SafeReturnPath(rt.Value)
		h.clearCookie(c, middleware.ReturnToCookie)
	}
	return c.Redirect(http.StatusFound, target)
}

// Logout handles GET /logout.
//
// @Summary      Logout
// @Tags         auth
// @Success      302
// @Router       /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if ck, err := c.Cookie(h.cookie.Name); err == nil && ck.Value != "" {
		if err := h.authService.Logout(c.Request().Context(), ck.Value); err != nil {
			return err
		}
	}
	h.clearCookie(c, h.cookie.Name)
	return c.Redirect(http.StatusFound, middleware.LoginPath)
}

func (h *AuthHandler) clearCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
