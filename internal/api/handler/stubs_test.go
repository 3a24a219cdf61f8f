package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sysadmin/sysadmin-api/internal/api/codec"
	"github.com/sysadmin/sysadmin-api/internal/core/domain"
)

type stubUserService struct {
	listFn   func(ctx context.Context) ([]domain.UserSummary, error)
	getFn    func(ctx context.Context, id int64) (*domain.User, error)
	saveFn   func(ctx context.Context, u domain.User) (int64, error)
	modifyFn func(ctx context.Context, u domain.User) (int64, error)
	deleteFn func(ctx context.Context, id int64) (int64, error)
}

func (s *stubUserService) List(ctx context.Context) ([]domain.UserSummary, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) Save(ctx context.Context, u domain.User) (int64, error) {
	return s.saveFn(ctx, u)
}

func (s *stubUserService) Modify(ctx context.Context, u domain.User) (int64, error) {
	return s.modifyFn(ctx, u)
}

func (s *stubUserService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.deleteFn(ctx, id)
}

type stubResourceService struct {
	listFn   func(ctx context.Context) ([]domain.Resource, error)
	getFn    func(ctx context.Context, id int64) (*domain.Resource, error)
	saveFn   func(ctx context.Context, r domain.Resource) (int64, error)
	modifyFn func(ctx context.Context, r domain.Resource) (int64, error)
	deleteFn func(ctx context.Context, id int64) (int64, error)
}

func (s *stubResourceService) List(ctx context.Context) ([]domain.Resource, error) {
	return s.listFn(ctx)
}

func (s *stubResourceService) Get(ctx context.Context, id int64) (*domain.Resource, error) {
	return s.getFn(ctx, id)
}

func (s *stubResourceService) Save(ctx context.Context, r domain.Resource) (int64, error) {
	return s.saveFn(ctx, r)
}

func (s *stubResourceService) Modify(ctx context.Context, r domain.Resource) (int64, error) {
	return s.modifyFn(ctx, r)
}

func (s *stubResourceService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.deleteFn(ctx, id)
}

type stubAuthService struct {
	loginFn        func(ctx context.Context, username, password string) (string, *domain.User, error)
	authenticateFn func(ctx context.Context, token string) (*domain.Session, error)
	logoutFn       func(ctx context.Context, token string) error
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	return s.authenticateFn(ctx, token)
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	return s.logoutFn(ctx, token)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	e.JSONSerializer = codec.Serializer{}
	return e
}

// newContext builds a context for method/target with an optional JSON body
// and path params given as name, value pairs.
func newContext(e *echo.Echo, method, target, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if len(params) > 0 {
		var names, values []string
		for i := 0; i+1 < len(params); i += 2 {
			names = append(names, params[i])
			values = append(values, params[i+1])
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	return c, rec
}
