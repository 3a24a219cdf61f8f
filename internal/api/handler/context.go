package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sysadmin/sysadmin-api/internal/core/domain"
)

// pathID reads the :id path parameter. A missing or non-numeric id is
// InvalidInput, never a panic.
func pathID(c echo.Context) (int64, error) {
	raw := c.Param("id")
	if raw == "" {
		return 0, domain.InvalidInput("id is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.InvalidInput("invalid id: " + strconv.Quote(raw))
	}
	return id, nil
}

// bindAndValidate decodes the request body into req and runs the validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}
