package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sysadmin/sysadmin-api/internal/api/metrics"
	"github.com/sysadmin/sysadmin-api/internal/core/domain"
	"github.com/sysadmin/sysadmin-api/internal/core/ports"
)

const entityUser = "user"

// UserHandler handles HTTP requests under /sys/user.
type UserHandler struct {
	service ports.UserService
	metrics *metrics.Metrics
}

func NewUserHandler(service ports.UserService, m *metrics.Metrics) *UserHandler {
	return &UserHandler{service: service, metrics: m}
}

// List handles GET /sys/user.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.UserSummary
// @Failure      412  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /sys/user [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /sys/user/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /sys/user/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.NotFound("user not found")
	}
	return c.JSON(http.StatusOK, user)
}

// Create handles POST /sys/user and responds with the new id.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      userRequest  true  "User"
// @Success      200   {integer} int64
// @Failure      400   {object}  errorResponse
// @Failure      412   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /sys/user [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req userRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.service.Save(c.Request().Context(), toUser(req))
	if err != nil {
		return err
	}

	h.metrics.RecordCreated(entityUser)
	return c.JSON(http.StatusOK, id)
}

// Update handles PUT /sys/user and responds with the affected row count.
//
// @Summary      Replace a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      userRequest  true  "User, id required"
// @Success      200   {integer} int64
// @Failure      400   {object}  errorResponse
// @Failure      412   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /sys/user [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req userRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.ID <= 0 {
		return domain.InvalidInput("id is required")
	}

	n, err := h.service.Modify(c.Request().Context(), toUser(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}

// Delete handles DELETE /sys/user/:id and responds with the affected row
// count. Deleting a missing id is not an error.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {integer} int64
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /sys/user/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	n, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}

	h.metrics.RecordsDeleted(entityUser, n)
	return c.JSON(http.StatusOK, n)
}
