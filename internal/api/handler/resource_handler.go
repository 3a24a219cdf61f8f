package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sysadmin/sysadmin-api/internal/api/metrics"
	"github.com/sysadmin/sysadmin-api/internal/core/domain"
	"github.com/sysadmin/sysadmin-api/internal/core/ports"
)

const entityResource = "resource"

// ResourceHandler handles HTTP requests under /sys/resource. It follows the
// same contract as UserHandler.
type ResourceHandler struct {
	service ports.ResourceService
	metrics *metrics.Metrics
}

func NewResourceHandler(service ports.ResourceService, m *metrics.Metrics) *ResourceHandler {
	return &ResourceHandler{service: service, metrics: m}
}

// @Summary      List resources
// @Tags         resources
// @Produce      json
// @Success      200  {array}   domain.Resource
// @Failure      500  {object}  errorResponse
// @Router       /sys/resource [get]
func (h *ResourceHandler) List(c echo.Context) error {
	resources, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resources)
}

// @Summary      Get a resource by id
// @Tags         resources
// @Produce      json
// @Param        id   path      int  true  "Resource id"
// @Success      200  {object}  domain.Resource
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /sys/resource/{id} [get]
func (h *ResourceHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	res, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return domain.NotFound("resource not found")
	}
	return c.JSON(http.StatusOK, res)
}

// @Summary      Create a resource
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        body  body      resourceRequest  true  "Resource"
// @Success      200   {integer} int64
// @Failure      400   {object}  errorResponse
// @Router       /sys/resource [post]
func (h *ResourceHandler) Create(c echo.Context) error {
	var req resourceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.service.Save(c.Request().Context(), toResource(req))
	if err != nil {
		return err
	}

	h.metrics.RecordCreated(entityResource)
	return c.JSON(http.StatusOK, id)
}

// @Summary      Replace a resource
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        body  body      resourceRequest  true  "Resource, id required"
// @Success      200   {integer} int64
// @Failure      400   {object}  errorResponse
// @Failure      412   {object}  errorResponse
// @Router       /sys/resource [put]
func (h *ResourceHandler) Update(c echo.Context) error {
	var req resourceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.ID <= 0 {
		return domain.InvalidInput("id is required")
	}

	n, err := h.service.Modify(c.Request().Context(), toResource(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}

// @Summary      Delete a resource
// @Tags         resources
// @Produce      json
// @Param        id   path      int  true  "Resource id"
// @Success      200  {integer} int64
// @Failure      400  {object}  errorResponse
// @Router       /sys/resource/{id} [delete]
func (h *ResourceHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	n, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}

	h.metrics.RecordsDeleted(entityResource, n)
	return c.JSON(http.StatusOK, n)
}
