package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sysadmin/sysadmin-api/internal/api/metrics"
	"github.com/sysadmin/sysadmin-api/internal/core/domain"
)

const internalErrorMessage = "Internal Error"

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Translate maps err to a status code and response body. Unexpected errors
// expose their text only when devMode is set.
func Translate(err error, devMode bool) (int, errorResponse) {
	if de, ok := domain.AsError(err); ok {
		switch de.Kind {
		case domain.KindBusinessRule:
			return http.StatusPreconditionFailed, errorResponse{Code: de.Code, Message: de.Message}
		case domain.KindInvalidInput:
			return http.StatusBadRequest, errorResponse{Code: http.StatusBadRequest, Message: de.Message}
		case domain.KindNotFound:
			return http.StatusNotFound, errorResponse{Code: http.StatusNotFound, Message: de.Message}
		}
	}

	// Echo's own errors (bind failures, 404/405 from the router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
		return he.Code, errorResponse{Code: he.Code, Message: httpErrorMessage(he)}
	}

	msg := internalErrorMessage
	if devMode {
		msg = err.Error()
	}
	return http.StatusInternalServerError, errorResponse{Code: http.StatusInternalServerError, Message: msg}
}

func httpErrorMessage(he *echo.HTTPError) string {
	if s, ok := he.Message.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", he.Message)
}

func errorKind(err error) string {
	if _, ok := domain.AsError(err); ok {
		return domain.KindOf(err).String()
	}
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
		return "http"
	}
	return domain.KindInternal.String()
}

// NewHTTPErrorHandler returns the single echo.HTTPErrorHandler of the API.
// Unexpected errors are logged with the real cause; the client only sees it
// in development mode.
func NewHTTPErrorHandler(log zerolog.Logger, m *metrics.Metrics, devMode bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := Translate(err, devMode)
		m.ErrorResponse(errorKind(err))

		if status >= http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Msg("unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}
