package http

import (
	"errors"
	"fmt"
	"net/http"

	"kitchen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "internal server error"

// Error kinds used as the metrics label.
const (
	kindValidation = "validation"
	kindNotFound   = "not_found"
	kindInternal   = "internal"
)

// classify maps an error of the core onto an HTTP status.
// Store failures and anything unexpected become 500 and keep their details
// out of the response body.
func classify(err error) (status int, kind string, message string) {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest, kindValidation, err.Error()
	case errs.IsNotFound(err):
		return http.StatusNotFound, kindNotFound, err.Error()
	default:
		return http.StatusInternalServerError, kindInternal, internalErrorMessage
	}
}

func kindOf(status int) string {
	switch {
	case status == http.StatusNotFound:
		return kindNotFound
	case status >= http.StatusInternalServerError:
		return kindInternal
	default:
		return kindValidation
	}
}

// fail writes the error payload for err and records it.
func (s *Server) fail(c echo.Context, err error) error {
	status, kind, message := classify(err)
	s.metrics.APIError(kind)

	ctx := c.Request().Context()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx, "request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
	} else {
		s.logger.InfoContext(ctx, "request rejected",
			"method", c.Request().Method, "path", c.Path(), "status", status, "error", err)
	}

	return c.JSON(status, ErrorResponse{Error: message})
}

// handleHTTPError renders errors raised by echo itself (unknown routes,
// wrong methods, panics) in the same payload as the API errors.
func (s *Server) handleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := internalErrorMessage
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if status < http.StatusInternalServerError {
			message = fmt.Sprint(he.Message)
		}
	}

	s.metrics.APIError(kindOf(status))
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "unhandled error",
			"method", c.Request().Method, "uri", c.Request().RequestURI, "error", err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, ErrorResponse{Error: message})
}

// bodyError turns a bind failure into a validation error.
func bodyError(err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return errs.NewValueIsInvalidErrorWithCause("request body", fmt.Errorf("%v", he.Message))
	}
	return errs.NewValueIsInvalidErrorWithCause("request body", err)
}
