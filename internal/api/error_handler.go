package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/locatepro/tracking-system/internal/core/domain"
)

// errorResponse is the JSON envelope every API error is rendered in.
type errorResponse struct {
	Error string `json:"error"`
}

// domainStatus pairs each sentinel domain error with its HTTP rendering.
var domainStatus = []struct {
	err  error
	code int
	msg  string
}{
	{domain.ErrShipmentNotFound, http.StatusNotFound, "shipment not found"},
	{domain.ErrDuplicateShipment, http.StatusConflict, "tracking id already exists"},
	{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
	{domain.ErrSettingsNotFound, http.StatusNotFound, "settings not found"},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
	{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
	{domain.ErrUserExists, http.StatusConflict, "user already exists"},
}

// NewHTTPErrorHandler renders every error as {"error": "<message>"}. Domain
// sentinels get their mapped status, echo's own errors pass through, and
// anything else is logged with its real cause and returned as a plain 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)})
			return
		}

		for _, m := range domainStatus {
			if errors.Is(err, m.err) {
				_ = c.JSON(m.code, errorResponse{Error: m.msg})
				return
			}
		}

		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")
		_ = c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
