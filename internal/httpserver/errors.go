package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soundline/storefront/internal/service"
	"github.com/soundline/storefront/internal/transport"
)

// respondError translates service errors into the API error taxonomy.
// Validation failures answer 400 with {message, field}; anything
// unexpected surfaces as a generic 500.
func respondError(c echo.Context, err error) error {
	var fe *transport.FieldError
	if errors.As(err, &fe) {
		return c.JSON(http.StatusBadRequest, fe)
	}

	switch {
	case errors.Is(err, service.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	case errors.Is(err, service.ErrUnauthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	case errors.Is(err, service.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	case errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, "already exists")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
