package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soundline/storefront/internal/cart"
	"github.com/soundline/storefront/internal/logging"
	"github.com/soundline/storefront/internal/middleware/session"
)

// CartHTTP exposes the explicit save/load boundary for the client-owned
// cart value. The stored cart never feeds order creation directly.
type CartHTTP struct {
	Store cart.Store
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_cart")

	userID, err := session.UserID(c)
	if err != nil {
		l.Warn("get_cart_error", "status", 401, "reason", "no session", "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	stored, err := h.Store.Load(ctx, userID)
	if err != nil {
		l.Error("get_cart_error", "status", 500, "reason", "cannot load cart", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot load cart")
	}

	return c.JSON(http.StatusOK, stored)
}

func (h *CartHTTP) PutCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.put_cart")

	userID, err := session.UserID(c)
	if err != nil {
		l.Warn("put_cart_error", "status", 401, "reason", "no session", "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var body cart.Cart
	if err := c.Bind(&body); err != nil {
		l.Warn("put_cart_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if body.Items == nil {
		body = cart.New()
	}

	if err := h.Store.Save(ctx, userID, body); err != nil {
		l.Error("put_cart_error", "status", 500, "reason", "cannot save cart", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot save cart")
	}

	return c.JSON(http.StatusOK, body)
}
