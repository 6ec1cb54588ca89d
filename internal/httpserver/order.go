package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/soundline/storefront/internal/logging"
	"github.com/soundline/storefront/internal/middleware/session"
	"github.com/soundline/storefront/internal/service"
	"github.com/soundline/storefront/internal/transport"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	userID, err := session.UserID(c)
	if err != nil {
		l.Warn("create_order_error", "status", 401, "reason", "no session", "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.CreateOrder(ctx, userID, req)
	if err != nil {
		l.Warn("create_order_error", "user_id", userID, "error", err)
		return respondError(c, err)
	}

	l.Info("create_order_success", "order_id", order.ID, "user_id", userID, "total", order.TotalAmount.String())
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_orders")

	userID, err := session.UserID(c)
	if err != nil {
		l.Warn("get_orders_error", "status", 401, "reason", "no session", "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	orders, err := h.Svc.ListOrders(ctx, userID)
	if err != nil {
		l.Error("get_orders_error", "status", 500, "reason", "cannot list orders", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list orders")
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_order")

	userID, err := session.UserID(c)
	if err != nil {
		l.Warn("get_order_error", "status", 401, "reason", "no session", "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("get_order_error", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	order, err := h.Svc.GetOrder(ctx, userID, uint(id))
	if err != nil {
		l.Warn("get_order_error", "order_id", id, "user_id", userID, "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, order)
}
