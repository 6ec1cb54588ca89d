package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/soundline/storefront/internal/logging"
	"github.com/soundline/storefront/internal/middleware/session"
	"github.com/soundline/storefront/internal/service"
	"github.com/soundline/storefront/internal/transport"
)

type AuthHTTP struct {
	Svc       *service.AuthService
	JWTSecret []byte
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Register(ctx, req)
	if err != nil {
		l.Warn("register_error", "username", req.Username, "error", err)
		return respondError(c, err)
	}

	token, exp, err := session.Sign(user.ID, user.Role, h.JWTSecret)
	if err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot sign session token", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot sign session token")
	}
	c.SetCookie(session.CreateCookie(token, exp))

	l.Info("register_success", "user_id", user.ID)
	return c.JSON(http.StatusCreated, user)
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Login(ctx, req)
	if err != nil {
		l.Warn("login_error", "username", req.Username, "error", err)
		return respondError(c, err)
	}

	token, exp, err := session.Sign(user.ID, user.Role, h.JWTSecret)
	if err != nil {
		l.Error("login_error", "status", 500, "reason", "cannot sign session token", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot sign session token")
	}
	c.SetCookie(session.CreateCookie(token, exp))

	l.Info("login_success", "user_id", user.ID)
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	c.SetCookie(session.CreateCookie("", time.Now().Add(-1*time.Hour)))
	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}
