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

type ReviewHTTP struct {
	Svc *service.ReviewService
}

func (h *ReviewHTTP) GetReviews(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "review.get_reviews")

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("get_reviews_error", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	reviews, err := h.Svc.ListReviews(ctx, uint(productID))
	if err != nil {
		l.Error("get_reviews_error", "status", 500, "reason", "cannot list reviews", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list reviews")
	}

	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHTTP) CreateReview(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "review.create_review")

	userID, err := session.UserID(c)
	if err != nil {
		l.Warn("create_review_error", "status", 401, "reason", "no session", "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("create_review_error", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	var req transport.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_review_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	review, err := h.Svc.CreateReview(ctx, userID, uint(productID), req)
	if err != nil {
		l.Warn("create_review_error", "product_id", productID, "user_id", userID, "error", err)
		return respondError(c, err)
	}

	l.Info("create_review_success", "review_id", review.ID)
	return c.JSON(http.StatusCreated, review)
}
