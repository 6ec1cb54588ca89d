package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/soundline/storefront/internal/logging"
	"github.com/soundline/storefront/internal/service"
	"github.com/soundline/storefront/internal/transport"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("get_product_error", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	product, err := h.Svc.GetProduct(ctx, uint(id))
	if err != nil {
		l.Warn("get_product_error", "id", id, "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_products")

	f := transport.ProductFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Brand:    c.QueryParam("brand"),
		Sort:     c.QueryParam("sort"),
	}
	if v := c.QueryParam("minPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			l.Warn("get_products_error", "status", 400, "reason", "bad minPrice", "error", err)
			return c.JSON(http.StatusBadRequest, &transport.FieldError{Field: "minPrice", Message: "minPrice is not a number"})
		}
		f.MinPrice = &d
	}
	if v := c.QueryParam("maxPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			l.Warn("get_products_error", "status", 400, "reason", "bad maxPrice", "error", err)
			return c.JSON(http.StatusBadRequest, &transport.FieldError{Field: "maxPrice", Message: "maxPrice is not a number"})
		}
		f.MaxPrice = &d
	}

	items, err := h.Svc.ListProducts(ctx, f)
	if err != nil {
		l.Error("get_products_error", "status", 500, "reason", "cannot list products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list products")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.create_product")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Svc.CreateProduct(ctx, req)
	if err != nil {
		l.Warn("create_product_error", "error", err)
		return respondError(c, err)
	}

	l.Info("create_product_success", "product_id", product.ID)
	return c.JSON(http.StatusCreated, product)
}
