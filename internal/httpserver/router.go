package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soundline/storefront/internal/middleware/session"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	CatalogHandler *CatalogHTTP
	OrderHandler   *OrderHTTP
	ReviewHandler  *ReviewHTTP
	CartHandler    *CartHTTP
	SearchHandler  *SearchHTTP

	JWTSecret []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	api.POST("/register", d.AuthHandler.Register)
	api.POST("/login", d.AuthHandler.Login)
	api.POST("/logout", d.AuthHandler.Logout)

	requireLogin := session.RequireLogin(d.JWTSecret)

	products := api.Group("/products")
	products.GET("", d.CatalogHandler.GetProducts)
	products.GET("/:id", d.CatalogHandler.GetProduct)
	products.POST("", d.CatalogHandler.CreateProduct, requireLogin)
	products.GET("/:id/reviews", d.ReviewHandler.GetReviews)
	products.POST("/:id/reviews", d.ReviewHandler.CreateReview, requireLogin)

	orders := api.Group("/orders", requireLogin)
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("", d.OrderHandler.GetOrders)
	orders.GET("/:id", d.OrderHandler.GetOrder)

	if d.SearchHandler != nil && d.SearchHandler.Index.Enabled() {
		api.GET("/search", d.SearchHandler.Search)
	}

	if d.CartHandler != nil && d.CartHandler.Store != nil {
		carts := api.Group("/cart", requireLogin)
		carts.GET("", d.CartHandler.GetCart)
		carts.PUT("", d.CartHandler.PutCart)
	}
}
