package httpserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	ProductHandler *ProductHTTP
	CartHandler    *CartHTTP
	AdminOnly      echo.MiddlewareFunc
	// Ready reports whether storage is reachable; nil means always ready.
	Ready func(ctx context.Context) error
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.Ready != nil {
			if err := d.Ready(c.Request().Context()); err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "storage unavailable")
			}
		}
		return c.NoContent(http.StatusOK)
	})

	products := e.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)

	products.POST("", d.ProductHandler.CreateProduct, d.AdminOnly)
	products.PUT("/:id", d.ProductHandler.UpdateProduct, d.AdminOnly)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct, d.AdminOnly)

	cart := e.Group("/cart")
	cart.GET("", d.CartHandler.GetCart)
	cart.GET("/:id", d.CartHandler.GetCartItem)
	cart.POST("", d.CartHandler.AddToCart)
	cart.PUT("/:id", d.CartHandler.UpdateCartItem)
	cart.DELETE("/:id", d.CartHandler.DeleteCartItem)
}
