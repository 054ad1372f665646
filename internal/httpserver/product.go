package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/shopping_cart/internal/logging"
	"github.com/Skotchmaster/shopping_cart/internal/service"
	"github.com/Skotchmaster/shopping_cart/internal/transport"
)

type ProductHTTP struct {
	Svc *service.ProductService
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	items, err := h.Svc.ListProducts(ctx)
	if err != nil {
		return serviceError(l, "get_products_error", err)
	}

	l.Info("get_products_success", "count", len(items))
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := parseID(c)
	if err != nil {
		l.Warn("get_product_error", "status", http.StatusBadRequest, "reason", "bad id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	prod, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		return serviceError(l, "get_product_error", err)
	}

	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req transport.ProductRequest
	if err := bindAndValidate(c, l, "create_product_error", &req); err != nil {
		return err
	}

	prod, err := h.Svc.CreateProduct(ctx, req.ToModel())
	if err != nil {
		return serviceError(l, "create_product_error", err)
	}

	l.Info("create_product_success", "product_id", prod.ID)
	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update_product")

	id, err := parseID(c)
	if err != nil {
		l.Warn("update_product_error", "status", http.StatusBadRequest, "reason", "bad id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req transport.ProductRequest
	if err := bindAndValidate(c, l, "update_product_error", &req); err != nil {
		return err
	}

	prod, err := h.Svc.UpdateProduct(ctx, id, req.ToModel())
	if err != nil {
		return serviceError(l, "update_product_error", err)
	}

	l.Info("update_product_success", "product_id", prod.ID)
	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id, err := parseID(c)
	if err != nil {
		l.Warn("delete_product_error", "status", http.StatusBadRequest, "reason", "bad id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	prod, err := h.Svc.DeleteProduct(ctx, id)
	if err != nil {
		return serviceError(l, "delete_product_error", err)
	}

	l.Info("delete_product_success", "product_id", prod.ID)
	return c.JSON(http.StatusOK, prod)
}
