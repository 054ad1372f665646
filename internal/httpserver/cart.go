package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/shopping_cart/internal/logging"
	"github.com/Skotchmaster/shopping_cart/internal/service"
	"github.com/Skotchmaster/shopping_cart/internal/transport"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_cart")

	items, err := h.Svc.ListCart(ctx)
	if err != nil {
		return serviceError(l, "get_cart_error", err)
	}

	l.Info("get_cart_success", "count", len(items))
	return c.JSON(http.StatusOK, items)
}

func (h *CartHTTP) GetCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_cart_item")

	id, err := parseID(c)
	if err != nil {
		l.Warn("get_cart_item_error", "status", http.StatusBadRequest, "reason", "bad id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.Svc.GetCartItem(ctx, id)
	if err != nil {
		return serviceError(l, "get_cart_item_error", err)
	}

	return c.JSON(http.StatusOK, item)
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_to_cart")

	var req transport.AddToCartRequest
	if err := bindAndValidate(c, l, "add_to_cart_error", &req); err != nil {
		return err
	}

	item, err := h.Svc.AddToCart(ctx, req.ProductID, req.QuantityOrDefault(service.DefaultQuantity))
	if err != nil {
		return serviceError(l, "add_to_cart_error", err)
	}

	l.Info("add_to_cart_success", "cart_id", item.ID, "product_id", item.ProductID, "quantity", item.Quantity)
	return c.JSON(http.StatusOK, item)
}

func (h *CartHTTP) UpdateCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update_cart_item")

	id, err := parseID(c)
	if err != nil {
		l.Warn("update_cart_item_error", "status", http.StatusBadRequest, "reason", "bad id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req transport.UpdateCartItemRequest
	if err := bindAndValidate(c, l, "update_cart_item_error", &req); err != nil {
		return err
	}

	item, err := h.Svc.UpdateCartItem(ctx, id, req.Quantity)
	if err != nil {
		return serviceError(l, "update_cart_item_error", err)
	}

	l.Info("update_cart_item_success", "cart_id", item.ID, "quantity", item.Quantity)
	return c.JSON(http.StatusOK, item)
}

func (h *CartHTTP) DeleteCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.delete_cart_item")

	id, err := parseID(c)
	if err != nil {
		l.Warn("delete_cart_item_error", "status", http.StatusBadRequest, "reason", "bad id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.Svc.DeleteCartItem(ctx, id)
	if err != nil {
		return serviceError(l, "delete_cart_item_error", err)
	}

	l.Info("delete_cart_item_success", "cart_id", item.ID)
	return c.JSON(http.StatusOK, item)
}
