package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/shopping_cart/internal/models"
)

const DefaultQuantity = 1

type CartRepo interface {
	ListCart(ctx context.Context) ([]models.CartItem, error)
	GetCartItem(ctx context.Context, id uint) (*models.CartItem, error)
	AddToCart(ctx context.Context, productID uint, quantity int) (*models.CartItem, error)
	UpdateCartItem(ctx context.Context, id uint, quantity int) (*models.CartItem, error)
	DeleteCartItem(ctx context.Context, id uint) (*models.CartItem, error)
}

type CartService struct {
	Repo   CartRepo
	Events Publisher
}

func (s *CartService) ListCart(ctx context.Context) ([]models.CartItem, error) {
	return s.Repo.ListCart(ctx)
}

func (s *CartService) GetCartItem(ctx context.Context, id uint) (*models.CartItem, error) {
	item, err := s.Repo.GetCartItem(ctx, id)
	if err != nil {
		return nil, translate(err, "cart item")
	}
	return item, nil
}

func (s *CartService) AddToCart(ctx context.Context, productID uint, quantity int) (*models.CartItem, error) {
	if productID == 0 {
		return nil, fmt.Errorf("product_id is required: %w", ErrValidation)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be more than zero: %w", ErrValidation)
	}

	item, err := s.Repo.AddToCart(ctx, productID, quantity)
	if err != nil {
		return nil, translate(err, "product")
	}

	publish(ctx, s.Events, CartTopic, item.ID, map[string]any{
		"type":      "cart_item_added",
		"cartID":    item.ID,
		"productID": item.ProductID,
		"added":     quantity,
		"quantity":  item.Quantity,
	})
	return item, nil
}

func (s *CartService) UpdateCartItem(ctx context.Context, id uint, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be more than zero: %w", ErrValidation)
	}

	item, err := s.Repo.UpdateCartItem(ctx, id, quantity)
	if err != nil {
		return nil, translate(err, "cart item")
	}

	publish(ctx, s.Events, CartTopic, item.ID, map[string]any{
		"type":      "cart_item_updated",
		"cartID":    item.ID,
		"productID": item.ProductID,
		"quantity":  item.Quantity,
	})
	return item, nil
}

func (s *CartService) DeleteCartItem(ctx context.Context, id uint) (*models.CartItem, error) {
	item, err := s.Repo.DeleteCartItem(ctx, id)
	if err != nil {
		return nil, translate(err, "cart item")
	}

	publish(ctx, s.Events, CartTopic, item.ID, map[string]any{
		"type":      "cart_item_deleted",
		"cartID":    item.ID,
		"productID": item.ProductID,
	})
	return item, nil
}
