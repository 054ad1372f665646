package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/shopping_cart/internal/models"
)

type ProductRepo interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uint, data *models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uint) (*models.Product, error)
}

type ProductService struct {
	Repo   ProductRepo
	Events Publisher
}

func validateProduct(p *models.Product) error {
	if p.Name == "" {
		return fmt.Errorf("name must not be empty: %w", ErrValidation)
	}
	return nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx)
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	prod, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, translate(err, "product")
	}
	return prod, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	if err := validateProduct(prod); err != nil {
		return nil, err
	}

	created, err := s.Repo.CreateProduct(ctx, prod)
	if err != nil {
		return nil, translate(err, "product")
	}

	publish(ctx, s.Events, ProductTopic, created.ID, map[string]any{
		"type":      "product_created",
		"productID": created.ID,
		"name":      created.Name,
	})
	return created, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint, data *models.Product) (*models.Product, error) {
	if err := validateProduct(data); err != nil {
		return nil, err
	}

	prod, err := s.Repo.UpdateProduct(ctx, id, data)
	if err != nil {
		return nil, translate(err, "product")
	}

	publish(ctx, s.Events, ProductTopic, prod.ID, map[string]any{
		"type":      "product_updated",
		"productID": prod.ID,
		"name":      prod.Name,
	})
	return prod, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint) (*models.Product, error) {
	prod, err := s.Repo.DeleteProduct(ctx, id)
	if err != nil {
		return nil, translate(err, "product")
	}

	publish(ctx, s.Events, ProductTopic, prod.ID, map[string]any{
		"type":      "product_deleted",
		"productID": prod.ID,
	})
	return prod, nil
}
