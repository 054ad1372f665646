package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/shopping_cart/internal/models"
)

func (r *GormRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	items := make([]models.Product, 0)
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	if err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(prod).Error
	}); err != nil {
		return nil, err
	}
	return prod, nil
}

// UpdateProduct overwrites every column of an existing product.
func (r *GormRepo) UpdateProduct(ctx context.Context, id uint, data *models.Product) (*models.Product, error) {
	var prod models.Product
	if err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&prod, id).Error; err != nil {
			return err
		}

		prod.Name = data.Name
		prod.Category = data.Category
		prod.Price = data.Price
		prod.Images = data.Images

		return tx.Save(&prod).Error
	}); err != nil {
		return nil, err
	}
	return &prod, nil
}

// DeleteProduct removes the product together with its cart rows and returns
// what was deleted.
func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) (*models.Product, error) {
	var prod models.Product
	if err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&prod, id).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", prod.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&prod).Error
	}); err != nil {
		return nil, err
	}
	return &prod, nil
}
