package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/shopping_cart/internal/models"
)

func (r *GormRepo) ListCart(ctx context.Context) ([]models.CartItem, error) {
	items := make([]models.CartItem, 0)
	if err := r.DB.WithContext(ctx).Preload("Product").Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetCartItem(ctx context.Context, id uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.DB.WithContext(ctx).Preload("Product").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// AddToCart inserts a row for productID or, if one exists, adds quantity to
// it. The upsert runs against the unique index on product_id, so concurrent
// adds for the same product never produce two rows.
func (r *GormRepo) AddToCart(ctx context.Context, productID uint, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var prod models.Product
		if err := tx.Select("id").First(&prod, productID).Error; err != nil {
			return err
		}

		row := models.CartItem{ProductID: productID, Quantity: quantity}
		if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr("cart.quantity + excluded.quantity"),
			}),
		}).Create(&row).Error; err != nil {
			return err
		}

		return tx.Preload("Product").Where("product_id = ?", productID).First(&item).Error
	}); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) UpdateCartItem(ctx context.Context, id uint, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CartItem{}).Where("id = ?", id).Update("quantity", quantity)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Preload("Product").First(&item, id).Error
	}); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) DeleteCartItem(ctx context.Context, id uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Product").First(&item, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.CartItem{}, item.ID).Error
	}); err != nil {
		return nil, err
	}
	return &item, nil
}
