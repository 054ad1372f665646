package transport

import "github.com/Skotchmaster/shopping_cart/internal/models"

// ProductRequest is the body of POST /products and PUT /products/:id.
// PUT replaces every field; omitted optional fields are cleared.
type ProductRequest struct {
	Name     string            `json:"name"     validate:"required,max=100"`
	Category *string           `json:"category"`
	Price    *float64          `json:"price"    validate:"required"`
	Images   map[string]string `json:"images"`
}

func (r *ProductRequest) ToModel() *models.Product {
	p := &models.Product{
		Name:     r.Name,
		Category: r.Category,
		Images:   r.Images,
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	return p
}

type AddToCartRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  *int `json:"quantity"   validate:"omitempty,min=1"`
}

func (r *AddToCartRequest) QuantityOrDefault(def int) int {
	if r.Quantity == nil {
		return def
	}
	return *r.Quantity
}

// UpdateCartItemRequest carries product_id for symmetry with the add body;
// it is ignored.
type UpdateCartItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"   validate:"required,min=1"`
}
