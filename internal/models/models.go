package models

type Product struct {
	ID       uint              `gorm:"primaryKey;autoIncrement"    json:"id"`
	Name     string            `gorm:"size:100;not null;index"     json:"name"`
	Category *string           `json:"category"`
	Price    float64           `gorm:"not null"                    json:"price"`
	Images   map[string]string `gorm:"serializer:json;type:text"   json:"images"`
}

// CartItem holds at most one row per product; ProductID is unique.
type CartItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"            json:"id"`
	ProductID uint    `gorm:"uniqueIndex;not null"                json:"product_id"`
	Quantity  int     `gorm:"not null;default:1;check:quantity>0" json:"quantity"`
	Product   Product `gorm:"constraint:OnDelete:CASCADE"         json:"product"`
}

func (CartItem) TableName() string {
	return "cart"
}

// All lists every model in migration order.
func All() []any {
	return []any{&Product{}, &CartItem{}}
}
