package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// priceは注文時点のスナップショット。後の商品価格変更に影響されない。
type OrderItem struct {
	ID        string   `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID   string   `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID string   `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	Price     float64  `gorm:"not null" json:"price"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
