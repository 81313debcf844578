package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// (user, product)につき1行。同一商品の追加は数量加算。
type Cart struct {
	ID        string   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string   `gorm:"type:uuid;not null;index" json:"user_id"`
	ProductID string   `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	User      *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
