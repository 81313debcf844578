package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "Active"
	ProductStatusInactive ProductStatus = "Inactive"
	ProductStatusDeleted  ProductStatus = "Deleted"
)

type Product struct {
	ID            string        `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string        `gorm:"type:varchar(255);not null" json:"name"`
	Price         float64       `gorm:"not null" json:"price"`
	Description   string        `gorm:"type:text" json:"description"`
	Image         string        `gorm:"type:text" json:"image"`
	Status        ProductStatus `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	StockQuantity int           `gorm:"not null;default:1" json:"stock_quantity"`
	CategoryID    string        `gorm:"type:uuid;index" json:"category_id"`
	Category      *Category     `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt     time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
