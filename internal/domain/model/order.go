package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// totalAmountは呼び出し側の申告値。明細合計との照合はしない。
type Order struct {
	ID          string      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string      `gorm:"type:uuid;not null;index" json:"user_id"`
	TotalAmount float64     `gorm:"not null" json:"total_amount"`
	Status      OrderStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	OrderItems  []OrderItem `gorm:"foreignKey:OrderID" json:"order_items,omitempty"`
	User        *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt   time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
