package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryStatus string

const (
	CategoryStatusActive   CategoryStatus = "Active"
	CategoryStatusInactive CategoryStatus = "Inactive"
	CategoryStatusDeleted  CategoryStatus = "Deleted"
)

// 削除は物理削除ではなくstatus=Deleted
type Category struct {
	ID          string         `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Status      CategoryStatus `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	Products    []Product      `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
	CreatedAt   time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
