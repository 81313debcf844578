package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// 集計テーブルの置き場。実際の集計は毎回クエリで計算する。
type Analytics struct {
	ID   string         `gorm:"type:uuid;primaryKey" json:"id"`
	Date datatypes.Date `gorm:"not null" json:"date"`
}

func (a *Analytics) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
