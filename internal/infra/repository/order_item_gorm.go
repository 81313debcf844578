package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type OrderItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderItemGormRepository(db *gorm.DB) *OrderItemGormRepository {
	return &OrderItemGormRepository{db: db}
}

// 明細を一括作成
func (r *OrderItemGormRepository) CreateBulk(ctx context.Context, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

// 注文の明細を全削除（入れ替え用）。0件でもエラーにしない。
func (r *OrderItemGormRepository) DeleteByOrderID(ctx context.Context, orderID string) error {
	return r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&model.OrderItem{}).Error
}

func (r *OrderItemGormRepository) ListAll(ctx context.Context) ([]model.OrderItem, error) {
	var items []model.OrderItem

	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return []model.OrderItem{}, err
	}
	return items, nil
}
