package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, items []model.OrderItem) error
	// 注文の明細を全削除（明細入れ替え用）
	DeleteByOrderID(ctx context.Context, orderID string) error
	ListAll(ctx context.Context) ([]model.OrderItem, error)
}
