package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	// orderItems.product, userをpreloadし、新しい順に返す。
	ListAll(ctx context.Context) ([]model.Order, error)
	ListByUserID(ctx context.Context, userID string) ([]model.Order, error)
	// 集計用。preloadなし。
	ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	Save(ctx context.Context, o *model.Order) error
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error
}
