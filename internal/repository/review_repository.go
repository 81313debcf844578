package repository

import (
	"context"

	"app/internal/domain/model"
)

type ReviewRepository interface {
	Create(ctx context.Context, r *model.Review) error
	// user, productをpreloadする。
	FindByID(ctx context.Context, id string) (*model.Review, error)
	ListAll(ctx context.Context) ([]model.Review, error)
	ListByProductID(ctx context.Context, productID string) ([]model.Review, error)
	ListByUserID(ctx context.Context, userID string) ([]model.Review, error)
	Save(ctx context.Context, r *model.Review) error
	// 物理削除
	Delete(ctx context.Context, id string) error
}
