package repository

import (
	"context"

	"app/internal/domain/model"
)

// searchは商品名の部分一致。ページサイズは5固定。
type CartListQuery struct {
	Search string
	Page   int
}

type CartRepository interface {
	Create(ctx context.Context, c *model.Cart) error
	// product, userをpreloadする。
	FindByID(ctx context.Context, id string) (*model.Cart, error)
	// (user, product)の既存行を取得。無ければErrNotFound。
	FindByUserAndProduct(ctx context.Context, userID string, productID string) (*model.Cart, error)
	List(ctx context.Context, q CartListQuery) ([]model.Cart, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	// 物理削除
	Delete(ctx context.Context, id string) error
}
