package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一覧検索。ページサイズは5固定。
type ProductListQuery struct {
	Search string
	Page   int
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	// categoryをpreload。statusフィルタは掛けない（現行仕様）。
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	ListByStatus(ctx context.Context, status model.ProductStatus) ([]model.Product, error)
	Save(ctx context.Context, p *model.Product) error
	UpdateStatus(ctx context.Context, id string, status model.ProductStatus) error
	UpdateImage(ctx context.Context, id string, url string) error
}
