package repository

import (
	"context"

	"app/internal/domain/model"
)

type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) error
	FindByID(ctx context.Context, id string) (*model.Category, error)
	// Activeのみ。searchはname部分一致。productsをpreloadする。
	ListActive(ctx context.Context, search string) ([]model.Category, error)
	Save(ctx context.Context, c *model.Category) error
	UpdateStatus(ctx context.Context, id string, status model.CategoryStatus) error
}
