package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// name部分一致＋ページサイズ5固定。statusフィルタは掛けない。
func (r *ProductGormRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	var products []model.Product

	tx := r.db.WithContext(ctx).Preload("Category")

	if q.Search != "" {
		tx = tx.Where("name LIKE ?", "%"+q.Search+"%")
	}

	offset := 0
	if q.Page > 0 {
		offset = (q.Page - 1) * 5
	}

	if err := tx.Offset(offset).Limit(5).Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

func (r *ProductGormRepository) ListByStatus(ctx context.Context, status model.ProductStatus) ([]model.Product, error) {
	var products []model.Product

	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

func (r *ProductGormRepository) Save(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProductGormRepository) UpdateStatus(ctx context.Context, id string, status model.ProductStatus) error {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", id).
		Update("status", status)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 画像URLだけを更新
func (r *ProductGormRepository) UpdateImage(ctx context.Context, id string, url string) error {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", id).
		Update("image", url)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
