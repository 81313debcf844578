package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

func (r *CartGormRepository) Create(ctx context.Context, c *model.Cart) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CartGormRepository) FindByID(ctx context.Context, id string) (*model.Cart, error) {
	var c model.Cart

	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("User").
		Where("id = ?", id).
		First(&c).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// (user, product)の既存行を取得
func (r *CartGormRepository) FindByUserAndProduct(ctx context.Context, userID string, productID string) (*model.Cart, error) {
	var c model.Cart

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&c).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// searchがあれば商品名部分一致、無ければpage指定時のみページング（5件固定）。
func (r *CartGormRepository) List(ctx context.Context, q repo.CartListQuery) ([]model.Cart, error) {
	var carts []model.Cart

	tx := r.db.WithContext(ctx).
		Preload("Product").
		Preload("User")

	if q.Search != "" {
		tx = tx.
			Joins("JOIN products ON products.id = carts.product_id").
			Where("products.name LIKE ?", "%"+q.Search+"%")
	} else if q.Page > 0 {
		tx = tx.Offset((q.Page - 1) * 5).Limit(5)
	}

	if err := tx.Find(&carts).Error; err != nil {
		return []model.Cart{}, err
	}
	return carts, nil
}

func (r *CartGormRepository) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	res := r.db.WithContext(ctx).
		Model(&model.Cart{}).
		Where("id = ?", id).
		Update("quantity", quantity)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 物理削除
func (r *CartGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Cart{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
