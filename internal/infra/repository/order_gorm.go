package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderGormRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	var o model.Order

	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Where("id = ?", id).
		First(&o).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// 全注文を新しい順に。明細・商品・ユーザーをpreload。
func (r *OrderGormRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order

	if err := r.db.WithContext(ctx).
		Preload("OrderItems.Product").
		Preload("OrderItems").
		Preload("User").
		Order("created_at desc").
		Order("updated_at desc").
		Find(&orders).Error; err != nil {
		return []model.Order{}, err
	}
	return orders, nil
}

func (r *OrderGormRepository) ListByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	var orders []model.Order

	if err := r.db.WithContext(ctx).
		Preload("OrderItems.Product").
		Preload("OrderItems").
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Order("updated_at desc").
		Find(&orders).Error; err != nil {
		return []model.Order{}, err
	}
	return orders, nil
}

// 集計用。preloadなし。
func (r *OrderGormRepository) ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	var orders []model.Order

	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Find(&orders).Error; err != nil {
		return []model.Order{}, err
	}
	return orders, nil
}

func (r *OrderGormRepository) Save(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Omit("OrderItems", "User").Save(o).Error
}

func (r *OrderGormRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	res := r.db.WithContext(ctx).
		Model(&model.Order{}).
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
