package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

// DI
func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) Create(ctx context.Context, rv *model.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewGormRepository) FindByID(ctx context.Context, id string) (*model.Review, error) {
	var rv model.Review

	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Product").
		Where("id = ?", id).
		First(&rv).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

// 新しい順
func (r *ReviewGormRepository) ListAll(ctx context.Context) ([]model.Review, error) {
	var reviews []model.Review

	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Product").
		Order("created_at desc").
		Order("updated_at desc").
		Find(&reviews).Error; err != nil {
		return []model.Review{}, err
	}
	return reviews, nil
}

func (r *ReviewGormRepository) ListByProductID(ctx context.Context, productID string) ([]model.Review, error) {
	var reviews []model.Review

	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("product_id = ?", productID).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return []model.Review{}, err
	}
	return reviews, nil
}

func (r *ReviewGormRepository) ListByUserID(ctx context.Context, userID string) ([]model.Review, error) {
	var reviews []model.Review

	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return []model.Review{}, err
	}
	return reviews, nil
}

func (r *ReviewGormRepository) Save(ctx context.Context, rv *model.Review) error {
	return r.db.WithContext(ctx).Omit("User", "Product").Save(rv).Error
}

// 物理削除
func (r *ReviewGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Review{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
