package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type CategoryGormRepository struct {
	db *gorm.DB
}

// DI
func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{db: db}
}

func (r *CategoryGormRepository) Create(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CategoryGormRepository) FindByID(ctx context.Context, id string) (*model.Category, error) {
	var c model.Category

	err := r.db.WithContext(ctx).
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

// Activeのみ。検索の有無に関わらずDeleted/Inactiveは返さない。
func (r *CategoryGormRepository) ListActive(ctx context.Context, search string) ([]model.Category, error) {
	var categories []model.Category

	tx := r.db.WithContext(ctx).
		Preload("Products").
		Where("status = ?", model.CategoryStatusActive)

	if search != "" {
		tx = tx.Where("name LIKE ?", "%"+search+"%")
	}

	if err := tx.Find(&categories).Error; err != nil {
		return []model.Category{}, err
	}
	return categories, nil
}

func (r *CategoryGormRepository) Save(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CategoryGormRepository) UpdateStatus(ctx context.Context, id string, status model.CategoryStatus) error {
	res := r.db.WithContext(ctx).
		Model(&model.Category{}).
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
