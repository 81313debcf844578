package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type UserGormRepository struct {
	db *gorm.DB
}

// DI
func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// IDでユーザーを1件取得。cartもまとめて返す。
func (r *UserGormRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User

	err := r.db.WithContext(ctx).
		Preload("Cart").
		Where("id = ?", id).
		First(&u).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// emailでユーザーを1件取得。見つからなければ(nil, nil)。
func (r *UserGormRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &u, nil
}

// searchがあればusername部分一致、無ければpage指定時のみページング。
func (r *UserGormRepository) List(ctx context.Context, q repo.UserListQuery) ([]model.User, error) {
	var users []model.User

	tx := r.db.WithContext(ctx).Preload("Cart")

	if q.Search != "" {
		tx = tx.Where("username LIKE ?", "%"+q.Search+"%")
	} else if q.Page > 0 {
		limit := q.Limit
		if limit <= 0 {
			limit = 5
		}
		tx = tx.Offset((q.Page - 1) * limit).Limit(limit)
	}

	if err := tx.Find(&users).Error; err != nil {
		return []model.User{}, err
	}
	return users, nil
}

func (r *UserGormRepository) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	var users []model.User

	if err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Find(&users).Error; err != nil {
		return []model.User{}, err
	}
	return users, nil
}

// 物理削除
func (r *UserGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
