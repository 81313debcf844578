package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
)

type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
}

// DI
func NewCategoryUsecase(categoryRepo repo.CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo}
}

type CreateCategoryInput struct {
	Name        string
	Description string
}

type UpdateCategoryInput struct {
	Name        *string
	Description *string
}

func (u *CategoryUsecase) CreateCategory(ctx context.Context, in CreateCategoryInput) (Envelope, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Category name is required")
	}

	c := model.Category{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
	}

	if err := u.categoryRepo.Create(ctx, &c); err != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Category not created")
	}

	return Envelope{
		Message: "Category created successfully",
		Status:  http.StatusCreated,
		Success: true,
	}, nil
}

// 一覧はActiveのみ返す。
func (u *CategoryUsecase) ListCategories(ctx context.Context, search string) (Envelope, error) {
	categories, err := u.categoryRepo.ListActive(ctx, strings.TrimSpace(search))
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(categories) == 0 {
		return Envelope{}, NewHTTPError(http.StatusNotFound, "No categories found")
	}

	return Envelope{
		Message: "Categories fetched successfully",
		Data:    categories,
		Status:  http.StatusOK,
		Success: true,
	}, nil
}

func (u *CategoryUsecase) GetCategory(ctx context.Context, id string) (Envelope, error) {
	if uuid.Validate(id) != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid category ID")
	}

	c, err := u.categoryRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return Envelope{}, NewHTTPError(http.StatusNotFound, "Category not found")
	}
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return Envelope{
		Message: "Category fetched successfully",
		Data:    c,
		Status:  http.StatusOK,
		Success: true,
	}, nil
}

func (u *CategoryUsecase) UpdateCategory(ctx context.Context, id string, in UpdateCategoryInput) (Envelope, error) {
	if uuid.Validate(id) != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid category ID")
	}

	c, err := u.categoryRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return Envelope{}, NewHTTPError(http.StatusNotFound, "Category not found")
	}
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Description != nil {
		c.Description = *in.Description
	}

	if err := u.categoryRepo.Save(ctx, c); err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return Envelope{
		Message: "Category updated successfully",
		Status:  http.StatusOK,
		Success: true,
	}, nil
}

// Active⇄Inactiveの切り替え。Deletedはこの操作では戻せない。
func (u *CategoryUsecase) ToggleCategoryStatus(ctx context.Context, id string) (Envelope, error) {
	if uuid.Validate(id) != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid category ID")
	}

	c, err := u.categoryRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return Envelope{}, NewHTTPError(http.StatusNotFound, "Category not found")
	}
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if c.Status == model.CategoryStatusDeleted {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Cannot change status of deleted category")
	}

	next := model.CategoryStatusActive
	if c.Status == model.CategoryStatusActive {
		next = model.CategoryStatusInactive
	}

	if err := u.categoryRepo.UpdateStatus(ctx, id, next); err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return Envelope{
		Message: "Category status updated successfully to " + string(next),
		Status:  http.StatusOK,
		Success: true,
	}, nil
}

// 論理削除
func (u *CategoryUsecase) DeleteCategory(ctx context.Context, id string) (Envelope, error) {
	if uuid.Validate(id) != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid category ID")
	}

	_, err := u.categoryRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return Envelope{}, NewHTTPError(http.StatusNotFound, "Category not found")
	}
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.categoryRepo.UpdateStatus(ctx, id, model.CategoryStatusDeleted); err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return Envelope{
		Message: "Category deleted successfully",
		Status:  http.StatusOK,
		Success: true,
	}, nil
}
