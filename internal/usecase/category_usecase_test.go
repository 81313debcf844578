package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) Create(ctx context.Context, c *model.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CategoryRepoMock) FindByID(ctx context.Context, id string) (*model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*model.Category)
	return c, args.Error(1)
}

func (m *CategoryRepoMock) ListActive(ctx context.Context, search string) ([]model.Category, error) {
	args := m.Called(ctx, search)
	items, _ := args.Get(0).([]model.Category)
	return items, args.Error(1)
}

func (m *CategoryRepoMock) Save(ctx context.Context, c *model.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CategoryRepoMock) UpdateStatus(ctx context.Context, id string, status model.CategoryStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

const categoryID = "bc9065c7-e44d-40fd-a6a9-bbbbbbbbbbbb"

func TestCategoryUsecase_ListCategories_Empty(t *testing.T) {
	cRepo := new(CategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo)

	cRepo.On("ListActive", mock.Anything, "").Return([]model.Category{}, nil)

	_, err := uc.ListCategories(context.Background(), "")
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
	assert.Equal(t, "No categories found", he.Message)
}

func TestCategoryUsecase_ToggleCategoryStatus_RoundTrip(t *testing.T) {
	cRepo := new(CategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo)

	cRepo.On("FindByID", mock.Anything, categoryID).Return(&model.Category{ID: categoryID, Status: model.CategoryStatusActive}, nil).Once()
	cRepo.On("UpdateStatus", mock.Anything, categoryID, model.CategoryStatusInactive).Return(nil).Once()

	out, err := uc.ToggleCategoryStatus(context.Background(), categoryID)
	assert.NoError(t, err)
	assert.Equal(t, "Category status updated successfully to Inactive", out.Message)

	cRepo.On("FindByID", mock.Anything, categoryID).Return(&model.Category{ID: categoryID, Status: model.CategoryStatusInactive}, nil).Once()
	cRepo.On("UpdateStatus", mock.Anything, categoryID, model.CategoryStatusActive).Return(nil).Once()

	out, err = uc.ToggleCategoryStatus(context.Background(), categoryID)
	assert.NoError(t, err)
	assert.Equal(t, "Category status updated successfully to Active", out.Message)

	cRepo.AssertExpectations(t)
}

func TestCategoryUsecase_ToggleCategoryStatus_DeletedIsTerminal(t *testing.T) {
	cRepo := new(CategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo)

	cRepo.On("FindByID", mock.Anything, categoryID).Return(&model.Category{ID: categoryID, Status: model.CategoryStatusDeleted}, nil)

	_, err := uc.ToggleCategoryStatus(context.Background(), categoryID)
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	cRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCategoryUsecase_DeleteCategory_SoftDelete(t *testing.T) {
	cRepo := new(CategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo)

	cRepo.On("FindByID", mock.Anything, categoryID).Return(&model.Category{ID: categoryID, Status: model.CategoryStatusActive}, nil)
	cRepo.On("UpdateStatus", mock.Anything, categoryID, model.CategoryStatusDeleted).Return(nil)

	out, err := uc.DeleteCategory(context.Background(), categoryID)
	assert.NoError(t, err)
	assert.Equal(t, "Category deleted successfully", out.Message)
	cRepo.AssertExpectations(t)
}

func TestCategoryUsecase_CreateCategory_NameRequired(t *testing.T) {
	uc := usecase.NewCategoryUsecase(new(CategoryRepoMock))

	_, err := uc.CreateCategory(context.Background(), usecase.CreateCategoryInput{Name: " "})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}
