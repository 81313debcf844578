package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks（衝突回避の命名）
// =====================

type ProdProductRepoMock struct{ mock.Mock }

func (m *ProdProductRepoMock) Create(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProdProductRepoMock) FindByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *ProdProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProdProductRepoMock) ListByStatus(ctx context.Context, status model.ProductStatus) ([]model.Product, error) {
	args := m.Called(ctx, status)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProdProductRepoMock) Save(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProdProductRepoMock) UpdateStatus(ctx context.Context, id string, status model.ProductStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *ProdProductRepoMock) UpdateImage(ctx context.Context, id string, url string) error {
	args := m.Called(ctx, id, url)
	return args.Error(0)
}

const prodID = "0b0f8f4e-9a1a-4a61-8a43-111111111111"

// =====================
// Create / Get
// =====================

func TestProductUsecase_CreateProduct_NameRequired(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProdProductRepoMock), nil)

	_, err := uc.CreateProduct(context.Background(), usecase.CreateProductInput{Name: "  "})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestProductUsecase_CreateProduct_DefaultStock(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo, nil)

	//在庫未指定は1で作る
	pRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
		return p.StockQuantity == 1
	})).Return(nil)

	out, err := uc.CreateProduct(context.Background(), usecase.CreateProductInput{Name: "Mug", Price: 500})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, out.Status)
	assert.Equal(t, "Product created successfully", out.Message)
	pRepo.AssertExpectations(t)
}

func TestProductUsecase_GetProduct_InvalidID(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProdProductRepoMock), nil)

	_, err := uc.GetProduct(context.Background(), "not-a-uuid")
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "Invalid product ID", he.Message)
}

func TestProductUsecase_GetProduct_NotFound(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo, nil)

	pRepo.On("FindByID", mock.Anything, prodID).Return(nil, repo.ErrNotFound)

	_, err := uc.GetProduct(context.Background(), prodID)
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
	assert.Equal(t, "Product not found", he.Message)
}

// =====================
// List（statusフィルタなし）
// =====================

func TestProductUsecase_ListProducts_IncludesDeleted(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo, nil)

	//Deletedの行もそのまま返る
	items := []model.Product{
		{ID: prodID, Name: "Old Mug", Status: model.ProductStatusDeleted},
	}
	pRepo.On("List", mock.Anything, repo.ProductListQuery{Search: "Mug", Page: 1}).Return(items, nil)

	out, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Search: "Mug", Page: 1})
	assert.NoError(t, err)
	assert.Equal(t, "Products retrieved successfully", out.Message)

	got, ok := out.Data.([]model.Product)
	assert.True(t, ok)
	assert.Len(t, got, 1)
	assert.Equal(t, model.ProductStatusDeleted, got[0].Status)
}

func TestProductUsecase_ListProducts_Empty(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo, nil)

	pRepo.On("List", mock.Anything, mock.Anything).Return([]model.Product{}, nil)

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Page: 1})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
	assert.Equal(t, "No products found", he.Message)
}

// =====================
// Status toggle / Delete
// =====================

func TestProductUsecase_ToggleProductStatus_RoundTrip(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo, nil)

	//Active→Inactive
	pRepo.On("FindByID", mock.Anything, prodID).Return(&model.Product{ID: prodID, Status: model.ProductStatusActive}, nil).Once()
	pRepo.On("UpdateStatus", mock.Anything, prodID, model.ProductStatusInactive).Return(nil).Once()

	out, err := uc.ToggleProductStatus(context.Background(), prodID)
	assert.NoError(t, err)
	assert.Equal(t, "Product status updated successfully to Inactive", out.Message)

	//Inactive→Active
	pRepo.On("FindByID", mock.Anything, prodID).Return(&model.Product{ID: prodID, Status: model.ProductStatusInactive}, nil).Once()
	pRepo.On("UpdateStatus", mock.Anything, prodID, model.ProductStatusActive).Return(nil).Once()

	out, err = uc.ToggleProductStatus(context.Background(), prodID)
	assert.NoError(t, err)
	assert.Equal(t, "Product status updated successfully to Active", out.Message)

	pRepo.AssertExpectations(t)
}

func TestProductUsecase_ToggleProductStatus_DeletedIsTerminal(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo, nil)

	pRepo.On("FindByID", mock.Anything, prodID).Return(&model.Product{ID: prodID, Status: model.ProductStatusDeleted}, nil)

	_, err := uc.ToggleProductStatus(context.Background(), prodID)
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	pRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductUsecase_DeleteProduct_SoftDelete(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo, nil)

	pRepo.On("FindByID", mock.Anything, prodID).Return(&model.Product{ID: prodID, Status: model.ProductStatusActive}, nil)
	pRepo.On("UpdateStatus", mock.Anything, prodID, model.ProductStatusDeleted).Return(nil)

	out, err := uc.DeleteProduct(context.Background(), prodID)
	assert.NoError(t, err)
	assert.Equal(t, "Product deleted successfully", out.Message)
	pRepo.AssertExpectations(t)
}

// =====================
// Image upload
// =====================

func TestProductUsecase_UploadProductImage_NotConfigured(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProdProductRepoMock), nil)

	_, err := uc.UploadProductImage(context.Background(), prodID, "mug.png", "image/png", nil)
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, he.Status)
	assert.Equal(t, "Image storage is not configured", he.Message)
}
