package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"app/internal/domain/model"
	"app/internal/handler"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type userRepoMock struct{ mock.Mock }

func (m *userRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *userRepoMock) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *userRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *userRepoMock) List(ctx context.Context, q repo.UserListQuery) ([]model.User, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.User)
	return items, args.Error(1)
}

func (m *userRepoMock) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	args := m.Called(ctx, role)
	items, _ := args.Get(0).([]model.User)
	return items, args.Error(1)
}

func (m *userRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type cartRepoMock struct{ mock.Mock }

func (m *cartRepoMock) Create(ctx context.Context, c *model.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *cartRepoMock) FindByID(ctx context.Context, id string) (*model.Cart, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*model.Cart)
	return c, args.Error(1)
}

func (m *cartRepoMock) FindByUserAndProduct(ctx context.Context, userID string, productID string) (*model.Cart, error) {
	args := m.Called(ctx, userID, productID)
	c, _ := args.Get(0).(*model.Cart)
	return c, args.Error(1)
}

func (m *cartRepoMock) List(ctx context.Context, q repo.CartListQuery) ([]model.Cart, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Cart)
	return items, args.Error(1)
}

func (m *cartRepoMock) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *cartRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type productRepoMock struct{ mock.Mock }

func (m *productRepoMock) Create(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *productRepoMock) FindByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *productRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *productRepoMock) ListByStatus(ctx context.Context, status model.ProductStatus) ([]model.Product, error) {
	args := m.Called(ctx, status)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *productRepoMock) Save(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *productRepoMock) UpdateStatus(ctx context.Context, id string, status model.ProductStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *productRepoMock) UpdateImage(ctx context.Context, id string, url string) error {
	args := m.Called(ctx, id, url)
	return args.Error(0)
}

func serveList(t *testing.T, h handler.RouteRegistrar, target string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	h.RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// page未指定のGET /usersはページングせず全件を引く
func TestUserHandler_List_NoPageParamFetchesAll(t *testing.T) {
	uRepo := new(userRepoMock)
	h := handler.NewUserHandler(usecase.NewUserUsecase(uRepo), nil, nil)

	uRepo.On("List", mock.Anything, repo.UserListQuery{Search: "", Page: 0, Limit: 5}).Return([]model.User{
		{ID: "u1", Username: "taro"},
	}, nil)

	rec := serveList(t, h, "/users")
	assert.Equal(t, http.StatusOK, rec.Code)
	uRepo.AssertExpectations(t)
}

func TestUserHandler_List_PageParamPaginates(t *testing.T) {
	uRepo := new(userRepoMock)
	h := handler.NewUserHandler(usecase.NewUserUsecase(uRepo), nil, nil)

	uRepo.On("List", mock.Anything, repo.UserListQuery{Search: "", Page: 2, Limit: 5}).Return([]model.User{
		{ID: "u1", Username: "taro"},
	}, nil)

	rec := serveList(t, h, "/users?page=2")
	assert.Equal(t, http.StatusOK, rec.Code)
	uRepo.AssertExpectations(t)
}

// page未指定のGET /cartsも同様に全件
func TestCartHandler_List_NoPageParamFetchesAll(t *testing.T) {
	cRepo := new(cartRepoMock)
	h := handler.NewCartHandler(usecase.NewCartUsecase(cRepo, new(userRepoMock), new(productRepoMock)))

	cRepo.On("List", mock.Anything, repo.CartListQuery{Search: "", Page: 0}).Return([]model.Cart{
		{ID: "c1", UserID: "u1", ProductID: "p1", Quantity: 1},
	}, nil)

	rec := serveList(t, h, "/carts")
	assert.Equal(t, http.StatusOK, rec.Code)
	cRepo.AssertExpectations(t)
}

// 商品一覧はpage未指定でも1ページ目（5件固定）のまま
func TestProductHandler_List_DefaultsToFirstPage(t *testing.T) {
	pRepo := new(productRepoMock)
	h := handler.NewProductHandler(usecase.NewProductUsecase(pRepo, nil))

	pRepo.On("List", mock.Anything, repo.ProductListQuery{Search: "", Page: 1}).Return([]model.Product{
		{ID: "p1", Name: "Mug"},
	}, nil)

	rec := serveList(t, h, "/products")
	assert.Equal(t, http.StatusOK, rec.Code)
	pRepo.AssertExpectations(t)
}
