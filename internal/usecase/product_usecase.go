package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// Envelopeは全レスポンス共通の形 {message, data?, status, success?}
type Envelope struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Status  int         `json:"status"`
	Success bool        `json:"success,omitempty"`
}

// 商品画像の保存先（S3）の約束
type ImageUploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type ProductUsecase struct {
	productRepo repo.ProductRepository
	uploader    ImageUploader // nilなら画像アップロード無効
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, uploader ImageUploader) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		uploader:    uploader,
	}
}

type CreateProductInput struct {
	Name          string
	Price         float64
	Description   string
	Image         string
	StockQuantity int
	CategoryID    string
}

type UpdateProductInput struct {
	Name          *string
	Price         *float64
	Description   *string
	Image         *string
	StockQuantity *int
	CategoryID    *string
}

type ListProductsInput struct {
	Search string
	Page   int
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (Envelope, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Product name is required")
	}
	if in.Price < 0 {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Price must be >= 0")
	}
	if in.CategoryID != "" && uuid.Validate(in.CategoryID) != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid category ID")
	}

	p := model.Product{
		Name:          strings.TrimSpace(in.Name),
		Price:         in.Price,
		Description:   in.Description,
		Image:         in.Image,
		StockQuantity: in.StockQuantity,
		CategoryID:    in.CategoryID,
	}
	if p.StockQuantity == 0 {
		p.StockQuantity = 1
	}

	if err := u.productRepo.Create(ctx, &p); err != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Product not created")
	}

	return Envelope{
		Message: "Product created successfully",
		Status:  http.StatusCreated,
		Success: true,
	}, nil
}

// statusフィルタは掛けない（Deletedも一覧に残る現行挙動）。
func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) (Envelope, error) {
	products, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Search: strings.TrimSpace(in.Search),
		Page:   in.Page,
	})
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(products) == 0 {
		return Envelope{}, NewHTTPError(http.StatusNotFound, "No products found")
	}

	return Envelope{
		Message: "Products retrieved successfully",
		Data:    products,
		Status:  http.StatusOK,
		Success: true,
	}, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, id string) (Envelope, error) {
	if uuid.Validate(id) != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid product ID")
	}

	p, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return Envelope{}, NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return Envelope{
		Message: "Product fetched successfully",
		Data:    p,
		Status:  http.StatusOK,
		Success: true,
	}, nil
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, id string, in UpdateProductInput) (Envelope, error) {
	if uuid.Validate(id) != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid product ID")
	}

	p, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return Envelope{}, NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//指定されたフィールドだけ上書き
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.StockQuantity != nil {
		p.StockQuantity = *in.StockQuantity
	}
	if in.CategoryID != nil {
		if uuid.Validate(*in.CategoryID) != nil {
			return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid category ID")
		}
		p.CategoryID = *in.CategoryID
	}

	if err := u.productRepo.Save(ctx, p); err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return Envelope{
		Message: "Product updated successfully",
		Status:  http.StatusOK,
		Success: true,
	}, nil
}

// Active⇄Inactiveの切り替え。Deletedはこの操作では戻せない。
func (u *ProductUsecase) ToggleProductStatus(ctx context.Context, id string) (Envelope, error) {
	if uuid.Validate(id) != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid product ID")
	}

	p, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return Envelope{}, NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if p.Status == model.ProductStatusDeleted {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Cannot change status of deleted product")
	}

	next := model.ProductStatusActive
	if p.Status == model.ProductStatusActive {
		next = model.ProductStatusInactive
	}

	if err := u.productRepo.UpdateStatus(ctx, id, next); err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return Envelope{
		Message: "Product status updated successfully to " + string(next),
		Status:  http.StatusOK,
		Success: true,
	}, nil
}

// 論理削除。行は残してstatus=Deletedにする。
func (u *ProductUsecase) DeleteProduct(ctx context.Context, id string) (Envelope, error) {
	if uuid.Validate(id) != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid product ID")
	}

	_, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return Envelope{}, NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.productRepo.UpdateStatus(ctx, id, model.ProductStatusDeleted); err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return Envelope{
		Message: "Product deleted successfully",
		Status:  http.StatusOK,
		Success: true,
	}, nil
}

// S3にアップロードしてURLをproducts.imageへ保存
func (u *ProductUsecase) UploadProductImage(ctx context.Context, id string, filename string, contentType string, body io.Reader) (Envelope, error) {
	if uuid.Validate(id) != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid product ID")
	}
	if u.uploader == nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "Image storage is not configured")
	}

	_, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return Envelope{}, NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//上書き防止にキーへ時刻を混ぜる
	key := fmt.Sprintf("%s-%s-%s", id, time.Now().Format("20060102150405"), filename)

	url, err := u.uploader.Upload(ctx, key, body, contentType)
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "Failed to upload image")
	}

	if err := u.productRepo.UpdateImage(ctx, id, url); err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return Envelope{
		Message: "Product image uploaded successfully",
		Data:    map[string]string{"image": url},
		Status:  http.StatusOK,
		Success: true,
	}, nil
}
