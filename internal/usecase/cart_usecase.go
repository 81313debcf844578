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

type CartUsecase struct {
	cartRepo    repo.CartRepository
	userRepo    repo.UserRepository
	productRepo repo.ProductRepository
}

// DI
func NewCartUsecase(cartRepo repo.CartRepository, userRepo repo.UserRepository, productRepo repo.ProductRepository) *CartUsecase {
	return &CartUsecase{
		cartRepo:    cartRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

type AddToCartInput struct {
	UserID    string
	ProductID string
	Quantity  int
}

type ListCartsInput struct {
	Search string
	Page   int
}

// 同じ(user, product)の行があれば数量を加算、無ければ新規作成する。
func (u *CartUsecase) AddToCart(ctx context.Context, in AddToCartInput) (Envelope, error) {
	if uuid.Validate(in.UserID) != nil || uuid.Validate(in.ProductID) != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid user ID or product ID")
	}
	if in.Quantity <= 0 {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Quantity must be greater than 0")
	}

	if _, err := u.productRepo.FindByID(ctx, in.ProductID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return Envelope{}, NewHTTPError(http.StatusBadRequest, "Product not found")
		}
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if _, err := u.userRepo.FindByID(ctx, in.UserID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return Envelope{}, NewHTTPError(http.StatusBadRequest, "User not found")
		}
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	existing, err := u.cartRepo.FindByUserAndProduct(ctx, in.UserID, in.ProductID)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if existing != nil {
		//既存行に加算
		existing.Quantity += in.Quantity
		if err := u.cartRepo.UpdateQuantity(ctx, existing.ID, existing.Quantity); err != nil {
			return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return Envelope{
			Message: "Cart updated successfully",
			Data:    existing,
			Status:  http.StatusOK,
		}, nil
	}

	c := model.Cart{
		UserID:    in.UserID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
	}
	if err := u.cartRepo.Create(ctx, &c); err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return Envelope{
		Message: "Cart created successfully",
		Data:    &c,
		Status:  http.StatusCreated,
	}, nil
}

func (u *CartUsecase) ListCarts(ctx context.Context, in ListCartsInput) (Envelope, error) {
	carts, err := u.cartRepo.List(ctx, repo.CartListQuery{
		Search: strings.TrimSpace(in.Search),
		Page:   in.Page,
	})
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(carts) == 0 {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "No carts found")
	}

	return Envelope{
		Message: "Carts fetched successfully",
		Data:    carts,
		Status:  http.StatusOK,
	}, nil
}

func (u *CartUsecase) GetCart(ctx context.Context, id string) (Envelope, error) {
	if uuid.Validate(id) != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid cart ID")
	}

	c, err := u.cartRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Cart not found")
	}
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return Envelope{
		Message: "Cart fetched successfully",
		Data:    c,
		Status:  http.StatusOK,
	}, nil
}

// 数量の変更のみ
func (u *CartUsecase) UpdateCart(ctx context.Context, id string, quantity int) (Envelope, error) {
	if uuid.Validate(id) != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid cart ID")
	}
	if quantity <= 0 {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Quantity must be greater than 0")
	}

	c, err := u.cartRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Cart not found")
	}
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartRepo.UpdateQuantity(ctx, c.ID, quantity); err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	c.Quantity = quantity

	return Envelope{
		Message: "Cart updated successfully",
		Data:    c,
		Status:  http.StatusOK,
	}, nil
}

// 物理削除
func (u *CartUsecase) DeleteCart(ctx context.Context, id string) (Envelope, error) {
	if uuid.Validate(id) != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid cart ID")
	}

	err := u.cartRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Cart not found")
	}
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return Envelope{
		Message: "Cart deleted successfully",
		Status:  http.StatusOK,
	}, nil
}
