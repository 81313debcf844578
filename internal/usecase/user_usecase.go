package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	repo "app/internal/repository"

	"github.com/google/uuid"
)

type UserUsecase struct {
	userRepo repo.UserRepository
}

// DI
func NewUserUsecase(userRepo repo.UserRepository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

type ListUsersInput struct {
	Search string
	Page   int
	Limit  int
}

func (u *UserUsecase) ListUsers(ctx context.Context, in ListUsersInput) (Envelope, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = 5
	}

	users, err := u.userRepo.List(ctx, repo.UserListQuery{
		Search: strings.TrimSpace(in.Search),
		Page:   in.Page,
		Limit:  limit,
	})
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(users) == 0 {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "No users found")
	}

	return Envelope{
		Message: "Users fetched successfully",
		Data:    users,
		Status:  http.StatusOK,
	}, nil
}

func (u *UserUsecase) GetUser(ctx context.Context, id string) (Envelope, error) {
	if uuid.Validate(id) != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	user, err := u.userRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "User not found")
	}
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return Envelope{
		Message: "User fetched successfully",
		Data:    user,
		Status:  http.StatusOK,
	}, nil
}

// 物理削除
func (u *UserUsecase) DeleteUser(ctx context.Context, id string) (Envelope, error) {
	if uuid.Validate(id) != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	err := u.userRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "User not found")
	}
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return Envelope{
		Message: "User deleted successfully",
		Status:  http.StatusOK,
	}, nil
}
