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

const userID = "9c7e43a5-c22b-4edb-8487-999999999999"

func TestUserUsecase_ListUsers_DefaultLimit(t *testing.T) {
	uRepo := new(CartUserRepoMock)
	uc := usecase.NewUserUsecase(uRepo)

	//limit未指定は5
	uRepo.On("List", mock.Anything, repo.UserListQuery{Page: 1, Limit: 5}).Return([]model.User{
		{ID: userID, Username: "taro"},
	}, nil)

	out, err := uc.ListUsers(context.Background(), usecase.ListUsersInput{Page: 1})
	assert.NoError(t, err)
	assert.Equal(t, "Users fetched successfully", out.Message)
	uRepo.AssertExpectations(t)
}

func TestUserUsecase_ListUsers_Empty(t *testing.T) {
	uRepo := new(CartUserRepoMock)
	uc := usecase.NewUserUsecase(uRepo)

	uRepo.On("List", mock.Anything, mock.Anything).Return([]model.User{}, nil)

	_, err := uc.ListUsers(context.Background(), usecase.ListUsersInput{Page: 1})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "No users found", he.Message)
}

func TestUserUsecase_GetUser_NotFound(t *testing.T) {
	uRepo := new(CartUserRepoMock)
	uc := usecase.NewUserUsecase(uRepo)

	uRepo.On("FindByID", mock.Anything, userID).Return(nil, repo.ErrNotFound)

	_, err := uc.GetUser(context.Background(), userID)
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "User not found", he.Message)
}

func TestUserUsecase_GetUser_InvalidID(t *testing.T) {
	uc := usecase.NewUserUsecase(new(CartUserRepoMock))

	_, err := uc.GetUser(context.Background(), "abc")
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, "Invalid user ID", he.Message)
}

func TestUserUsecase_DeleteUser_NotFound(t *testing.T) {
	uRepo := new(CartUserRepoMock)
	uc := usecase.NewUserUsecase(uRepo)

	uRepo.On("Delete", mock.Anything, userID).Return(repo.ErrNotFound)

	_, err := uc.DeleteUser(context.Background(), userID)
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "User not found", he.Message)
}

func TestUserUsecase_DeleteUser_Success(t *testing.T) {
	uRepo := new(CartUserRepoMock)
	uc := usecase.NewUserUsecase(uRepo)

	uRepo.On("Delete", mock.Anything, userID).Return(nil)

	out, err := uc.DeleteUser(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, "User deleted successfully", out.Message)
}
