package auth

import (
	"context"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"
)

// 会員登録の入力
type SignupInput struct {
	Username string
	Email    string
	Password string
	Role     string // 空ならCustomer
}

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

type SignupUsecase struct {
	userRepo repo.UserRepository
	hasher   PasswordHasher
}

// DI
func NewSignupUsecase(userRepo repo.UserRepository, hasher PasswordHasher) *SignupUsecase {
	return &SignupUsecase{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// 会員登録実行
func (u *SignupUsecase) Execute(ctx context.Context, in SignupInput) (usecase.Envelope, error) {
	if strings.TrimSpace(in.Username) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return usecase.Envelope{}, usecase.NewHTTPError(http.StatusBadRequest, "Username, email and password are required")
	}
	if !isValidEmailFormat(in.Email) {
		return usecase.Envelope{}, usecase.NewHTTPError(http.StatusBadRequest, "Invalid email format")
	}

	// email重複チェック
	existing, err := u.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return usecase.Envelope{}, usecase.NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if existing != nil {
		return usecase.Envelope{}, usecase.NewHTTPError(http.StatusBadRequest, "User already exists")
	}

	// 平文は保存しない
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return usecase.Envelope{}, usecase.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	role := model.RoleCustomer
	if in.Role != "" {
		role = model.Role(in.Role)
	}

	user := model.User{
		Username: strings.TrimSpace(in.Username),
		Email:    strings.TrimSpace(in.Email),
		Password: hashed,
		Role:     role,
	}

	if err := u.userRepo.Create(ctx, &user); err != nil {
		return usecase.Envelope{}, usecase.NewHTTPError(http.StatusBadRequest, "Failed to create user")
	}

	return usecase.Envelope{
		Message: "User created successfully",
		Data: map[string]string{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
		Status: http.StatusCreated,
	}, nil
}

func isValidEmailFormat(email string) bool {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return false
	}
	_, err := mail.ParseAddress(trimmed)
	return err == nil
}
