package auth

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"
)

// handlerからusecaseに渡す入力
type LoginInput struct {
	Email    string
	Password string
}

// ログイン応答に載せるユーザー概要（passwordは返さない）
type LoginUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// handlerがJSONにして返す
type LoginOutput struct {
	Message     string    `json:"message"`
	Data        LoginUser `json:"data"`
	AccessToken string    `json:"access_token"`
	Status      int       `json:"status"`
}

// JWTを発行する約束
type TokenIssuer interface {
	Issue(userID string, role model.Role, now time.Time) (string, error)
}

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

type LoginUsecase struct {
	userRepo repo.UserRepository
	verifier PasswordVerifier
	issuer   TokenIssuer
	clock    Clock
}

// DI
func NewLoginUsecase(userRepo repo.UserRepository, verifier PasswordVerifier, issuer TokenIssuer, clock Clock) *LoginUsecase {
	return &LoginUsecase{
		userRepo: userRepo,
		verifier: verifier,
		issuer:   issuer,
		clock:    clock,
	}
}

// ログイン処理を実行する
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	var out LoginOutput

	//emailでユーザー取得
	user, err := u.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return out, usecase.NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user == nil {
		// 存在しないemailもパスワード違いと同じ応答にする
		return out, usecase.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	//パスワード照合
	if ok := u.verifier.Verify(in.Password, user.Password); !ok {
		return out, usecase.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	//AccessToken発行
	token, err := u.issuer.Issue(user.ID, user.Role, u.clock.Now())
	if err != nil {
		return out, usecase.NewHTTPError(http.StatusInternalServerError, "Failed to issue token")
	}

	out.Message = "Login successful"
	out.Data = LoginUser{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
	out.AccessToken = token
	out.Status = http.StatusOK
	return out, nil
}
