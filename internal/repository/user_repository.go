package repository

import (
	"context"

	"app/internal/domain/model"
)

// 一覧はsearch（username部分一致）かページングのどちらか一方
type UserListQuery struct {
	Search string
	Page   int
	Limit  int
}

// ユーザーの永続化だけを約束
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	// IDで1件取得。cartをpreloadする。
	FindByID(ctx context.Context, id string) (*model.User, error)
	// emailで1件取得。見つからなければ(nil, nil)。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, q UserListQuery) ([]model.User, error)
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
	// 物理削除。0件更新はErrNotFound。
	Delete(ctx context.Context, id string) error
}
