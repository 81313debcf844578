package middleware

import (
	"net/http"

	"app/internal/domain/model"

	"github.com/labstack/echo/v4"
)

//contextに入っているroleが管理者かどうかを確認します。

func AdminRoleGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawRole := c.Get(CtxUserRoleKey)
			role, ok := rawRole.(string)
			if !ok || role == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//CustomerはNG、AdminとSuper Adminだけ許可
			if role != string(model.RoleAdmin) && role != string(model.RoleSuperAdmin) {
				return c.JSON(http.StatusForbidden, errorJSON("admin only"))
			}

			return next(c)
		}
	}
}
