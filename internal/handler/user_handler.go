package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"
	auth "app/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

// /users の公開API。signup/loginもここに含む。
type UserHandler struct {
	uc       *usecase.UserUsecase
	signupUC *auth.SignupUsecase
	loginUC  *auth.LoginUsecase
}

// DI
func NewUserHandler(uc *usecase.UserUsecase, signupUC *auth.SignupUsecase, loginUC *auth.LoginUsecase) *UserHandler {
	return &UserHandler{
		uc:       uc,
		signupUC: signupUC,
		loginUC:  loginUC,
	}
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/users", h.signup)
	e.POST("/users/signup", h.signup)
	e.POST("/users/login", h.login)
	e.GET("/users", h.list)
	e.GET("/users/:id", h.detail)
	e.DELETE("/users/:id", h.remove)
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, usecase.Envelope{Message: "Invalid request body", Status: http.StatusBadRequest})
	}

	out, err := h.signupUC.Execute(c.Request().Context(), auth.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *UserHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, usecase.Envelope{Message: "Invalid request body", Status: http.StatusBadRequest})
	}

	out, err := h.loginUC.Execute(c.Request().Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(out.Status, out)
}

func (h *UserHandler) list(c echo.Context) error {
	// searchかページングのどちらか一方（searchが優先）。page未指定は全件。
	page := 0
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, usecase.Envelope{Message: "Invalid page", Status: http.StatusBadRequest})
		}
		page = p
	}

	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, usecase.Envelope{Message: "Invalid limit", Status: http.StatusBadRequest})
		}
		limit = l
	}

	out, err := h.uc.ListUsers(c.Request().Context(), usecase.ListUsersInput{
		Search: c.QueryParam("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *UserHandler) detail(c echo.Context) error {
	out, err := h.uc.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *UserHandler) remove(c echo.Context) error {
	out, err := h.uc.DeleteUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}
