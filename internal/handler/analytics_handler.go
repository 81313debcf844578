package handler

import (
	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /analytics は管理者のみ
type AnalyticsHandler struct {
	uc  *usecase.AnalyticsUsecase
	cfg config.Config
}

// DI
func NewAnalyticsHandler(uc *usecase.AnalyticsUsecase, cfg config.Config) *AnalyticsHandler {
	return &AnalyticsHandler{
		uc:  uc,
		cfg: cfg,
	}
}

func (h *AnalyticsHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/analytics", middleware.AuthJWT(h.cfg), middleware.AdminRoleGuard())
	g.GET("/sales", h.sales)
	g.GET("/products", h.products)
	g.GET("/users", h.users)
}

func (h *AnalyticsHandler) sales(c echo.Context) error {
	out, err := h.uc.GetSales(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *AnalyticsHandler) products(c echo.Context) error {
	out, err := h.uc.GetProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *AnalyticsHandler) users(c echo.Context) error {
	out, err := h.uc.GetUsers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}
