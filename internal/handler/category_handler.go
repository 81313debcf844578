package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	uc *usecase.CategoryUsecase
}

// DI
func NewCategoryHandler(uc *usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

func (h *CategoryHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/categories", h.create)
	e.GET("/categories", h.list)
	e.GET("/categories/:id", h.detail)
	e.PATCH("/categories/:id", h.update)
	e.PATCH("/categories/status/:id", h.toggleStatus)
	e.DELETE("/categories/:id", h.remove)
}

type createCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *CategoryHandler) create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, usecase.Envelope{Message: "Invalid request body", Status: http.StatusBadRequest})
	}

	out, err := h.uc.CreateCategory(c.Request().Context(), usecase.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *CategoryHandler) list(c echo.Context) error {
	out, err := h.uc.ListCategories(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *CategoryHandler) detail(c echo.Context) error {
	out, err := h.uc.GetCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *CategoryHandler) update(c echo.Context) error {
	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, usecase.Envelope{Message: "Invalid request body", Status: http.StatusBadRequest})
	}

	out, err := h.uc.UpdateCategory(c.Request().Context(), c.Param("id"), usecase.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *CategoryHandler) toggleStatus(c echo.Context) error {
	out, err := h.uc.ToggleCategoryStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *CategoryHandler) remove(c echo.Context) error {
	out, err := h.uc.DeleteCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}
