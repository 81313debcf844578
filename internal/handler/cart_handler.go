package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/carts", h.add)
	e.GET("/carts", h.list)
	e.GET("/carts/:id", h.detail)
	e.PATCH("/carts/:id", h.update)
	e.DELETE("/carts/:id", h.remove)
}

type addToCartRequest struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type updateCartRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) add(c echo.Context) error {
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, usecase.Envelope{Message: "Invalid request body", Status: http.StatusBadRequest})
	}

	out, err := h.uc.AddToCart(c.Request().Context(), usecase.AddToCartInput{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *CartHandler) list(c echo.Context) error {
	// page未指定は全件
	page := 0
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, usecase.Envelope{Message: "Invalid page", Status: http.StatusBadRequest})
		}
		page = p
	}

	out, err := h.uc.ListCarts(c.Request().Context(), usecase.ListCartsInput{
		Search: c.QueryParam("search"),
		Page:   page,
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *CartHandler) detail(c echo.Context) error {
	out, err := h.uc.GetCart(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *CartHandler) update(c echo.Context) error {
	var req updateCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, usecase.Envelope{Message: "Invalid request body", Status: http.StatusBadRequest})
	}

	out, err := h.uc.UpdateCart(c.Request().Context(), c.Param("id"), req.Quantity)
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *CartHandler) remove(c echo.Context) error {
	out, err := h.uc.DeleteCart(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}
