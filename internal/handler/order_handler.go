package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// GET /orders/:id はユーザーIDを受け取り、そのユーザーの注文一覧を返す。
func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", h.create)
	e.GET("/orders", h.list)
	e.GET("/orders/:id", h.userOrders)
	e.PATCH("/orders/:id", h.update)
	e.PATCH("/orders/:id/status", h.changeStatus)
	e.DELETE("/orders/:id", h.cancel)
}

type orderItemRequest struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type createOrderRequest struct {
	UserID      string             `json:"user_id"`
	TotalAmount float64            `json:"total_amount"`
	Items       []orderItemRequest `json:"items"`
}

type updateOrderRequest struct {
	TotalAmount *float64           `json:"total_amount"`
	Status      *string            `json:"status"`
	Items       []orderItemRequest `json:"items"`
}

type changeOrderStatusRequest struct {
	Status string `json:"status"`
}

func toItemInputs(items []orderItemRequest) []usecase.OrderItemInput {
	if items == nil {
		return nil
	}
	in := make([]usecase.OrderItemInput, 0, len(items))
	for _, item := range items {
		in = append(in, usecase.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return in
}

func (h *OrderHandler) create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, usecase.Envelope{Message: "Invalid request body", Status: http.StatusBadRequest})
	}

	out, err := h.uc.CreateOrder(c.Request().Context(), usecase.CreateOrderInput{
		UserID:      req.UserID,
		TotalAmount: req.TotalAmount,
		Items:       toItemInputs(req.Items),
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *OrderHandler) list(c echo.Context) error {
	out, err := h.uc.ListAllOrders(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *OrderHandler) userOrders(c echo.Context) error {
	out, err := h.uc.FindUserOrders(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *OrderHandler) update(c echo.Context) error {
	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, usecase.Envelope{Message: "Invalid request body", Status: http.StatusBadRequest})
	}

	out, err := h.uc.UpdateOrder(c.Request().Context(), c.Param("id"), usecase.UpdateOrderInput{
		TotalAmount: req.TotalAmount,
		Status:      req.Status,
		Items:       toItemInputs(req.Items),
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *OrderHandler) changeStatus(c echo.Context) error {
	var req changeOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, usecase.Envelope{Message: "Invalid request body", Status: http.StatusBadRequest})
	}

	out, err := h.uc.ChangeOrderStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *OrderHandler) cancel(c echo.Context) error {
	out, err := h.uc.CancelOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}
