package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	uc *usecase.ReviewUsecase
}

// DI
func NewReviewHandler(uc *usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

func (h *ReviewHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/reviews", h.create)
	e.GET("/reviews", h.list)
	e.GET("/reviews/:id", h.detail)
	e.PATCH("/reviews/:id", h.update)
	e.DELETE("/reviews/:id", h.remove)
	e.GET("/reviews/product/:productId", h.byProduct)
	e.GET("/reviews/user/:userId", h.byUser)
}

type createReviewRequest struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

type updateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

func (h *ReviewHandler) create(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, usecase.Envelope{Message: "Invalid request body", Status: http.StatusBadRequest})
	}

	out, err := h.uc.CreateReview(c.Request().Context(), usecase.CreateReviewInput{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *ReviewHandler) list(c echo.Context) error {
	out, err := h.uc.ListReviews(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *ReviewHandler) detail(c echo.Context) error {
	out, err := h.uc.GetReview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *ReviewHandler) update(c echo.Context) error {
	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, usecase.Envelope{Message: "Invalid request body", Status: http.StatusBadRequest})
	}

	out, err := h.uc.UpdateReview(c.Request().Context(), c.Param("id"), usecase.UpdateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *ReviewHandler) remove(c echo.Context) error {
	out, err := h.uc.DeleteReview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *ReviewHandler) byProduct(c echo.Context) error {
	out, err := h.uc.ListProductReviews(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *ReviewHandler) byUser(c echo.Context) error {
	out, err := h.uc.ListUserReviews(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}
