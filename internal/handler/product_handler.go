package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/products", h.create)
	e.GET("/products", h.list)
	e.GET("/products/:id", h.detail)
	e.PATCH("/products/:id", h.update)
	e.PATCH("/products/status/:id", h.toggleStatus)
	e.DELETE("/products/:id", h.remove)
	e.POST("/products/:id/image", h.uploadImage)
}

type createProductRequest struct {
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Description   string  `json:"description"`
	Image         string  `json:"image"`
	StockQuantity int     `json:"stock_quantity"`
	CategoryID    string  `json:"category_id"`
}

type updateProductRequest struct {
	Name          *string  `json:"name"`
	Price         *float64 `json:"price"`
	Description   *string  `json:"description"`
	Image         *string  `json:"image"`
	StockQuantity *int     `json:"stock_quantity"`
	CategoryID    *string  `json:"category_id"`
}

func (h *ProductHandler) create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, usecase.Envelope{Message: "Invalid request body", Status: http.StatusBadRequest})
	}

	out, err := h.uc.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:          req.Name,
		Price:         req.Price,
		Description:   req.Description,
		Image:         req.Image,
		StockQuantity: req.StockQuantity,
		CategoryID:    req.CategoryID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *ProductHandler) list(c echo.Context) error {
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, usecase.Envelope{Message: "Invalid page", Status: http.StatusBadRequest})
		}
		page = p
	}

	out, err := h.uc.ListProducts(c.Request().Context(), usecase.ListProductsInput{
		Search: c.QueryParam("search"),
		Page:   page,
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	out, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *ProductHandler) update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, usecase.Envelope{Message: "Invalid request body", Status: http.StatusBadRequest})
	}

	out, err := h.uc.UpdateProduct(c.Request().Context(), c.Param("id"), usecase.UpdateProductInput{
		Name:          req.Name,
		Price:         req.Price,
		Description:   req.Description,
		Image:         req.Image,
		StockQuantity: req.StockQuantity,
		CategoryID:    req.CategoryID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *ProductHandler) toggleStatus(c echo.Context) error {
	out, err := h.uc.ToggleProductStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

func (h *ProductHandler) remove(c echo.Context) error {
	out, err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}

// multipart/form-data の "image" フィールドを受け取る
func (h *ProductHandler) uploadImage(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, usecase.Envelope{Message: "Image file is required", Status: http.StatusBadRequest})
	}

	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, usecase.Envelope{Message: "Failed to read image file", Status: http.StatusBadRequest})
	}
	defer f.Close()

	out, err := h.uc.UploadProductImage(
		c.Request().Context(),
		c.Param("id"),
		fh.Filename,
		fh.Header.Get("Content-Type"),
		f,
	)
	if err != nil {
		return writeError(c, err)
	}

	return writeEnvelope(c, out)
}
