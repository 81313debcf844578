package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 各ハンドラが自分のルートを登録する
type RouteRegistrar interface {
	RegisterRoutes(e *echo.Echo)
}

// エラーも成功と同じ封筒 {message, status} で返す
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, usecase.Envelope{
			Message: he.Message,
			Status:  he.Status,
		})
	}

	//500
	return c.JSON(http.StatusInternalServerError, usecase.Envelope{
		Message: "Internal server error",
		Status:  http.StatusInternalServerError,
	})
}

func writeEnvelope(c echo.Context, out usecase.Envelope) error {
	return c.JSON(out.Status, out)
}
