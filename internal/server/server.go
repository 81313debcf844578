package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func New(handlers ...handler.RouteRegistrar) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	for _, h := range handlers {
		h.RegisterRoutes(e)
	}

	return e
}

func Start(addr string, handlers ...handler.RouteRegistrar) error {
	e := New(handlers...)
	return e.Start(addr)
}
