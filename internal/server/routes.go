package server

import (
	"github.com/labstack/echo/v4"
)

// Routes はechoにルートを登録できるhandler
type Routes interface {
	RegisterRoutes(e *echo.Echo)
}

func RegisterRoutes(e *echo.Echo, handlers ...Routes) {
	for _, h := range handlers {
		h.RegisterRoutes(e)
	}
}
