package handler

import (
	"shop/internal/domain/model"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /allergy のHTTP。キーはname
type AllergyHandler struct {
	crud *crudHandler[model.Allergy, string, usecase.AllergyInput, usecase.AllergyPatch]
}

// DI
func NewAllergyHandler(uc CRUDService[model.Allergy, string]) *AllergyHandler {
	return &AllergyHandler{
		crud: &crudHandler[model.Allergy, string, usecase.AllergyInput, usecase.AllergyPatch]{
			uc:       uc,
			parseKey: func(s string) (string, error) { return s, nil },
		},
	}
}

func (h *AllergyHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/allergy")
	g.GET("", h.crud.list)
	g.POST("", h.crud.create)
	g.GET("/:id", h.crud.get)
	g.PUT("/:id", h.crud.update)
	g.DELETE("/:id", h.crud.delete)
}
