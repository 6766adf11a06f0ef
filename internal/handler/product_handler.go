package handler

import (
	"net/http"

	"shop/internal/domain/model"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// /product のHTTP。キーはUUID
type ProductHandler struct {
	crud *crudHandler[model.Product, uuid.UUID, usecase.ProductInput, usecase.ProductPatch]
}

// DI
func NewProductHandler(uc CRUDService[model.Product, uuid.UUID]) *ProductHandler {
	return &ProductHandler{
		crud: &crudHandler[model.Product, uuid.UUID, usecase.ProductInput, usecase.ProductPatch]{
			uc:       uc,
			parseKey: parseProductID,
		},
	}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/product")
	g.GET("", h.crud.list)
	g.POST("", h.crud.create)
	g.GET("/:id", h.crud.get)
	g.PUT("/:id", h.crud.update)
	g.DELETE("/:id", h.crud.delete)
}

// UUIDでなければその行は存在しないので404
func parseProductID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, usecase.NewHTTPError(http.StatusNotFound, "Record not found")
	}
	return id, nil
}
