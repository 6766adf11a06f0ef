package handler

import (
	"context"
	"net/http"
	"strconv"

	"shop/internal/domain/model"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type PreferenceService[T any] interface {
	CRUDService[T, int64]
	ListForUser(ctx context.Context, userID int64) ([]T, error)
}

// /interest と /dislike のHTTP。
// GET /:id だけはuser_idとして扱う
type PreferenceHandler[T any, In modeler[T], P patcher] struct {
	prefix string
	uc     PreferenceService[T]
	crud   *crudHandler[T, int64, In, P]
}

func NewInterestHandler(uc PreferenceService[model.Interest]) *PreferenceHandler[model.Interest, usecase.InterestInput, usecase.InterestPatch] {
	return newPreferenceHandler[model.Interest, usecase.InterestInput, usecase.InterestPatch]("/interest", uc)
}

func NewDislikeHandler(uc PreferenceService[model.Dislike]) *PreferenceHandler[model.Dislike, usecase.DislikeInput, usecase.DislikePatch] {
	return newPreferenceHandler[model.Dislike, usecase.DislikeInput, usecase.DislikePatch]("/dislike", uc)
}

func newPreferenceHandler[T any, In modeler[T], P patcher](prefix string, uc PreferenceService[T]) *PreferenceHandler[T, In, P] {
	return &PreferenceHandler[T, In, P]{
		prefix: prefix,
		uc:     uc,
		crud:   &crudHandler[T, int64, In, P]{uc: uc, parseKey: parseIntKey},
	}
}

func (h *PreferenceHandler[T, In, P]) RegisterRoutes(e *echo.Echo) {
	g := e.Group(h.prefix)
	g.POST("", h.crud.create)
	g.GET("/:id", h.listForUser)
	g.PUT("/:id", h.crud.update)
	g.DELETE("/:id", h.crud.delete)
}

func (h *PreferenceHandler[T, In, P]) listForUser(c echo.Context) error {
	userID, err := parseIntKey(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func parseIntKey(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, usecase.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
