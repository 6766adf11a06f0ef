package handler

import (
	"context"
	"net/http"

	repo "shop/internal/repository"

	"github.com/labstack/echo/v4"
)

// CRUDService は usecase.CRUDUsecase の形
type CRUDService[T any, K comparable] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, key K) (T, error)
	Create(ctx context.Context, row T) (T, error)
	Update(ctx context.Context, key K, fields repo.Fields) (T, error)
	Delete(ctx context.Context, key K) (T, error)
}

// 作成リクエスト → 行
type modeler[T any] interface {
	Model() T
}

// 部分更新リクエスト → 更新カラム
type patcher interface {
	Fields() repo.Fields
}

// crudHandler は1テーブル分のGET/POST/PUT/DELETE。
// In/Pはリクエストボディの型
type crudHandler[T any, K comparable, In modeler[T], P patcher] struct {
	uc       CRUDService[T, K]
	parseKey func(string) (K, error)
}

func (h *crudHandler[T, K, In, P]) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *crudHandler[T, K, In, P]) get(c echo.Context) error {
	key, err := h.parseKey(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Get(c.Request().Context(), key)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *crudHandler[T, K, In, P]) create(c echo.Context) error {
	var req In
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Create(c.Request().Context(), req.Model())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *crudHandler[T, K, In, P]) update(c echo.Context) error {
	key, err := h.parseKey(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	var req P
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Update(c.Request().Context(), key, req.Fields())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *crudHandler[T, K, In, P]) delete(c echo.Context) error {
	key, err := h.parseKey(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Delete(c.Request().Context(), key)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
