package handler

import (
	"context"
	"net/http"

	"shop/internal/domain/model"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, emailOrID string) (model.User, error)
	Create(ctx context.Context, in usecase.UserInput) (model.User, error)
	Update(ctx context.Context, emailOrID string, p usecase.UserPatch) (model.User, error)
	Deactivate(ctx context.Context, userID int64) (model.User, error)
	MarkForDeletion(ctx context.Context, userID int64) (model.User, error)
	ListAllergies(ctx context.Context, emailOrID string) ([]model.Allergy, error)
	AddAllergy(ctx context.Context, userID int64, allergyName string, notes *string) ([]model.Allergy, error)
	DeleteAllergy(ctx context.Context, userID int64, allergyName string) ([]model.Allergy, error)
}

// /user のHTTP
type UserHandler struct {
	uc UserService
}

// DI
func NewUserHandler(uc UserService) *UserHandler {
	return &UserHandler{uc: uc}
}

// :id はemailでもidでもよい（deactivate/delete/allergiesの更新はidのみ）
func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/user")
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/:id", h.get)
	g.PUT("/:id/profile", h.update)
	g.PUT("/:id/deactivate", h.deactivate)
	g.PUT("/:id/delete", h.markForDeletion)
	g.GET("/:id/allergies", h.listAllergies)
	g.POST("/:id/allergies", h.addAllergy)
	g.DELETE("/:id/allergies", h.deleteAllergy)
}

func (h *UserHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) create(c echo.Context) error {
	var req usecase.UserInput
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) update(c echo.Context) error {
	var req usecase.UserPatch
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) deactivate(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Deactivate(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) markForDeletion(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.MarkForDeletion(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) listAllergies(c echo.Context) error {
	out, err := h.uc.ListAllergies(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// ?allergy_name=&notes=
func (h *UserHandler) addAllergy(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	name, err := queryRequired(c, "allergy_name")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.AddAllergy(c.Request().Context(), id, name, queryOptional(c, "notes"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) deleteAllergy(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	name, err := queryRequired(c, "allergy_name")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.DeleteAllergy(c.Request().Context(), id, name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
