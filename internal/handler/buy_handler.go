package handler

import (
	"context"
	"net/http"

	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type BuyService interface {
	ListOrders(ctx context.Context, userID int64) ([]usecase.OrderPurchases, error)
	AddToCart(ctx context.Context, in usecase.PurchaseInput) (usecase.OrderPurchases, error)
	UpdateQuantity(ctx context.Context, in usecase.PurchaseInput) (usecase.OrderPurchases, error)
	RemoveFromCart(ctx context.Context, userID int64, productID uuid.UUID) (usecase.OrderPurchases, error)
	Checkout(ctx context.Context, userID int64) (usecase.OrderPurchases, error)
}

// /buy のHTTP（カートと購入確定）
type BuyHandler struct {
	uc BuyService
}

// DI
func NewBuyHandler(uc BuyService) *BuyHandler {
	return &BuyHandler{uc: uc}
}

// POSTは追加数、PUTは増減
type BuyRequest struct {
	ProductID *uuid.UUID `json:"product_id" validate:"required"`
	UserID    *int64     `json:"user_id" validate:"required"`
	Quantity  *int64     `json:"quantity" validate:"required"`
}

func (r BuyRequest) input() usecase.PurchaseInput {
	return usecase.PurchaseInput{ProductID: *r.ProductID, UserID: *r.UserID, Quantity: *r.Quantity}
}

func (h *BuyHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/buy")
	g.POST("", h.addToCart)
	g.PUT("", h.updateQuantity)
	g.DELETE("", h.removeFromCart)
	g.GET("/:user_id", h.listOrders)
	g.POST("/checkout/:user_id", h.checkout)
}

func (h *BuyHandler) listOrders(c echo.Context) error {
	userID, err := paramInt64(c, "user_id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BuyHandler) addToCart(c echo.Context) error {
	var req BuyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.AddToCart(c.Request().Context(), req.input())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BuyHandler) updateQuantity(c echo.Context) error {
	var req BuyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.UpdateQuantity(c.Request().Context(), req.input())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// ?user_id=&product_id=
func (h *BuyHandler) removeFromCart(c echo.Context) error {
	userID, err := queryInt64(c, "user_id")
	if err != nil {
		return writeError(c, err)
	}
	raw, err := queryRequired(c, "product_id")
	if err != nil {
		return writeError(c, err)
	}
	productID, err := uuid.Parse(raw)
	if err != nil {
		return writeError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid product_id"))
	}

	out, err := h.uc.RemoveFromCart(c.Request().Context(), userID, productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BuyHandler) checkout(c echo.Context) error {
	userID, err := paramInt64(c, "user_id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Checkout(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
