package client

import (
	"context"
	"fmt"
	"net/http"

	"shop/internal/domain/model"
	"shop/internal/usecase"

	"github.com/google/uuid"
)

func (c *Client) Products(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	err := c.do(ctx, http.MethodGet, "/product", nil, nil, &out)
	return out, err
}

func (c *Client) Product(ctx context.Context, id uuid.UUID) (model.Product, error) {
	var out model.Product
	err := c.do(ctx, http.MethodGet, "/product/"+id.String(), nil, nil, &out)
	return out, err
}

// ActiveInStockProducts は販売中で在庫のある商品だけ
func (c *Client) ActiveInStockProducts(ctx context.Context) ([]model.Product, error) {
	all, err := c.Products(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Product, 0, len(all))
	for _, p := range all {
		if p.IsActive && p.Quantity > 0 {
			out = append(out, p)
		}
	}
	return out, nil
}

// =====================
// 注文・カート
// =====================

// Orders は開・閉とも全部
func (c *Client) Orders(ctx context.Context, userID int64) ([]usecase.OrderPurchases, error) {
	var out []usecase.OrderPurchases
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/buy/%d", userID), nil, nil, &out)
	return out, err
}

// ErrMultipleOpenOrders はカートが2つ以上見えたとき
type ErrMultipleOpenOrders struct {
	UserID int64
}

func (e *ErrMultipleOpenOrders) Error() string {
	return fmt.Sprintf("Multiple open orders found for user %d", e.UserID)
}

// OpenOrder は開いている注文。無ければnil
func (c *Client) OpenOrder(ctx context.Context, userID int64) (*usecase.OrderPurchases, error) {
	orders, err := c.Orders(ctx, userID)
	if err != nil {
		return nil, err
	}
	open := SplitOrders(orders, false)
	switch len(open) {
	case 0:
		return nil, nil
	case 1:
		return &open[0], nil
	}
	return nil, &ErrMultipleOpenOrders{UserID: userID}
}

// ClosedOrders は確定済みの注文
func (c *Client) ClosedOrders(ctx context.Context, userID int64) ([]usecase.OrderPurchases, error) {
	orders, err := c.Orders(ctx, userID)
	if err != nil {
		return nil, err
	}
	return SplitOrders(orders, true), nil
}

// SplitOrders はchecked_outで絞る
func SplitOrders(orders []usecase.OrderPurchases, checkedOut bool) []usecase.OrderPurchases {
	out := make([]usecase.OrderPurchases, 0, len(orders))
	for _, o := range orders {
		if o.Order.CheckedOut == checkedOut {
			out = append(out, o)
		}
	}
	return out
}

type buyBody struct {
	ProductID uuid.UUID `json:"product_id"`
	UserID    int64     `json:"user_id"`
	Quantity  int64     `json:"quantity"`
}

func (c *Client) AddToCart(ctx context.Context, productID uuid.UUID, userID, quantity int64) (usecase.OrderPurchases, error) {
	var out usecase.OrderPurchases
	err := c.do(ctx, http.MethodPost, "/buy", nil, buyBody{productID, userID, quantity}, &out)
	return out, err
}

// ChangeQuantity は明細の数量を増減する（PUT）
func (c *Client) ChangeQuantity(ctx context.Context, productID uuid.UUID, userID, delta int64) (usecase.OrderPurchases, error) {
	var out usecase.OrderPurchases
	err := c.do(ctx, http.MethodPut, "/buy", nil, buyBody{productID, userID, delta}, &out)
	return out, err
}

// Increment は+1、addがfalseなら-1
func (c *Client) Increment(ctx context.Context, productID uuid.UUID, userID int64, add bool) (usecase.OrderPurchases, error) {
	delta := int64(-1)
	if add {
		delta = 1
	}
	return c.ChangeQuantity(ctx, productID, userID, delta)
}

func (c *Client) Checkout(ctx context.Context, userID int64) (usecase.OrderPurchases, error) {
	var out usecase.OrderPurchases
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/buy/checkout/%d", userID), nil, nil, &out)
	return out, err
}
