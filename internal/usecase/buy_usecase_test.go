package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"shop/internal/domain/model"
	"shop/internal/logger"
	repo "shop/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newBuy(s *memStore, lock bool) *BuyUsecase {
	uc := NewBuyUsecase(&memTx{s: s}, logger.Discard(), lock)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func assertHTTPError(t *testing.T, err error, status int, msg string) {
	t.Helper()
	he, ok := AsHTTPError(err)
	require.True(t, ok, "expected HTTPError, got %v", err)
	assert.Equal(t, status, he.Status)
	assert.Equal(t, msg, he.Message)
}

func TestBuy_Scenario_AddRemoveThenCheckoutEmpty(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	p := s.addProduct("Widget", "10.00", 50)
	uc := newBuy(s, false)

	out, err := uc.AddToCart(ctx, PurchaseInput{UserID: 1, ProductID: p.ID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, "20.00", out.Order.TotalAmount.StringFixed(2))
	require.Len(t, out.Purchases, 1)
	assert.Equal(t, int64(2), out.Purchases[0].Quantity)
	assert.Equal(t, "20.00", out.Purchases[0].TotalAmount.StringFixed(2))
	assert.Equal(t, model.PurchaseStatusInCart, out.Purchases[0].Status)

	out, err = uc.UpdateQuantity(ctx, PurchaseInput{UserID: 1, ProductID: p.ID, Quantity: -5})
	require.NoError(t, err)
	assert.Empty(t, out.Purchases)
	assert.Equal(t, "0.00", out.Order.TotalAmount.StringFixed(2))
	assert.Empty(t, s.purchases)

	_, err = uc.Checkout(ctx, 1)
	assertHTTPError(t, err, http.StatusNotFound, "No open order found for user 1")
}

func TestBuy_AddToCart_UnknownProduct(t *testing.T) {
	s := newMemStore()
	uc := newBuy(s, false)

	_, err := uc.AddToCart(context.Background(), PurchaseInput{UserID: 1, ProductID: uuid.New(), Quantity: 1})
	assertHTTPError(t, err, http.StatusNotFound, "Product not found")
	assert.Empty(t, s.orders)
}

func TestBuy_AddToCart_QuantityBelowOne(t *testing.T) {
	s := newMemStore()
	p := s.addProduct("Widget", "10.00", 5)
	uc := newBuy(s, false)

	_, err := uc.AddToCart(context.Background(), PurchaseInput{UserID: 1, ProductID: p.ID, Quantity: 0})
	assertHTTPError(t, err, http.StatusBadRequest, "Quantity must be at least 1")
}

func TestBuy_UpdateQuantity_ZeroDelta(t *testing.T) {
	s := newMemStore()
	p := s.addProduct("Widget", "10.00", 5)
	uc := newBuy(s, false)

	for i := 0; i < 2; i++ {
		_, err := uc.UpdateQuantity(context.Background(), PurchaseInput{UserID: 1, ProductID: p.ID, Quantity: 0})
		assertHTTPError(t, err, http.StatusBadRequest, "Quantity change cannot be 0")
	}
}

func TestBuy_AddToCart_IsAssociativeOnQuantity(t *testing.T) {
	ctx := context.Background()

	split := newMemStore()
	p := split.addProduct("Widget", "3.35", 100)
	_, err := newBuy(split, false).AddToCart(ctx, PurchaseInput{UserID: 1, ProductID: p.ID, Quantity: 2})
	require.NoError(t, err)
	a, err := newBuy(split, false).AddToCart(ctx, PurchaseInput{UserID: 1, ProductID: p.ID, Quantity: 5})
	require.NoError(t, err)

	once := newMemStore()
	once.products[p.ID] = p
	b, err := newBuy(once, false).AddToCart(ctx, PurchaseInput{UserID: 1, ProductID: p.ID, Quantity: 7})
	require.NoError(t, err)

	require.Len(t, a.Purchases, 1)
	require.Len(t, b.Purchases, 1)
	assert.Equal(t, b.Purchases[0].Quantity, a.Purchases[0].Quantity)
	assert.Equal(t, "23.45", a.Purchases[0].TotalAmount.StringFixed(2))
	assert.Equal(t, b.Order.TotalAmount.StringFixed(2), a.Order.TotalAmount.StringFixed(2))
	assert.Len(t, split.orders, 1)
}

func TestBuy_AddToCart_RepricesWholeLineAtCurrentPrice(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	p := s.addProduct("Widget", "10.00", 50)
	other := s.addProduct("Gadget", "1.50", 50)
	uc := newBuy(s, false)

	_, err := uc.AddToCart(ctx, PurchaseInput{UserID: 1, ProductID: p.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = uc.AddToCart(ctx, PurchaseInput{UserID: 1, ProductID: other.ID, Quantity: 2})
	require.NoError(t, err)

	changed := s.products[p.ID]
	changed.Price = model.MustMoney("12.50")
	s.products[p.ID] = changed

	out, err := uc.AddToCart(ctx, PurchaseInput{UserID: 1, ProductID: p.ID, Quantity: 1})
	require.NoError(t, err)
	require.Len(t, out.Purchases, 2)
	assert.Equal(t, int64(3), out.Purchases[0].Quantity)
	assert.Equal(t, "37.50", out.Purchases[0].TotalAmount.StringFixed(2))
	assert.Equal(t, "40.50", out.Order.TotalAmount.StringFixed(2))
	assert.Equal(t, fixedNow, out.Order.UpdatedAt)
}

func TestBuy_UpdateQuantity_IncrementAndDecrement(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	p := s.addProduct("Widget", "2.25", 50)
	uc := newBuy(s, false)

	_, err := uc.AddToCart(ctx, PurchaseInput{UserID: 1, ProductID: p.ID, Quantity: 4})
	require.NoError(t, err)

	out, err := uc.UpdateQuantity(ctx, PurchaseInput{UserID: 1, ProductID: p.ID, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(7), out.Purchases[0].Quantity)
	assert.Equal(t, "15.75", out.Order.TotalAmount.StringFixed(2))

	out, err = uc.UpdateQuantity(ctx, PurchaseInput{UserID: 1, ProductID: p.ID, Quantity: -6})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Purchases[0].Quantity)
	assert.Equal(t, "2.25", out.Order.TotalAmount.StringFixed(2))
}

func TestBuy_UpdateQuantity_RemovalSubtractsPriorLineTotal(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	a := s.addProduct("A", "10.00", 50)
	b := s.addProduct("B", "4.00", 50)
	uc := newBuy(s, false)

	_, err := uc.AddToCart(ctx, PurchaseInput{UserID: 1, ProductID: a.ID, Quantity: 2})
	require.NoError(t, err)
	before, err := uc.AddToCart(ctx, PurchaseInput{UserID: 1, ProductID: b.ID, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, "32.00", before.Order.TotalAmount.StringFixed(2))

	// 価格が変わっても、消すときは明細の金額をそのまま引く
	changed := s.products[b.ID]
	changed.Price = model.MustMoney("100.00")
	s.products[b.ID] = changed

	out, err := uc.UpdateQuantity(ctx, PurchaseInput{UserID: 1, ProductID: b.ID, Quantity: -3})
	require.NoError(t, err)
	require.Len(t, out.Purchases, 1)
	assert.Equal(t, a.ID, out.Purchases[0].ProductID)
	assert.Equal(t, "20.00", out.Order.TotalAmount.StringFixed(2))
}

func TestBuy_UpdateQuantity_NoOpenOrder(t *testing.T) {
	s := newMemStore()
	p := s.addProduct("Widget", "1.00", 5)
	uc := newBuy(s, false)

	_, err := uc.UpdateQuantity(context.Background(), PurchaseInput{UserID: 1, ProductID: p.ID, Quantity: 1})
	assertHTTPError(t, err, http.StatusNotFound, "Order not found. Use a POST rather than a PUT to create an order.")
}

func TestBuy_UpdateQuantity_ProductNotInCart(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	p := s.addProduct("Widget", "1.00", 5)
	missing := s.addProduct("Other", "1.00", 5)
	uc := newBuy(s, false)

	_, err := uc.AddToCart(ctx, PurchaseInput{UserID: 1, ProductID: p.ID, Quantity: 1})
	require.NoError(t, err)

	_, err = uc.UpdateQuantity(ctx, PurchaseInput{UserID: 1, ProductID: missing.ID, Quantity: 1})
	assertHTTPError(t, err, http.StatusNotFound, "Product "+missing.ID.String()+" not found in cart for user 1")
}

func TestBuy_RemoveFromCart(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	a := s.addProduct("A", "10.00", 50)
	b := s.addProduct("B", "0.99", 50)
	uc := newBuy(s, false)

	_, err := uc.AddToCart(ctx, PurchaseInput{UserID: 1, ProductID: a.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = uc.AddToCart(ctx, PurchaseInput{UserID: 1, ProductID: b.ID, Quantity: 3})
	require.NoError(t, err)

	out, err := uc.RemoveFromCart(ctx, 1, b.ID)
	require.NoError(t, err)
	require.Len(t, out.Purchases, 1)
	assert.Equal(t, "10.00", out.Order.TotalAmount.StringFixed(2))

	_, err = uc.RemoveFromCart(ctx, 1, b.ID)
	assertHTTPError(t, err, http.StatusNotFound, "Product "+b.ID.String()+" not found in cart for user 1")

	_, err = uc.RemoveFromCart(ctx, 2, a.ID)
	assertHTTPError(t, err, http.StatusNotFound, "Product "+a.ID.String()+" not found in cart for user 2")
}

func TestBuy_Checkout_Success(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	a := s.addProduct("A", "10.00", 50)
	b := s.addProduct("B", "2.00", 3)
	uc := newBuy(s, false)

	_, err := uc.AddToCart(ctx, PurchaseInput{UserID: 1, ProductID: a.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = uc.AddToCart(ctx, PurchaseInput{UserID: 1, ProductID: b.ID, Quantity: 3})
	require.NoError(t, err)

	out, err := uc.Checkout(ctx, 1)
	require.NoError(t, err)
	assert.True(t, out.Order.CheckedOut)
	assert.Equal(t, "26.00", out.Order.TotalAmount.StringFixed(2))
	for _, line := range out.Purchases {
		assert.Equal(t, model.PurchaseStatusPurchased, line.Status)
	}
	for _, line := range s.purchases {
		assert.Equal(t, model.PurchaseStatusPurchased, line.Status)
	}
	assert.Equal(t, int64(48), s.products[a.ID].Quantity)
	assert.Equal(t, int64(0), s.products[b.ID].Quantity)
	assert.Empty(t, s.openOrders(1))

	// 次の追加は新しい注文になる
	next, err := uc.AddToCart(ctx, PurchaseInput{UserID: 1, ProductID: a.ID, Quantity: 1})
	require.NoError(t, err)
	assert.NotEqual(t, out.Order.ID, next.Order.ID)
	assert.Len(t, s.openOrders(1), 1)

	orders, err := uc.ListOrders(ctx, 1)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.True(t, orders[0].Order.CheckedOut)
	assert.Len(t, orders[0].Purchases, 2)
	assert.False(t, orders[1].Order.CheckedOut)
}

func TestBuy_Checkout_IsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	a := s.addProduct("Apple", "1.00", 50)
	b := s.addProduct("Banana", "1.00", 5)
	uc := newBuy(s, false)

	_, err := uc.AddToCart(ctx, PurchaseInput{UserID: 1, ProductID: a.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = uc.AddToCart(ctx, PurchaseInput{UserID: 1, ProductID: b.ID, Quantity: 3})
	require.NoError(t, err)

	// 追加後に在庫が減った
	short := s.products[b.ID]
	short.Quantity = 1
	s.products[b.ID] = short

	_, err = uc.Checkout(ctx, 1)
	assertHTTPError(t, err, http.StatusBadRequest, "Not enough Banana in inventory")

	assert.Equal(t, int64(50), s.products[a.ID].Quantity)
	assert.Equal(t, int64(1), s.products[b.ID].Quantity)
	require.Len(t, s.openOrders(1), 1)
	for _, line := range s.purchases {
		assert.Equal(t, model.PurchaseStatusInCart, line.Status)
	}
}

func TestBuy_MultipleOpenOrders(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	p := s.addProduct("Widget", "1.00", 5)
	s.orders[1] = model.Order{ID: 1, UserID: 7}
	s.orders[2] = model.Order{ID: 2, UserID: 7}
	s.nextOrderID = 2
	uc := newBuy(s, false)

	_, err := uc.AddToCart(ctx, PurchaseInput{UserID: 7, ProductID: p.ID, Quantity: 1})
	assertHTTPError(t, err, http.StatusConflict, "Multiple open orders found for user 7")

	_, err = uc.UpdateQuantity(ctx, PurchaseInput{UserID: 7, ProductID: p.ID, Quantity: 1})
	assertHTTPError(t, err, http.StatusConflict, "Multiple open orders found for user 7")

	_, err = uc.Checkout(ctx, 7)
	assertHTTPError(t, err, http.StatusConflict, "Multiple open orders found for user 7")
	assert.Len(t, s.orders, 2)
}

func TestBuy_LockUserRow(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	p := s.addProduct("Widget", "1.00", 5)
	s.users[1] = true
	uc := newBuy(s, true)

	_, err := uc.AddToCart(ctx, PurchaseInput{UserID: 1, ProductID: p.ID, Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, s.lockCalls)

	_, err = uc.AddToCart(ctx, PurchaseInput{UserID: 9, ProductID: p.ID, Quantity: 1})
	assertHTTPError(t, err, http.StatusNotFound, "User with id 9 not found")
	assert.Equal(t, 2, s.lockCalls)

	// ロック無しなら呼ばれない
	_, err = newBuy(s, false).AddToCart(ctx, PurchaseInput{UserID: 1, ProductID: p.ID, Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, s.lockCalls)
}

func TestBuy_StoreErrorsMapToUnprocessable(t *testing.T) {
	s := newMemStore()
	p := s.addProduct("Widget", "1.00", 5)
	s.createPurchaseError = repo.ErrForeignKey
	uc := newBuy(s, false)

	_, err := uc.AddToCart(context.Background(), PurchaseInput{UserID: 1, ProductID: p.ID, Quantity: 1})
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, he.Status)
	// 注文の作成もロールバックされる
	assert.Empty(t, s.orders)

	s.createPurchaseError = repo.ErrDuplicate
	_, err = uc.AddToCart(context.Background(), PurchaseInput{UserID: 1, ProductID: p.ID, Quantity: 1})
	he, ok = AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Status)
}
