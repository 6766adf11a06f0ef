package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", srv.Client())
}

const ordersJSON = `[
 {"order":{"id":1,"user_id":7,"total_amount":"20.00","checked_out":true,"created_at":"2024-05-01T10:00:00Z","updated_at":"2024-05-01T10:00:00Z"},
  "purchases":[{"id":1,"order_id":1,"product_id":"550e8400-e29b-41d4-a716-446655440001","user_id":7,"quantity":2,"total_amount":"20.00","status":"Purchased","created_at":"2024-05-01T10:00:00Z","updated_at":"2024-05-01T10:00:00Z"}]},
 {"order":{"id":2,"user_id":7,"total_amount":"5.50","checked_out":false,"created_at":"2024-05-02T10:00:00Z","updated_at":"2024-05-02T10:00:00Z"},
  "purchases":[]}
]`

func TestClient_OrdersAndSplit(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /buy/7", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, ordersJSON)
	})
	c := newTestClient(t, mux)
	ctx := context.Background()

	orders, err := c.Orders(ctx, 7)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "20.00", orders[0].Order.TotalAmount.StringFixed(2))
	require.Len(t, orders[0].Purchases, 1)
	assert.Equal(t, int64(2), orders[0].Purchases[0].Quantity)

	closed, err := c.ClosedOrders(ctx, 7)
	require.NoError(t, err)
	require.Len(t, closed, 1)
	assert.Equal(t, int64(1), closed[0].Order.ID)

	open, err := c.OpenOrder(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, open)
	assert.Equal(t, int64(2), open.Order.ID)
}

func TestClient_OpenOrderGuards(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /buy/1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})
	mux.HandleFunc("GET /buy/2", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"order":{"id":1,"checked_out":false},"purchases":[]},{"order":{"id":2,"checked_out":false},"purchases":[]}]`)
	})
	c := newTestClient(t, mux)

	open, err := c.OpenOrder(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, open)

	_, err = c.OpenOrder(context.Background(), 2)
	var multi *ErrMultipleOpenOrders
	require.ErrorAs(t, err, &multi)
	assert.Equal(t, "Multiple open orders found for user 2", err.Error())
}

func TestClient_APIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /buy/checkout/3", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":"No open order found for user 3"}`)
	})
	mux.HandleFunc("GET /product", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "upstream down\n")
	})
	c := newTestClient(t, mux)

	_, err := c.Checkout(context.Background(), 3)
	var ae *APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, http.StatusNotFound, ae.Status)
	assert.Equal(t, "No open order found for user 3", ae.Message)
	assert.True(t, IsNotFound(err))

	_, err = c.Products(context.Background())
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "upstream down", ae.Message)
	assert.False(t, IsNotFound(err))
}

func TestClient_CartRequests(t *testing.T) {
	pid := uuid.MustParse("550e8400-e29b-41d4-a716-446655440003")
	var got []map[string]any

	record := func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		body["method"] = r.Method
		got = append(got, body)
		_, _ = io.WriteString(w, `{"order":{"id":1},"purchases":[]}`)
	}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /buy", record)
	mux.HandleFunc("PUT /buy", record)
	c := newTestClient(t, mux)
	ctx := context.Background()

	_, err := c.AddToCart(ctx, pid, 4, 2)
	require.NoError(t, err)
	_, err = c.Increment(ctx, pid, 4, false)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "POST", got[0]["method"])
	assert.Equal(t, pid.String(), got[0]["product_id"])
	assert.Equal(t, float64(2), got[0]["quantity"])
	assert.Equal(t, "PUT", got[1]["method"])
	assert.Equal(t, float64(-1), got[1]["quantity"])
}

func TestClient_ActiveInStockAndAllergies(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /product", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[
 {"id":"550e8400-e29b-41d4-a716-446655440001","name":"A","price":"1.00","quantity":5,"is_active":true},
 {"id":"550e8400-e29b-41d4-a716-446655440002","name":"B","price":"1.00","quantity":0,"is_active":true},
 {"id":"550e8400-e29b-41d4-a716-446655440006","name":"C","price":"1.00","quantity":9,"is_active":false}]`)
	})
	mux.HandleFunc("POST /user/1/allergies", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Tree Nuts", r.URL.Query().Get("allergy_name"))
		_, _ = io.WriteString(w, `[{"name":"Tree Nuts"}]`)
	})
	c := newTestClient(t, mux)
	ctx := context.Background()

	products, err := c.ActiveInStockProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "A", products[0].Name)

	allergies, err := c.AddUserAllergy(ctx, 1, "Tree Nuts")
	require.NoError(t, err)
	require.Len(t, allergies, 1)
	assert.Equal(t, "Tree Nuts", allergies[0].Name)
}
