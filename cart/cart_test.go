package cart

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nilenavigator/marketplace"
	"nilenavigator/models"
	"nilenavigator/store"
	"nilenavigator/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

func TestCartAddMergesLines(t *testing.T) {
	shop := marketplace.Default()
	var c Cart

	require.NoError(t, c.Add(shop, "pottery-vase-1", "Small", 1, now))
	require.NoError(t, c.Add(shop, "pottery-vase-1", "Small", 2, now))
	require.NoError(t, c.Add(shop, "pottery-vase-1", "Large", 1, now))
	require.Len(t, c.Items, 2)
	assert.Equal(t, 3, c.Items[0].Quantity)
	assert.Equal(t, 45.0, c.Items[0].Price)
	assert.Equal(t, "Traditional Egyptian Vase", c.Items[0].Name)

	assert.ErrorIs(t, c.Add(shop, "nope", "", 1, now), ErrUnknownProduct)
	assert.ErrorIs(t, c.Add(shop, "pottery-vase-1", "Huge", 1, now), ErrInvalidVariation)
	assert.ErrorIs(t, c.Add(shop, "jewelry-necklace-1", "Gold", 1, now), ErrInvalidVariation)
	assert.ErrorIs(t, c.Add(shop, "jewelry-necklace-1", "", -1, now), ErrInvalidQuantity)
}

func TestCartSetQuantityAndRemove(t *testing.T) {
	shop := marketplace.Default()
	var c Cart
	require.NoError(t, c.Add(shop, "textile-scarf-1", "Blue", 1, now))

	require.NoError(t, c.SetQuantity("textile-scarf-1", "Blue", 4))
	assert.Equal(t, 4, c.Items[0].Quantity)
	assert.ErrorIs(t, c.SetQuantity("textile-scarf-1", "Red", 1), ErrNotInCart)
	assert.ErrorIs(t, c.SetQuantity("textile-scarf-1", "Blue", -2), ErrInvalidQuantity)

	require.NoError(t, c.Remove("textile-scarf-1", "Blue"))
	assert.Empty(t, c.Items)
}

func TestCartTotals(t *testing.T) {
	assert.Equal(t, Totals{}, Cart{}.Totals())

	c := Cart{Items: []models.CartItem{
		{ProductID: "a", Price: 45, Quantity: 1},
		{ProductID: "b", Price: 120, Quantity: 1},
	}}
	assert.Equal(t, Totals{ItemCount: 2, Subtotal: 165, Shipping: 15, Tax: 23.1, Total: 203.1}, c.Totals())
}

func TestReprice(t *testing.T) {
	c := Cart{Items: []models.CartItem{
		{ProductID: "jewelry-necklace-1", Name: "old", Price: 1, Quantity: 1},
		{ProductID: "retired", Price: 10, Quantity: 1},
	}}
	c.Reprice(marketplace.Default())
	require.Len(t, c.Items, 1)
	assert.Equal(t, 120.0, c.Items[0].Price)
	assert.Equal(t, "Pharaonic Gold Necklace", c.Items[0].Name)
}

func newRouter(kv store.KV) *httprouter.Router {
	h := &Handler{Store: kv, Shop: marketplace.Default(), Now: func() time.Time { return now }}
	r := httprouter.New()
	r.GET("/api/cart", h.GetCart)
	r.DELETE("/api/cart", h.ClearCart)
	r.POST("/api/cart/items", h.AddItem)
	r.PUT("/api/cart/items/:productId", h.UpdateItem)
	r.DELETE("/api/cart/items/:productId", h.RemoveItem)
	r.POST("/api/cart/checkout", h.Checkout)
	r.GET("/api/cart/orders", h.ListOrders)
	return r
}

func call(r http.Handler, method, path, session, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if session != "" {
		req.Header.Set(utils.SessionHeader, session)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

type cartResponse struct {
	Items  []models.CartItem `json:"items"`
	Totals Totals            `json:"totals"`
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) cartResponse {
	t.Helper()
	var out cartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestCartHandlersAreScopedBySession(t *testing.T) {
	r := newRouter(store.NewMemory())

	rec := call(r, http.MethodPost, "/api/cart/items", "alice", `{"productId":"pottery-vase-1","variation":"Medium"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, decodeCart(t, rec).Items[0].Quantity)

	rec = call(r, http.MethodGet, "/api/cart", "bob", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeCart(t, rec).Items)

	rec = call(r, http.MethodPut, "/api/cart/items/pottery-vase-1", "alice", `{"quantity":3,"variation":"Medium"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeCart(t, rec)
	assert.Equal(t, 135.0, got.Totals.Subtotal)

	rec = call(r, http.MethodDelete, "/api/cart/items/pottery-vase-1?variation=Medium", "alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeCart(t, rec).Items)

	rec = call(r, http.MethodDelete, "/api/cart/items/pottery-vase-1", "alice", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartHandlerErrors(t *testing.T) {
	r := newRouter(store.NewMemory())

	rec := call(r, http.MethodPost, "/api/cart/items", "", `{"productId":"missing"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, rec.Body.String())

	rec = call(r, http.MethodPost, "/api/cart/items", "", `{"productId":"textile-scarf-1","variation":"Gold"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(r, http.MethodPost, "/api/cart/items", "", `nope`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckout(t *testing.T) {
	kv := store.NewMemory()
	r := newRouter(kv)

	addr := `{"shippingAddress":{"name":"Nour","address":"12 Tahrir St","city":"Cairo","email":"n@example.com"},"paymentMethod":"card"}`

	rec := call(r, http.MethodPost, "/api/cart/checkout", "s1", addr)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Cart is empty"}`, rec.Body.String())

	call(r, http.MethodPost, "/api/cart/items", "s1", `{"productId":"pottery-vase-1","quantity":1}`)
	call(r, http.MethodPost, "/api/cart/items", "s1", `{"productId":"jewelry-necklace-1","quantity":1}`)

	rec = call(r, http.MethodPost, "/api/cart/checkout", "s1", `{"shippingAddress":{"name":"Nour"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(r, http.MethodPost, "/api/cart/checkout", "s1", addr)
	require.Equal(t, http.StatusCreated, rec.Code)
	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.True(t, strings.HasPrefix(order.ID, "ORD-"))
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, "s1", order.SessionID)
	assert.Equal(t, 203.1, order.Total)
	assert.Len(t, order.Items, 2)

	// the cart is emptied and the order is listed for its session only
	assert.Empty(t, decodeCart(t, call(r, http.MethodGet, "/api/cart", "s1", "")).Items)
	stored := store.Load(context.Background(), kv, store.KeyOrders, []models.Order{})
	require.Len(t, stored, 1)

	rec = call(r, http.MethodGet, "/api/cart/orders", "s1", "")
	assert.Contains(t, rec.Body.String(), order.ID)
	rec = call(r, http.MethodGet, "/api/cart/orders", "s2", "")
	assert.JSONEq(t, `{"orders":[]}`, rec.Body.String())
}

// flakyKV fails the next `failures` reads of failKey.
type flakyKV struct {
	store.KV
	failKey  string
	failures int
}

var errFlaky = errors.New("read timed out")

func (f *flakyKV) Get(ctx context.Context, key string) ([]byte, error) {
	if key == f.failKey && f.failures > 0 {
		f.failures--
		return nil, errFlaky
	}
	return f.KV.Get(ctx, key)
}

func TestCheckoutKeepsOrdersWhenReadFails(t *testing.T) {
	kv := &flakyKV{KV: store.NewMemory(), failKey: store.KeyOrders}
	r := newRouter(kv)
	addr := `{"shippingAddress":{"name":"Nour","address":"12 Tahrir St","city":"Cairo"}}`

	checkout := func(session string) int {
		rec := call(r, http.MethodPost, "/api/cart/items", session, `{"productId":"pottery-vase-1","quantity":1}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		return call(r, http.MethodPost, "/api/cart/checkout", session, addr).Code
	}

	require.Equal(t, http.StatusCreated, checkout("s1"))
	require.Equal(t, http.StatusCreated, checkout("s2"))

	kv.failures = 1
	rec := call(r, http.MethodPost, "/api/cart/items", "s3", `{"productId":"pottery-vase-1","quantity":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = call(r, http.MethodPost, "/api/cart/checkout", "s3", addr)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to load orders"}`, rec.Body.String())

	ctx := context.Background()
	stored, err := store.LoadStrict(ctx, kv, store.KeyOrders, []models.Order{})
	require.NoError(t, err)
	assert.Len(t, stored, 2)

	// the cart survives the failed checkout and can be retried
	assert.Len(t, decodeCart(t, call(r, http.MethodGet, "/api/cart", "s3", "")).Items, 1)
	rec = call(r, http.MethodPost, "/api/cart/checkout", "s3", addr)
	require.Equal(t, http.StatusCreated, rec.Code)
	stored, err = store.LoadStrict(ctx, kv, store.KeyOrders, []models.Order{})
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestCartUpdateKeepsCartWhenReadFails(t *testing.T) {
	kv := &flakyKV{KV: store.NewMemory(), failKey: store.CartKey("s1")}
	r := newRouter(kv)

	rec := call(r, http.MethodPost, "/api/cart/items", "s1", `{"productId":"pottery-vase-1","quantity":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	kv.failures = 1
	rec = call(r, http.MethodPost, "/api/cart/items", "s1", `{"productId":"jewelry-necklace-1","quantity":1}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to load cart"}`, rec.Body.String())

	got := decodeCart(t, call(r, http.MethodGet, "/api/cart", "s1", ""))
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
}
