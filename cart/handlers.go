package cart

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"nilenavigator/marketplace"
	"nilenavigator/models"
	"nilenavigator/store"
	"nilenavigator/utils"

	"github.com/julienschmidt/httprouter"
)

const storeTimeout = 5 * time.Second

// Handler serves the session cart. Carts live in the KV store under the
// per-session cart key.
type Handler struct {
	Store store.KV
	Shop  *marketplace.Marketplace
	Now   func() time.Time

	mu sync.Mutex // serialises read-modify-write of carts and orders
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *Handler) load(ctx context.Context, session string) Cart {
	c := store.Load(ctx, h.Store, store.CartKey(session), Cart{})
	if c.Items == nil {
		c.Items = []models.CartItem{}
	}
	return c
}

// loadForUpdate is load for read-modify-write paths: read failures are
// returned instead of masked by an empty cart.
func (h *Handler) loadForUpdate(ctx context.Context, session string) (Cart, error) {
	c, err := store.LoadStrict(ctx, h.Store, store.CartKey(session), Cart{})
	if err != nil {
		return c, err
	}
	if c.Items == nil {
		c.Items = []models.CartItem{}
	}
	return c, nil
}

func respondCart(w http.ResponseWriter, code int, c Cart) {
	utils.RespondWithJSON(w, code, utils.M{"items": c.Items, "totals": c.Totals()})
}

func respondCartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnknownProduct):
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, ErrNotInCart):
		utils.RespondWithError(w, http.StatusNotFound, "Item not in cart")
	case errors.Is(err, ErrOutOfStock):
		utils.RespondWithError(w, http.StatusConflict, "Product out of stock")
	case errors.Is(err, ErrInvalidVariation):
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid variation")
	case errors.Is(err, ErrInvalidQuantity):
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid quantity")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Cart update failed")
	}
}

// GET /api/cart
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	respondCart(w, http.StatusOK, h.load(ctx, utils.SessionID(r)))
}

type itemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Variation string `json:"variation"`
}

// update loads the session cart, applies fn and stores the result.
func (h *Handler) update(w http.ResponseWriter, r *http.Request, code int, fn func(*Cart) error) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	session := utils.SessionID(r)

	h.mu.Lock()
	defer h.mu.Unlock()

	c, err := h.loadForUpdate(ctx, session)
	if err != nil {
		log.Printf("cart: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load cart")
		return
	}
	if err := fn(&c); err != nil {
		respondCartError(w, err)
		return
	}
	if !store.Save(ctx, h.Store, store.CartKey(session), c) {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save cart")
		return
	}
	respondCart(w, code, c)
}

// POST /api/cart/items
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req itemRequest
	if !utils.DecodeJSON(w, r, &req) {
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	h.update(w, r, http.StatusCreated, func(c *Cart) error {
		return c.Add(h.Shop, req.ProductID, req.Variation, req.Quantity, h.now())
	})
}

// PUT /api/cart/items/:productId
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req itemRequest
	if !utils.DecodeJSON(w, r, &req) {
		return
	}
	h.update(w, r, http.StatusOK, func(c *Cart) error {
		return c.SetQuantity(ps.ByName("productId"), req.Variation, req.Quantity)
	})
}

// DELETE /api/cart/items/:productId?variation=
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	variation := r.URL.Query().Get("variation")
	h.update(w, r, http.StatusOK, func(c *Cart) error {
		return c.Remove(ps.ByName("productId"), variation)
	})
}

// DELETE /api/cart
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	h.mu.Lock()
	defer h.mu.Unlock()
	store.Remove(ctx, h.Store, store.CartKey(utils.SessionID(r)))

	respondCart(w, http.StatusOK, Cart{Items: []models.CartItem{}})
}

type checkoutRequest struct {
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
}

// POST /api/cart/checkout
//
// Places a pending order for the session's cart and empties it. No
// payment is taken.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req checkoutRequest
	if !utils.DecodeJSON(w, r, &req) {
		return
	}
	addr := req.ShippingAddress
	if strings.TrimSpace(addr.Name) == "" || strings.TrimSpace(addr.Address) == "" || strings.TrimSpace(addr.City) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing shipping details")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	session := utils.SessionID(r)

	h.mu.Lock()
	defer h.mu.Unlock()

	c, err := h.loadForUpdate(ctx, session)
	if err != nil {
		log.Printf("cart: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load cart")
		return
	}
	c.Reprice(h.Shop)
	if len(c.Items) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Cart is empty")
		return
	}

	totals := c.Totals()
	order := models.Order{
		ID:              "ORD-" + utils.GenerateID(10),
		SessionID:       session,
		Items:           c.Items,
		Subtotal:        totals.Subtotal,
		Shipping:        totals.Shipping,
		Tax:             totals.Tax,
		Total:           totals.Total,
		Status:          "pending",
		ShippingAddress: addr,
		PaymentMethod:   req.PaymentMethod,
		CreatedAt:       h.now(),
	}

	orders, err := store.LoadStrict(ctx, h.Store, store.KeyOrders, []models.Order{})
	if err != nil {
		log.Printf("cart: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load orders")
		return
	}
	orders = append(orders, order)
	if !store.Save(ctx, h.Store, store.KeyOrders, orders) {
		utils.RespondWithError(w, http.StatusInternalServerError, "Order creation failed")
		return
	}
	if !store.Remove(ctx, h.Store, store.CartKey(session)) {
		log.Printf("cart: order %s placed but cart for %s not cleared", order.ID, session)
	}

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// GET /api/cart/orders
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	session := utils.SessionID(r)
	mine := []models.Order{}
	for _, o := range store.Load(ctx, h.Store, store.KeyOrders, []models.Order{}) {
		if o.SessionID == session {
			mine = append(mine, o)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"orders": mine})
}
