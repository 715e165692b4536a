// Package cart keeps a shopping cart per browser session and turns it
// into an order at checkout.
package cart

import (
	"errors"
	"math"
	"slices"
	"time"

	"nilenavigator/marketplace"
	"nilenavigator/models"
)

const (
	ShippingFee = 15.0
	TaxRate     = 0.14
)

var (
	ErrUnknownProduct   = errors.New("product not found")
	ErrOutOfStock       = errors.New("product out of stock")
	ErrInvalidVariation = errors.New("invalid variation")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrNotInCart        = errors.New("item not in cart")
)

// Cart is the stored content of one session's cart.
type Cart struct {
	Items []models.CartItem `json:"items"`
}

// Totals summarises a cart. Shipping is only charged on a non-empty cart.
type Totals struct {
	ItemCount int     `json:"itemCount"`
	Subtotal  float64 `json:"subtotal"`
	Shipping  float64 `json:"shipping"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func (c Cart) Totals() Totals {
	var t Totals
	for _, it := range c.Items {
		t.ItemCount += it.Quantity
		t.Subtotal += it.Price * float64(it.Quantity)
	}
	if t.ItemCount > 0 {
		t.Shipping = ShippingFee
	}
	t.Subtotal = roundCents(t.Subtotal)
	t.Tax = roundCents(t.Subtotal * TaxRate)
	t.Total = roundCents(t.Subtotal + t.Shipping + t.Tax)
	return t
}

func (c Cart) find(productID, variation string) int {
	return slices.IndexFunc(c.Items, func(it models.CartItem) bool {
		return it.ProductID == productID && it.Variation == variation
	})
}

// Add puts quantity units of a product in the cart, merging with an
// existing line for the same product and variation. Name and price come
// from the shop.
func (c *Cart) Add(shop *marketplace.Marketplace, productID, variation string, quantity int, now time.Time) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	p, ok := shop.Product(productID)
	if !ok {
		return ErrUnknownProduct
	}
	if !p.InStock {
		return ErrOutOfStock
	}
	if variation != "" && (p.Variations == nil || !slices.Contains(p.Variations.Options, variation)) {
		return ErrInvalidVariation
	}

	if i := c.find(productID, variation); i >= 0 {
		c.Items[i].Quantity += quantity
		return nil
	}
	c.Items = append(c.Items, models.CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Quantity:  quantity,
		Variation: variation,
		Price:     p.Price,
		AddedAt:   now,
	})
	return nil
}

// SetQuantity changes a line's quantity; zero removes it.
func (c *Cart) SetQuantity(productID, variation string, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	i := c.find(productID, variation)
	if i < 0 {
		return ErrNotInCart
	}
	if quantity == 0 {
		c.Items = slices.Delete(c.Items, i, i+1)
		return nil
	}
	c.Items[i].Quantity = quantity
	return nil
}

func (c *Cart) Remove(productID, variation string) error {
	return c.SetQuantity(productID, variation, 0)
}

// Reprice refreshes names and prices from the shop and drops lines whose
// product no longer exists.
func (c *Cart) Reprice(shop *marketplace.Marketplace) {
	kept := c.Items[:0]
	for _, it := range c.Items {
		p, ok := shop.Product(it.ProductID)
		if !ok {
			continue
		}
		it.Name = p.Name
		it.Price = p.Price
		kept = append(kept, it)
	}
	c.Items = kept
}
