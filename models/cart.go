package models

import "time"

// CartItem represents a single line in a session's cart.
type CartItem struct {
	ProductID string    `json:"productId" bson:"productId"`
	Name      string    `json:"name" bson:"name"`
	Quantity  int       `json:"quantity" bson:"quantity"`
	Variation string    `json:"variation,omitempty" bson:"variation,omitempty"`
	Price     float64   `json:"price" bson:"price"` // unit price
	AddedAt   time.Time `json:"addedAt" bson:"addedAt"`
}

// ShippingAddress is collected at checkout.
type ShippingAddress struct {
	Name    string `json:"name" bson:"name"`
	Address string `json:"address" bson:"address"`
	City    string `json:"city" bson:"city"`
	Phone   string `json:"phone" bson:"phone"`
	Email   string `json:"email" bson:"email"`
}

// Order represents a finalized checkout.
type Order struct {
	ID              string          `json:"id" bson:"id"`
	SessionID       string          `json:"sessionId" bson:"sessionId"`
	Items           []CartItem      `json:"items" bson:"items"`
	Subtotal        float64         `json:"subtotal" bson:"subtotal"`
	Shipping        float64         `json:"shipping" bson:"shipping"`
	Tax             float64         `json:"tax" bson:"tax"`
	Total           float64         `json:"total" bson:"total"`
	Status          string          `json:"status" bson:"status"` // pending, confirmed, shipped, delivered
	ShippingAddress ShippingAddress `json:"shippingAddress" bson:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	CreatedAt       time.Time       `json:"createdAt" bson:"createdAt"`
}
