package domain

import (
	"time"

	"fastfoodz/orderstatus"

	"github.com/shopspring/decimal"
)

// User is the authenticated principal, as carried by the bearer token.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	IsVeg       bool            `json:"is_veg"`
	Category    string          `json:"category"`
}

type RestaurantRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CartLine struct {
	MenuItem
	Quantity       int    `json:"quantity"`
	RestaurantID   string `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
}

func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the persisted cart snapshot. A non-empty cart belongs to exactly
// one restaurant.
type Cart struct {
	RestaurantID   string     `json:"restaurant_id,omitempty"`
	RestaurantName string     `json:"restaurant_name,omitempty"`
	Lines          []CartLine `json:"lines"`
}

func (c Cart) Empty() bool {
	return len(c.Lines) == 0
}

func (c Cart) Clone() Cart {
	out := c
	out.Lines = append([]CartLine(nil), c.Lines...)
	return out
}

type Summary struct {
	RestaurantID   string          `json:"restaurant_id,omitempty"`
	RestaurantName string          `json:"restaurant_name,omitempty"`
	Lines          []CartLine      `json:"lines"`
	ItemCount      int             `json:"item_count"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Taxes          decimal.Decimal `json:"taxes"`
	DeliveryFee    decimal.Decimal `json:"delivery_fee"`
	Total          decimal.Decimal `json:"total"`
}

type DeliveryInfo struct {
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
}

type OrderItem struct {
	ItemID   string          `json:"item_id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	IsVeg    bool            `json:"is_veg"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type Order struct {
	ID                string             `json:"id"`
	UserID            string             `json:"user_id"`
	UserEmail         string             `json:"user_email"`
	RestaurantID      string             `json:"restaurant_id"`
	RestaurantName    string             `json:"restaurant_name"`
	Items             []OrderItem        `json:"items"`
	Subtotal          decimal.Decimal    `json:"subtotal"`
	Taxes             decimal.Decimal    `json:"taxes"`
	DeliveryFee       decimal.Decimal    `json:"delivery_fee"`
	Total             decimal.Decimal    `json:"total"`
	Address           string             `json:"address"`
	PaymentMethod     string             `json:"payment_method"`
	Status            orderstatus.Status `json:"status"`
	CreatedAt         time.Time          `json:"created_at"`
	EstimatedDelivery time.Time          `json:"estimated_delivery"`
}

type StatusView struct {
	OrderID string             `json:"order_id"`
	Status  orderstatus.Status `json:"status"`
	orderstatus.Info
}

// OrderEvent is published to Kafka whenever an order is created.
type OrderEvent struct {
	Type         string          `json:"type"`
	OrderID      string          `json:"order_id"`
	UserID       string          `json:"user_id"`
	RestaurantID string          `json:"restaurant_id"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
	Timestamp    time.Time       `json:"timestamp"`
}
