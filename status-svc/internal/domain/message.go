package domain

import "time"

const TypeStatusUpdate = "status_update"

// StatusMessage is sent by the order-management system whenever an order moves.
type StatusMessage struct {
	Type      string    `json:"type"`
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
