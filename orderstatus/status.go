// Package orderstatus defines the order lifecycle shared by order-svc and status-svc.
package orderstatus

import (
	"errors"
	"fmt"
)

type Status string

const (
	Placed         Status = "placed"
	Confirmed      Status = "confirmed"
	Preparing      Status = "preparing"
	OutForDelivery Status = "out_for_delivery"
	Delivered      Status = "delivered"
	Cancelled      Status = "cancelled"
)

// Initial is the status every new order starts in.
const Initial = Placed

var ErrInvalidTransition = errors.New("invalid order status transition")

var next = map[Status]Status{
	Placed:         Confirmed,
	Confirmed:      Preparing,
	Preparing:      OutForDelivery,
	OutForDelivery: Delivered,
}

type Info struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var info = map[Status]Info{
	Placed:         {Label: "Order Placed", Color: "info"},
	Confirmed:      {Label: "Confirmed", Color: "success"},
	Preparing:      {Label: "Preparing", Color: "warning"},
	OutForDelivery: {Label: "Out for Delivery", Color: "info"},
	Delivered:      {Label: "Delivered", Color: "success"},
	Cancelled:      {Label: "Cancelled", Color: "error"},
}

func Parse(s string) (Status, error) {
	st := Status(s)
	if _, ok := info[st]; !ok {
		return "", fmt.Errorf("unknown order status %q", s)
	}
	return st, nil
}

func (s Status) Terminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransition reports whether an order may move from s to to. Orders only
// advance one step at a time; cancellation is allowed from any non-terminal state.
func (s Status) CanTransition(to Status) bool {
	if s.Terminal() {
		return false
	}
	if to == Cancelled {
		return true
	}
	return next[s] == to
}

func (s Status) Transition(to Status) (Status, error) {
	if !s.CanTransition(to) {
		return s, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, to)
	}
	return to, nil
}

// Info returns display metadata; unknown statuses get their raw value as label.
func (s Status) Info() Info {
	if i, ok := info[s]; ok {
		return i
	}
	return Info{Label: string(s), Color: "info"}
}
