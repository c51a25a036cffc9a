package service

import (
	"fastfoodz/order-svc/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	TaxRate               = decimal.RequireFromString("0.05")
	FreeDeliveryThreshold = decimal.NewFromInt(200)
	StandardDeliveryFee   = decimal.NewFromInt(40)
)

func Subtotal(lines []domain.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

func Taxes(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(TaxRate).Round(2)
}

func DeliveryFee(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(FreeDeliveryThreshold) {
		return decimal.Zero
	}
	return StandardDeliveryFee
}

// Price computes the full summary of a cart. Nothing is cached.
func Price(cart domain.Cart) domain.Summary {
	subtotal := Subtotal(cart.Lines)
	taxes := Taxes(subtotal)
	fee := DeliveryFee(subtotal)

	count := 0
	for _, l := range cart.Lines {
		count += l.Quantity
	}

	return domain.Summary{
		RestaurantID:   cart.RestaurantID,
		RestaurantName: cart.RestaurantName,
		Lines:          append([]domain.CartLine{}, cart.Lines...),
		ItemCount:      count,
		Subtotal:       subtotal,
		Taxes:          taxes,
		DeliveryFee:    fee,
		Total:          subtotal.Add(taxes).Add(fee),
	}
}
