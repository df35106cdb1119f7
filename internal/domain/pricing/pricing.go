// Package pricing computes the derived totals of a cart snapshot. Totals are
// never stored; callers recompute them on every read.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/storefront-go/storefront/internal/domain/cart"
)

var hundred = decimal.NewFromInt(100)

// Totals holds the three derived figures of a cart, each rounded to two
// decimal places for display.
type Totals struct {
	// Subtotal is the sum of price * quantity before discounts.
	Subtotal decimal.Decimal
	// DiscountedTotal is the subtotal after per-line discount percentages.
	DiscountedTotal decimal.Decimal
	// Savings is Subtotal - DiscountedTotal, computed from the rounded
	// figures so the three displayed values never disagree.
	Savings decimal.Decimal
}

// Calculate computes the totals for the given line items. It is a pure
// function: no side effects, no time or ordering dependence. An empty or nil
// snapshot yields exact zeros.
//
// DiscountPercent is assumed to be in [0,100); the catalog decode layer
// discards out-of-range values before they reach the cart.
func Calculate(items []cart.LineItem) Totals {
	subtotal := decimal.Zero
	discounted := decimal.Zero

	for _, item := range items {
		line := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)

		if item.DiscountPercent.IsPositive() {
			factor := decimal.NewFromInt(1).Sub(item.DiscountPercent.Div(hundred))
			discounted = discounted.Add(line.Mul(factor))
		} else {
			discounted = discounted.Add(line)
		}
	}

	// Round once, then derive savings from the rounded figures. Rounding the
	// three sums independently could make subtotal - discountedTotal visibly
	// disagree with the displayed savings.
	subtotal = subtotal.Round(2)
	discounted = discounted.Round(2)

	return Totals{
		Subtotal:        subtotal,
		DiscountedTotal: discounted,
		Savings:         subtotal.Sub(discounted),
	}
}

// IsZero reports whether all three figures are exactly zero.
func (t Totals) IsZero() bool {
	return t.Subtotal.IsZero() && t.DiscountedTotal.IsZero() && t.Savings.IsZero()
}

// Units returns the total number of units across the snapshot, the figure
// shown next to the subtotal ("Subtotal (N items)").
func Units(items []cart.LineItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}
