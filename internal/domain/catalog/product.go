// Package catalog defines the read-only product catalog contract and the
// wire codec for the remote catalog's JSON payload.
package catalog

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/storefront-go/storefront/internal/domain/cart"
)

// ErrUnavailable is the single opaque condition every transport or decode
// failure collapses into. The presentation layer shows one terminal
// "fetch failed" state; it never sees partial product lists.
var ErrUnavailable = errors.New("catalog unavailable")

// Product is a catalog item as offered to the storefront.
type Product struct {
	ID    int
	Title string
	Price decimal.Decimal
	// DiscountPercent is in [0,100). Out-of-range values are discarded at
	// decode time, so zero always means "no discount".
	DiscountPercent decimal.Decimal
	Thumbnail       string

	Description string
	Rating      float64
	Stock       int
	Brand       string
	Category    string
	Images      []string
}

// LineItem converts the product into a cart line with an implicit quantity
// of 1, the quantity every fetched product carries when first offered to the
// cart.
func (p Product) LineItem() cart.LineItem {
	return cart.LineItem{
		ID:              p.ID,
		Title:           p.Title,
		Price:           p.Price,
		DiscountPercent: p.DiscountPercent,
		Thumbnail:       p.Thumbnail,
		Quantity:        1,
	}
}

// DiscountedPrice returns the unit price after the product's discount,
// rounded to two decimal places for display.
func (p Product) DiscountedPrice() decimal.Decimal {
	if !p.DiscountPercent.IsPositive() {
		return p.Price.Round(2)
	}
	factor := decimal.NewFromInt(1).Sub(p.DiscountPercent.Div(decimal.NewFromInt(100)))
	return p.Price.Mul(factor).Round(2)
}

// Source is a read-only product catalog: one read, no parameters, no
// pagination. Implementations must wrap every failure into ErrUnavailable.
type Source interface {
	Fetch(ctx context.Context) ([]Product, error)
}
