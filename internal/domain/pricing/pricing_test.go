package pricing

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront-go/storefront/internal/domain/cart"
)

func item(price, discount string, quantity int) cart.LineItem {
	return cart.LineItem{
		ID:              gofakeit.Number(1, 1_000_000),
		Title:           gofakeit.ProductName(),
		Price:           decimal.RequireFromString(price),
		DiscountPercent: decimal.RequireFromString(discount),
		Quantity:        quantity,
	}
}

func TestCalculate_EmptyCart(t *testing.T) {
	for _, items := range [][]cart.LineItem{nil, {}} {
		totals := Calculate(items)
		assert.True(t, totals.Subtotal.IsZero())
		assert.True(t, totals.DiscountedTotal.IsZero())
		assert.True(t, totals.Savings.IsZero())
		assert.True(t, totals.IsZero())
	}
}

func TestCalculate_SingleDiscountedItem(t *testing.T) {
	// {price: 20.00, discount: 25%, quantity: 2} -> 40.00 / 30.00 / 10.00.
	totals := Calculate([]cart.LineItem{item("20.00", "25", 2)})

	assert.Equal(t, "40.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "30.00", totals.DiscountedTotal.StringFixed(2))
	assert.Equal(t, "10.00", totals.Savings.StringFixed(2))
}

func TestCalculate_NoDiscountMeansNoSavings(t *testing.T) {
	totals := Calculate([]cart.LineItem{
		item("10.00", "0", 2),
		item("5.50", "0", 1),
	})

	assert.Equal(t, "25.50", totals.Subtotal.StringFixed(2))
	assert.True(t, totals.Subtotal.Equal(totals.DiscountedTotal))
	assert.True(t, totals.Savings.IsZero())
}

func TestCalculate_ZeroDiscountEqualsAbsentDiscount(t *testing.T) {
	zeroed := Calculate([]cart.LineItem{item("13.37", "0", 3)})
	absent := Calculate([]cart.LineItem{{
		ID:       1,
		Price:    decimal.RequireFromString("13.37"),
		Quantity: 3,
	}})

	assert.True(t, zeroed.Subtotal.Equal(absent.Subtotal))
	assert.True(t, zeroed.DiscountedTotal.Equal(absent.DiscountedTotal))
	assert.True(t, zeroed.Savings.Equal(absent.Savings))
}

func TestCalculate_MixedCart(t *testing.T) {
	totals := Calculate([]cart.LineItem{
		item("9.99", "7.17", 1),
		item("129.99", "25", 2),
		item("1.99", "0", 5),
	})

	// 9.99 + 259.98 + 9.95 = 279.92
	assert.Equal(t, "279.92", totals.Subtotal.StringFixed(2))
	// 9.2737... + 194.985 + 9.95 = 214.2087... -> 214.21
	assert.Equal(t, "214.21", totals.DiscountedTotal.StringFixed(2))
	assert.Equal(t, "65.71", totals.Savings.StringFixed(2))
}

// The three displayed figures must never drift apart: savings is exactly the
// difference of the two rounded totals, and discounting can never exceed the
// subtotal.
func TestCalculate_NoRoundingDrift(t *testing.T) {
	gofakeit.Seed(0)

	for range 500 {
		var items []cart.LineItem
		for range gofakeit.Number(1, 8) {
			items = append(items, item(
				fmt.Sprintf("%.2f", gofakeit.Price(0.01, 2000)),
				fmt.Sprintf("%.2f", gofakeit.Float64Range(0, 99.99)),
				gofakeit.Number(1, 9),
			))
		}

		totals := Calculate(items)
		require.True(t, totals.DiscountedTotal.LessThanOrEqual(totals.Subtotal),
			"discounted %s > subtotal %s", totals.DiscountedTotal, totals.Subtotal)
		require.True(t, totals.Savings.Equal(totals.Subtotal.Sub(totals.DiscountedTotal)),
			"savings %s != %s - %s", totals.Savings, totals.Subtotal, totals.DiscountedTotal)
		require.False(t, totals.Savings.IsNegative())
	}
}

func TestUnits(t *testing.T) {
	assert.Equal(t, 0, Units(nil))
	assert.Equal(t, 8, Units([]cart.LineItem{
		item("1.00", "0", 3),
		item("2.00", "10", 5),
	}))
}
