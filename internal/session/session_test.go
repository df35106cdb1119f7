package session

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/storefront-go/storefront/internal/domain/cart"
	"github.com/storefront-go/storefront/internal/domain/checkout"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func line(id int, price, discount string, quantity int) cart.LineItem {
	return cart.LineItem{
		ID:              id,
		Title:           "item",
		Price:           decimal.RequireFromString(price),
		DiscountPercent: decimal.RequireFromString(discount),
		Quantity:        quantity,
	}
}

func TestSession_ReadAPI(t *testing.T) {
	sess := NewManager().New()

	// A fresh cart reads as zero everywhere.
	assert.Empty(t, sess.Items())
	assert.True(t, sess.Totals().IsZero())
	assert.Equal(t, 0, sess.Units())
	assert.Equal(t, checkout.StateActive, sess.State())

	sess.Add(line(1, "20.00", "25", 2))
	sess.Add(line(2, "5.00", "0", 1))

	items := sess.Items()
	require.Len(t, items, 2)

	totals := sess.Totals()
	assert.Equal(t, "45.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "35.00", totals.DiscountedTotal.StringFixed(2))
	assert.Equal(t, "10.00", totals.Savings.StringFixed(2))
	assert.Equal(t, 3, sess.Units())
}

func TestSession_MutationsRouteToCart(t *testing.T) {
	sess := NewManager().New()

	sess.Add(line(1, "10.00", "0", 1))
	sess.SetQuantity(1, 4)
	assert.Equal(t, 4, sess.Items()[0].Quantity)

	sess.SetQuantity(1, 0)
	assert.Equal(t, 4, sess.Items()[0].Quantity, "quantity below 1 is ignored")

	sess.Remove(1)
	assert.Empty(t, sess.Items())

	sess.Add(line(2, "1.00", "0", 1))
	sess.Clear()
	assert.Empty(t, sess.Items())
}

func TestSession_ConfirmClearsAndCompletes(t *testing.T) {
	sess := NewManager().New()
	sess.Add(line(1, "20.00", "25", 2))

	summary, err := sess.Confirm()
	require.NoError(t, err)
	assert.Equal(t, checkout.StateCompleted, sess.State())

	// Re-reading the presentation API after confirmation yields zeros.
	assert.Empty(t, sess.Items())
	assert.True(t, sess.Totals().IsZero())

	got, ok := sess.LastOrder()
	require.True(t, ok)
	assert.Equal(t, summary, got)

	sess.Resume()
	assert.Equal(t, checkout.StateActive, sess.State())
}

func TestManager_IndependentCarts(t *testing.T) {
	m := NewManager()
	a := m.New()
	b := m.New()
	require.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, 2, m.Len())

	a.Add(line(1, "10.00", "0", 1))
	assert.Len(t, a.Items(), 1)
	assert.Empty(t, b.Items(), "sessions must not share cart state")

	got, ok := m.Get(a.ID())
	require.True(t, ok)
	assert.Same(t, a, got)

	m.End(a.ID())
	_, ok = m.Get(a.ID())
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())

	// Ending twice is a no-op.
	m.End(a.ID())
	assert.Equal(t, 1, m.Len())
}
