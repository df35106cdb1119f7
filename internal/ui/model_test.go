package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront-go/storefront/internal/catalog/embedded"
	"github.com/storefront-go/storefront/internal/domain/catalog"
	"github.com/storefront-go/storefront/internal/session"
)

func newTestModel(t *testing.T) (Model, *session.Session) {
	t.Helper()

	sess := session.NewManager().New()
	m := New(context.Background(), sess, embedded.New(), nil)

	products, err := embedded.New().Fetch(context.Background())
	require.NoError(t, err)

	next, _ := m.Update(productsLoadedMsg(products))
	return next.(Model), sess
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModel_LoadedCatalogShowsProducts(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, pageProducts, m.page)
	view := m.View()
	assert.Contains(t, view, "Products")
	assert.Contains(t, view, m.products[0].Title)
}

func TestModel_FetchFailure(t *testing.T) {
	sess := session.NewManager().New()
	m := New(context.Background(), sess, embedded.New(), nil)

	next := update(t, m, fetchFailedMsg{err: catalog.ErrUnavailable})
	assert.Equal(t, pageFetchFailed, next.page)
	assert.Contains(t, next.View(), "Failed to fetch products")

	// Retry goes back to loading and issues a fetch command.
	retried, cmd := next.Update(keyRune('r'))
	assert.Equal(t, pageLoading, retried.(Model).page)
	assert.NotNil(t, cmd)
}

func TestModel_AddToCartFromCatalog(t *testing.T) {
	m, sess := newTestModel(t)

	m = update(t, m, keyRune('a'))
	m = update(t, m, keyRune('a'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, keyRune('a'))

	items := sess.Items()
	require.Len(t, items, 2, "repeated adds of one product must merge")
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestModel_CartQuantityAndRemoval(t *testing.T) {
	m, sess := newTestModel(t)
	m = update(t, m, keyRune('a'))
	m = update(t, m, keyRune('c'))
	require.Equal(t, pageCart, m.page)

	m = update(t, m, keyRune('+'))
	m = update(t, m, keyRune('+'))
	assert.Equal(t, 3, sess.Items()[0].Quantity)

	m = update(t, m, keyRune('-'))
	assert.Equal(t, 2, sess.Items()[0].Quantity)

	// Going below 1 is ignored by the store.
	m = update(t, m, keyRune('-'))
	m = update(t, m, keyRune('-'))
	assert.Equal(t, 1, sess.Items()[0].Quantity)

	m = update(t, m, keyRune('x'))
	assert.Empty(t, sess.Items())
	assert.Contains(t, m.View(), "Your cart is empty")
}

func TestModel_CheckoutRoundTrip(t *testing.T) {
	m, sess := newTestModel(t)
	m = update(t, m, keyRune('a'))
	m = update(t, m, keyRune('c'))

	view := m.View()
	assert.Contains(t, view, "Order Summary")
	assert.Contains(t, view, "Subtotal")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, pageThanks, m.page)
	assert.Contains(t, m.View(), "Thank You for Your Order!")
	assert.Empty(t, sess.Items())
	assert.True(t, sess.Totals().IsZero())

	// Any key resumes browsing with an empty, active cart.
	m = update(t, m, keyRune(' '))
	assert.Equal(t, pageProducts, m.page)
	assert.Empty(t, sess.Items())
}

func TestModel_ConfirmOnEmptyCartStaysPut(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, keyRune('c'))
	require.Equal(t, pageCart, m.page)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, pageCart, m.page)
}
