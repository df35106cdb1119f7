package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// updateCart handles keys on the cart page.
func (m Model) updateCart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.session.Items()

	switch msg.String() {
	case "up", "k":
		if m.cartCursor > 0 {
			m.cartCursor--
		}
	case "down", "j":
		if m.cartCursor < len(items)-1 {
			m.cartCursor++
		}
	case "+", "right":
		if m.cartCursor < len(items) {
			line := items[m.cartCursor]
			m.session.SetQuantity(line.ID, line.Quantity+1)
		}
	case "-", "left":
		if m.cartCursor < len(items) {
			// Reducing below 1 is ignored by the store; removal is explicit.
			line := items[m.cartCursor]
			m.session.SetQuantity(line.ID, line.Quantity-1)
		}
	case "x", "d":
		if m.cartCursor < len(items) {
			m.session.Remove(items[m.cartCursor].ID)
			if m.cartCursor > 0 {
				m.cartCursor--
			}
		}
	case "y", "enter":
		summary, err := m.session.Confirm()
		if err != nil {
			// Confirming an empty cart stays on this page; the empty state
			// is already visible.
			return m, nil
		}
		m.lastOrder = summary
		m.page = pageThanks
	case "esc", "tab", "p":
		m.page = pageProducts
	}
	return m, nil
}

// viewCart renders the cart lines and the order summary.
func (m Model) viewCart() string {
	items := m.session.Items()

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Shopping Cart"))
	b.WriteString("\n")

	if len(items) == 0 {
		b.WriteString("Your cart is empty\n")
		b.WriteString(m.styles.Muted.Render("Looks like you haven't added any items to your cart yet."))
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("p browse products · q quit"))
		b.WriteString("\n")
		return b.String()
	}

	for i, line := range items {
		cursor := "  "
		if i == m.cartCursor {
			cursor = m.styles.Cursor.Render("> ")
		}

		price := m.styles.Price.Render("$" + line.Price.StringFixed(2))
		if line.DiscountPercent.IsPositive() {
			discounted := line.Price.Mul(
				one.Sub(line.DiscountPercent.Div(hundred)),
			).Round(2)
			price = m.styles.Struck.Render("$"+line.Price.StringFixed(2)) + " " +
				m.styles.Discount.Render("$"+discounted.StringFixed(2)+" ("+line.DiscountPercent.String()+"% off)")
		}

		b.WriteString(fmt.Sprintf("%s%s  %s  × %d\n",
			cursor, m.styles.Title.Render(line.Title), price, line.Quantity))
	}

	totals := m.session.Totals()
	units := m.session.Units()

	var s strings.Builder
	s.WriteString(m.styles.Title.Render("Order Summary"))
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("Subtotal (%d items):  $%s\n", units, totals.Subtotal.StringFixed(2)))
	if totals.Savings.IsPositive() {
		s.WriteString(m.styles.Savings.Render(fmt.Sprintf("Total Savings:       -$%s", totals.Savings.StringFixed(2))))
		s.WriteString("\n")
	}
	s.WriteString(m.styles.Total.Render("Total After Discount: $" + totals.DiscountedTotal.StringFixed(2)))

	b.WriteString("\n")
	b.WriteString(m.styles.Summary.Render(s.String()))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("↑/↓ move · +/- quantity · x remove · enter confirm order · esc back"))
	b.WriteString("\n")
	return b.String()
}

// viewThanks renders the completed-order page.
func (m Model) viewThanks() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Thank You for Your Order!"))
	b.WriteString("\n")
	b.WriteString("Your order has been placed successfully.\n\n")
	b.WriteString(fmt.Sprintf("Items:  %d\n", m.lastOrder.Units))
	b.WriteString(fmt.Sprintf("Total:  $%s\n", m.lastOrder.Totals.DiscountedTotal.StringFixed(2)))
	if m.lastOrder.Totals.Savings.IsPositive() {
		b.WriteString(m.styles.Savings.Render("You saved $" + m.lastOrder.Totals.Savings.StringFixed(2)))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("press any key to continue shopping"))
	b.WriteString("\n")
	return b.String()
}
