package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// updateProducts handles keys on the catalog page.
func (m Model) updateProducts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.products)-1 {
			m.cursor++
		}
	case "enter", "a":
		if len(m.products) > 0 {
			// Every product is offered to the cart with quantity 1; repeated
			// adds merge into the existing line.
			m.session.Add(m.products[m.cursor].LineItem())
		}
	case "c", "tab":
		m.cartCursor = 0
		m.page = pageCart
	}
	return m, nil
}

// viewProducts renders the catalog with the running cart size.
func (m Model) viewProducts() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Products"))
	b.WriteString("\n")

	for i, p := range m.products {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("> ")
		}

		price := m.styles.Price.Render("$" + p.Price.StringFixed(2))
		if p.DiscountPercent.IsPositive() {
			price = m.styles.Struck.Render("$"+p.Price.StringFixed(2)) + " " +
				m.styles.Price.Render("$"+p.DiscountedPrice().StringFixed(2)) + " " +
				m.styles.Discount.Render(p.DiscountPercent.String()+"% off")
		}

		b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, m.styles.Title.Render(p.Title), price))
		if i == m.cursor && p.Description != "" {
			b.WriteString("    " + m.styles.Muted.Render(p.Description) + "\n")
		}
	}

	units := m.session.Units()
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("Cart: %d item(s)", units)))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("↑/↓ move · enter add to cart · c cart · q quit"))
	b.WriteString("\n")
	return b.String()
}
