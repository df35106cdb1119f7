// Package cart implements the in-memory cart store: an insertion-ordered
// collection of line items keyed by product ID, mutated through a closed set
// of actions.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"
)

// LineItem represents one product's presence in the cart.
type LineItem struct {
	ID    int
	Title string
	Price decimal.Decimal
	// DiscountPercent is a percentage in [0,100). Zero means no discount.
	DiscountPercent decimal.Decimal
	// Thumbnail is an opaque image reference, never interpreted here.
	Thumbnail string
	Quantity  int
}

// Cart holds the authoritative set of line items. Product IDs are unique
// within the cart and insertion order is preserved. All mutations are
// serialized through an internal mutex, so a background goroutine may
// dispatch actions without breaking atomicity.
//
// Every mutation is total: invalid input leaves the cart unchanged instead
// of returning an error. This tolerant behaviour is intentional.
type Cart struct {
	mu    sync.Mutex
	items []LineItem
	index map[int]int // product ID -> position in items
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{index: make(map[int]int)}
}

// Apply executes a single action against the cart.
func (c *Cart) Apply(a Action) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apply(a)
}

// apply dispatches the action. Must be called with c.mu held.
func (c *Cart) apply(a Action) {
	switch act := a.(type) {
	case AddItem:
		c.addItem(act.Item)
	case SetQuantity:
		c.setQuantity(act.ID, act.Quantity)
	case RemoveItem:
		c.removeItem(act.ID)
	case Clear:
		c.clear()
	}
}

// addItem merges the item into an existing line with the same ID, increasing
// its quantity by the requested amount, or appends a new line. A requested
// quantity below 1 counts as 1.
func (c *Cart) addItem(item LineItem) {
	qty := item.Quantity
	if qty < 1 {
		qty = 1
	}
	if pos, ok := c.index[item.ID]; ok {
		c.items[pos].Quantity += qty
		return
	}
	item.Quantity = qty
	c.index[item.ID] = len(c.items)
	c.items = append(c.items, item)
}

// setQuantity replaces the quantity of the line with the given ID. Quantities
// below 1 are ignored: reducing a line to zero goes through RemoveItem.
func (c *Cart) setQuantity(id, quantity int) {
	if quantity < 1 {
		return
	}
	if pos, ok := c.index[id]; ok {
		c.items[pos].Quantity = quantity
	}
}

// removeItem deletes the line with the given ID, if present.
func (c *Cart) removeItem(id int) {
	pos, ok := c.index[id]
	if !ok {
		return
	}
	c.items = append(c.items[:pos], c.items[pos+1:]...)
	delete(c.index, id)
	for i := pos; i < len(c.items); i++ {
		c.index[c.items[i].ID] = i
	}
}

// clear empties the cart unconditionally.
func (c *Cart) clear() {
	c.items = nil
	c.index = make(map[int]int)
}

// Add merges the item into the cart. See AddItem.
func (c *Cart) Add(item LineItem) {
	c.Apply(AddItem{Item: item})
}

// SetQuantity replaces a line's quantity. See SetQuantity.
func (c *Cart) SetQuantity(id, quantity int) {
	c.Apply(SetQuantity{ID: id, Quantity: quantity})
}

// Remove deletes a line by product ID. See RemoveItem.
func (c *Cart) Remove(id int) {
	c.Apply(RemoveItem{ID: id})
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Apply(Clear{})
}

// Items returns a snapshot of the cart's line items in insertion order.
// The returned slice is a copy and safe to retain.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of line items (distinct products) in the cart.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Drain atomically snapshots the cart's line items and empties it. It is the
// primitive behind order confirmation: the snapshot and the clear happen
// under one lock, so no concurrent dispatch can observe a half-confirmed cart.
func (c *Cart) Drain() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.items
	c.items = nil
	c.index = make(map[int]int)
	return out
}
