package cart

// Action is the closed set of cart mutations. Each variant is a concrete
// type consumed by a single exhaustive transition in Cart.Apply, so adding
// a variant forces every dispatch site to be revisited.
type Action interface {
	isAction()
}

// AddItem merges Item into the cart: an existing line with the same product
// ID has its quantity increased by Item.Quantity (minimum 1), otherwise a new
// line is appended.
type AddItem struct {
	Item LineItem
}

// SetQuantity replaces the quantity of the line identified by ID. Ignored
// when Quantity < 1 or no such line exists.
type SetQuantity struct {
	ID       int
	Quantity int
}

// RemoveItem deletes the line identified by ID. Ignored when absent.
type RemoveItem struct {
	ID int
}

// Clear empties the cart.
type Clear struct{}

func (AddItem) isAction()     {}
func (SetQuantity) isAction() {}
func (RemoveItem) isAction()  {}
func (Clear) isAction()       {}
