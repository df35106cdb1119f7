// Package checkout implements the two-state order flow around the cart:
// Active, where the cart may be mutated and checkout is available, and
// Completed, entered by confirming a non-empty cart.
package checkout

import (
	"sync"
	"time"

	"github.com/go-faster/errors"

	"github.com/storefront-go/storefront/internal/domain/cart"
	"github.com/storefront-go/storefront/internal/domain/pricing"
)

// Sentinel errors for order confirmation.
var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrOrderCompleted = errors.New("order already completed")
)

// State is the order flow state.
type State string

const (
	// StateActive allows cart mutation; checkout is available when the cart
	// is non-empty.
	StateActive State = "active"
	// StateCompleted means the cart has been atomically cleared by a confirm
	// action. No further action is possible on the completed order.
	StateCompleted State = "completed"
)

// Summary is the snapshot taken at the moment of confirmation. Confirming an
// order creates no record anywhere else: this summary exists only for the
// thank-you display and is discarded when the flow resumes.
type Summary struct {
	Lines       int
	Units       int
	Totals      pricing.Totals
	ConfirmedAt time.Time
}

// Flow owns the order lifecycle for a single cart.
type Flow struct {
	cart *cart.Cart
	now  func() time.Time

	mu    sync.Mutex
	state State
	last  *Summary
}

// NewFlow creates an Active flow around the given cart.
func NewFlow(c *cart.Cart) *Flow {
	return &Flow{
		cart:  c,
		now:   time.Now,
		state: StateActive,
	}
}

// State returns the current flow state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Confirm places the order: it atomically drains the cart, snapshots the
// final totals, and transitions to Completed. There is no rollback path and
// no downstream side effect.
//
// Confirming an empty cart returns ErrEmptyCart; confirming while Completed
// returns ErrOrderCompleted. In both cases the cart is left unchanged.
func (f *Flow) Confirm() (Summary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateCompleted {
		return Summary{}, ErrOrderCompleted
	}

	items := f.cart.Drain()
	if len(items) == 0 {
		return Summary{}, ErrEmptyCart
	}
	summary := Summary{
		Lines:       len(items),
		Units:       pricing.Units(items),
		Totals:      pricing.Calculate(items),
		ConfirmedAt: f.now(),
	}
	f.state = StateCompleted
	f.last = &summary

	return summary, nil
}

// Resume returns the flow to Active with the (already empty) cart, ready for
// the next order. The previous summary is discarded.
func (f *Flow) Resume() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateActive
	f.last = nil
}

// Last returns the summary of the completed order, if any.
func (f *Flow) Last() (Summary, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.last == nil {
		return Summary{}, false
	}
	return *f.last, true
}
