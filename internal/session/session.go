// Package session owns the composition of one cart with its checkout flow
// and hands the presentation layer a primitive-typed API. Nothing here is a
// global: the Manager is created by the composition root, so several
// sessions (each with an independent cart) can coexist in one process.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/storefront-go/storefront/internal/domain/cart"
	"github.com/storefront-go/storefront/internal/domain/checkout"
	"github.com/storefront-go/storefront/internal/domain/pricing"
)

// Session bundles a cart and its order flow. All methods take and return
// primitives or domain values; no presentation types cross this boundary.
type Session struct {
	id   uuid.UUID
	cart *cart.Cart
	flow *checkout.Flow
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Add merges the item into the cart.
func (s *Session) Add(item cart.LineItem) {
	s.cart.Add(item)
}

// SetQuantity replaces a line's quantity; quantities below 1 are ignored.
func (s *Session) SetQuantity(id, quantity int) {
	s.cart.SetQuantity(id, quantity)
}

// Remove deletes a line by product ID.
func (s *Session) Remove(id int) {
	s.cart.Remove(id)
}

// Clear empties the cart.
func (s *Session) Clear() {
	s.cart.Clear()
}

// Items returns the cart's line items in insertion order.
func (s *Session) Items() []cart.LineItem {
	return s.cart.Items()
}

// Totals recomputes the derived totals from the current cart snapshot.
func (s *Session) Totals() pricing.Totals {
	return pricing.Calculate(s.cart.Items())
}

// Units returns the total unit count across the cart.
func (s *Session) Units() int {
	return pricing.Units(s.cart.Items())
}

// State returns the order flow state.
func (s *Session) State() checkout.State {
	return s.flow.State()
}

// Confirm places the order, atomically clearing the cart.
func (s *Session) Confirm() (checkout.Summary, error) {
	return s.flow.Confirm()
}

// Resume returns the flow to Active after a completed order.
func (s *Session) Resume() {
	s.flow.Resume()
}

// LastOrder returns the summary of the most recently completed order.
func (s *Session) LastOrder() (checkout.Summary, bool) {
	return s.flow.Last()
}

// Manager creates and tracks sessions by ID.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[uuid.UUID]*Session)}
}

// New creates a session with an empty cart and an Active flow.
func (m *Manager) New() *Session {
	c := cart.New()
	s := &Session{
		id:   uuid.New(),
		cart: c,
		flow: checkout.NewFlow(c),
	}

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	return s
}

// Get looks up a session by ID.
func (m *Manager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	return s, ok
}

// End removes a session. Ending an unknown session is a no-op.
func (m *Manager) End(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
