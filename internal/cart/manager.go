// Package cart owns one client's in-memory line items and keeps the
// persistent snapshot in sync after every mutation.
package cart

import (
	"context"
	"errors"
	"log"

	"storefront-gateway/internal/domain"
)

type snapshotStore interface {
	LoadCart(ctx context.Context, clientID string) ([]domain.LineItem, error)
	SaveCart(ctx context.Context, clientID string, items []domain.LineItem) error
}

// Manager holds the cart for a single client. Not safe for concurrent use;
// each request builds its own Manager over the shared store.
type Manager struct {
	store    snapshotStore
	clientID string
	logger   *log.Logger
	items    []domain.LineItem
	onChange func(domain.Cart)
}

// New rehydrates the client's cart from the store. A missing snapshot
// starts an empty cart; any other load failure is logged and also starts
// empty rather than blocking the client.
func New(ctx context.Context, store snapshotStore, clientID string, logger *log.Logger) *Manager {
	m := &Manager{store: store, clientID: clientID, logger: logger}
	items, err := store.LoadCart(ctx, clientID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		logger.Printf("load cart for %s: %v", clientID, err)
	}
	m.items = items
	return m
}

// OnChange registers the display-refresh hook fired after every mutation.
func (m *Manager) OnChange(fn func(domain.Cart)) {
	m.onChange = fn
}

// Add increments the quantity of an existing line for the product, or
// appends a new quantity-1 line. Quantity is not capped by stock.
func (m *Manager) Add(ctx context.Context, productID int, name string, unitPrice float64) {
	for i := range m.items {
		if m.items[i].ProductID == productID {
			m.items[i].Quantity++
			m.changed(ctx)
			return
		}
	}
	m.items = append(m.items, domain.LineItem{
		ProductID: productID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
	})
	m.changed(ctx)
}

// Remove drops the line for the product. No-op when absent.
func (m *Manager) Remove(ctx context.Context, productID int) {
	kept := m.items[:0]
	for _, it := range m.items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	m.items = kept
	m.changed(ctx)
}

// SetQuantity updates a line in place. A quantity of zero or less behaves
// as Remove; an unknown product id is a silent no-op.
func (m *Manager) SetQuantity(ctx context.Context, productID, quantity int) {
	for i := range m.items {
		if m.items[i].ProductID == productID {
			if quantity <= 0 {
				m.Remove(ctx, productID)
				return
			}
			m.items[i].Quantity = quantity
			m.changed(ctx)
			return
		}
	}
}

// Clear empties the cart.
func (m *Manager) Clear(ctx context.Context) {
	m.items = nil
	m.changed(ctx)
}

// Items returns a copy of the current lines.
func (m *Manager) Items() []domain.LineItem {
	out := make([]domain.LineItem, len(m.items))
	copy(out, m.items)
	return out
}

// Snapshot returns the cart with derived totals computable by the caller.
func (m *Manager) Snapshot() domain.Cart {
	return domain.Cart{Items: m.Items()}
}

// Total recomputes the cart's price on demand.
func (m *Manager) Total() float64 {
	return domain.Cart{Items: m.items}.Total()
}

// ItemCount recomputes the total quantity on demand.
func (m *Manager) ItemCount() int {
	return domain.Cart{Items: m.items}.ItemCount()
}

// changed persists the full snapshot and notifies the display hook. A
// failed write is logged and the in-memory state stands; the storefront
// stays interactive.
func (m *Manager) changed(ctx context.Context) {
	if err := m.store.SaveCart(ctx, m.clientID, m.items); err != nil {
		m.logger.Printf("persist cart for %s: %v", m.clientID, err)
	}
	if m.onChange != nil {
		m.onChange(m.Snapshot())
	}
}
