// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Slot is a named string value with an expiration, scoped to one client
// session. Redis backs it in production; tests use an in-memory fake.
type Slot interface {
	Read(ctx context.Context, name string) (value string, ok bool, err error)
	Write(ctx context.Context, name, value string, ttl time.Duration) error
	Delete(ctx context.Context, name string) error
}

// CountListener is notified with the cart's total quantity after every save,
// so item-count badges stay consistent without a page reload.
type CountListener func(cartID string, count int)

// Store serializes carts to and from the persisted slot. Every save rewrites
// the full cart and restarts the retention window.
type Store struct {
	slot      Slot
	retention time.Duration
	logger    *logrus.Logger
	listeners []CountListener
}

// NewStore creates a new cart store
func NewStore(slot Slot, retention time.Duration, logger *logrus.Logger) *Store {
	return &Store{
		slot:      slot,
		retention: retention,
		logger:    logger,
	}
}

// OnCountChange registers a listener invoked after every save and clear.
// Registration is expected at wiring time, before the store is used.
func (s *Store) OnCountChange(fn CountListener) {
	s.listeners = append(s.listeners, fn)
}

func (s *Store) slotName(cartID string) string {
	return fmt.Sprintf("cart:session:%s", cartID)
}

// Load reads the persisted cart. An absent, expired, or malformed slot loads
// as an empty cart; no failure is surfaced to the caller.
func (s *Store) Load(ctx context.Context, cartID string) Cart {
	raw, ok, err := s.slot.Read(ctx, s.slotName(cartID))
	if err != nil {
		s.logger.WithError(err).WithField("cart_id", cartID).Debug("cart slot read failed, treating as empty")
		return Cart{}
	}
	if !ok {
		return Cart{}
	}

	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.WithError(err).WithField("cart_id", cartID).Debug("malformed cart payload, treating as empty")
		return Cart{}
	}

	return sanitize(items)
}

// sanitize drops lines that violate the cart invariants: quantities below
// one and duplicate product ids (first occurrence wins).
func sanitize(items []LineItem) Cart {
	cart := make(Cart, 0, len(items))
	seen := make(map[uint]bool, len(items))
	for _, item := range items {
		if item.Qty < 1 || seen[item.ProductID] {
			continue
		}
		seen[item.ProductID] = true
		cart = append(cart, item)
	}
	return cart
}

// Save persists the full cart with the retention window restarted from now,
// then notifies count listeners.
func (s *Store) Save(ctx context.Context, cartID string, c Cart) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := s.slot.Write(ctx, s.slotName(cartID), string(payload), s.retention); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}

	s.notify(cartID, c.ItemCount())
	return nil
}

// Clear removes the persisted cart entirely.
func (s *Store) Clear(ctx context.Context, cartID string) error {
	if err := s.slot.Delete(ctx, s.slotName(cartID)); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	s.notify(cartID, 0)
	return nil
}

func (s *Store) notify(cartID string, count int) {
	for _, fn := range s.listeners {
		fn(cartID, count)
	}
}
