package cart_test

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// memorySlot is an in-memory Slot with an injectable clock, standing in for
// Redis so expiry can be tested without waiting.
type memorySlot struct {
	now     func() time.Time
	entries map[string]slotEntry
}

type slotEntry struct {
	value     string
	expiresAt time.Time
}

func newMemorySlot() *memorySlot {
	s := &memorySlot{entries: make(map[string]slotEntry)}
	s.now = time.Now
	return s
}

func (s *memorySlot) Read(_ context.Context, name string) (string, bool, error) {
	e, ok := s.entries[name]
	if !ok || s.now().After(e.expiresAt) {
		return "", false, nil
	}
	return e.value, true, nil
}

func (s *memorySlot) Write(_ context.Context, name, value string, ttl time.Duration) error {
	s.entries[name] = slotEntry{value: value, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *memorySlot) Delete(_ context.Context, name string) error {
	delete(s.entries, name)
	return nil
}

// fakeCatalog is a fixed product snapshot.
type fakeCatalog map[uint]catalog.Product

func (f fakeCatalog) ProductByID(id uint) (catalog.Product, bool) {
	p, ok := f[id]
	return p, ok
}

func product(id uint, title string, price int64, categoryName string) catalog.Product {
	return catalog.Product{
		ID:       id,
		Title:    title,
		Price:    price,
		Image:    "/images/test.jpg",
		IsActive: true,
		Category: catalog.Category{Name: categoryName},
	}
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

const taxRatePercent = 10

// newTestService wires a cart service over a memory slot and a fixed catalog.
func newTestService(slot cart.Slot, cat cart.Catalog) *cart.Service {
	store := cart.NewStore(slot, 7*24*time.Hour, quietLogger())
	return cart.NewService(store, cat, taxRatePercent, quietLogger())
}

func headphonesCatalog() fakeCatalog {
	return fakeCatalog{
		7: product(7, "Wireless Headphones", 2000, "Electronics"),
		9: product(9, "Bluetooth Speaker", 1500, "Electronics"),
	}
}
