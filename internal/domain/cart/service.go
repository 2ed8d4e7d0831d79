// internal/domain/cart/service.go
package cart

import (
	"context"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// Catalog is the read-only product lookup the engine resolves line items
// against.
type Catalog interface {
	ProductByID(id uint) (catalog.Product, bool)
}

// Service handles cart business logic. Every mutation loads the current
// cart, applies one change, and persists the result; operations run to
// completion before returning.
type Service struct {
	store          *Store
	catalog        Catalog
	taxRatePercent int
	logger         *logrus.Logger
}

// NewService creates a new cart service
func NewService(store *Store, cat Catalog, taxRatePercent int, logger *logrus.Logger) *Service {
	return &Service{
		store:          store,
		catalog:        cat,
		taxRatePercent: taxRatePercent,
		logger:         logger,
	}
}

// Cart returns the current persisted cart.
func (s *Service) Cart(ctx context.Context, cartID string) Cart {
	return s.store.Load(ctx, cartID)
}

// AddItem adds qty units of a product to the cart. If a line for the product
// already exists its quantity is incremented, otherwise a new line is
// appended. A product id that does not resolve in the catalog is a no-op.
func (s *Service) AddItem(ctx context.Context, cartID string, productID uint, qty int) (Cart, error) {
	c := s.store.Load(ctx, cartID)

	if qty < 1 {
		return c, nil
	}
	if _, ok := s.catalog.ProductByID(productID); !ok {
		s.logger.WithField("product_id", productID).Debug("add to cart ignored, unknown product")
		return c, nil
	}

	if i := c.indexOf(productID); i >= 0 {
		c[i].Qty += qty
	} else {
		c = append(c, LineItem{ProductID: productID, Qty: qty})
	}

	if err := s.store.Save(ctx, cartID, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveItem drops the line for productID, if present.
func (s *Service) RemoveItem(ctx context.Context, cartID string, productID uint) (Cart, error) {
	c := s.store.Load(ctx, cartID)

	i := c.indexOf(productID)
	if i < 0 {
		return c, nil
	}
	c = append(c[:i], c[i+1:]...)

	if err := s.store.Save(ctx, cartID, c); err != nil {
		return nil, err
	}
	return c, nil
}

// SetQuantity sets the quantity of an existing line. rawQty is parsed as a
// base-10 integer; anything non-numeric or below one leaves the cart
// untouched and persists nothing.
func (s *Service) SetQuantity(ctx context.Context, cartID string, productID uint, rawQty string) (Cart, error) {
	c := s.store.Load(ctx, cartID)

	qty, err := strconv.Atoi(strings.TrimSpace(rawQty))
	if err != nil || qty < 1 {
		s.logger.WithFields(logrus.Fields{
			"product_id": productID,
			"raw_qty":    rawQty,
		}).Debug("quantity update rejected")
		return c, nil
	}

	i := c.indexOf(productID)
	if i < 0 {
		return c, nil
	}
	c[i].Qty = qty

	if err := s.store.Save(ctx, cartID, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Clear removes all items from the cart.
func (s *Service) Clear(ctx context.Context, cartID string) error {
	return s.store.Clear(ctx, cartID)
}

// ComputeTotals derives subtotal, tax, and grand total from the cart against
// the catalog. Lines whose product id no longer resolves are excluded, not
// treated as errors. The function is pure: same cart and catalog, same
// totals.
func (s *Service) ComputeTotals(c Cart) Totals {
	return ComputeTotals(c, s.catalog, s.taxRatePercent)
}

// ComputeTotals is the catalog-resolving totals computation behind
// Service.ComputeTotals.
func ComputeTotals(c Cart, cat Catalog, taxRatePercent int) Totals {
	var subtotal int64
	for _, item := range c {
		product, ok := cat.ProductByID(item.ProductID)
		if !ok {
			continue
		}
		subtotal += product.Price * int64(item.Qty)
	}

	// Round half up to whole cents.
	tax := (subtotal*int64(taxRatePercent) + 50) / 100

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}
