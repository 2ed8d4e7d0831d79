// internal/domain/cart/entity.go
package cart

// LineItem is a single (product, quantity) pair. Within a Cart there is at
// most one LineItem per product id, and Qty is always >= 1.
type LineItem struct {
	ProductID uint `json:"id"`
	Qty       int  `json:"qty"`
}

// Cart is an ordered sequence of line items; insertion order is display
// order. The persisted form is the JSON encoding of the slice.
type Cart []LineItem

// ItemCount returns the sum of all quantities (the badge value).
func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c {
		count += item.Qty
	}
	return count
}

// indexOf returns the position of the line for productID, or -1.
func (c Cart) indexOf(productID uint) int {
	for i, item := range c {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

// Totals represents calculated cart totals in cents. Totals are derived on
// every read and never persisted, so they cannot go stale against the
// catalog within a session.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}
