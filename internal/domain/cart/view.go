// internal/domain/cart/view.go
package cart

import "fmt"

// ViewState is one of the two observable cart page states.
type ViewState string

const (
	// StateEmpty means the cart has zero resolvable lines: the page shows
	// the empty-cart message and no totals block.
	StateEmpty ViewState = "empty"
	// StatePopulated means the page shows one row per resolvable line plus
	// totals and the checkout affordance.
	StatePopulated ViewState = "populated"
)

// Row is one rendered cart line.
type Row struct {
	ProductID uint   `json:"product_id"`
	Title     string `json:"title"`
	Image     string `json:"image"`
	DetailURL string `json:"detail_url"`
	Category  string `json:"category"`
	UnitPrice string `json:"unit_price"`
	Qty       int    `json:"qty"`
	Subtotal  string `json:"subtotal"`
}

// TotalsView is the formatted totals block.
type TotalsView struct {
	Subtotal string `json:"subtotal"`
	TaxLabel string `json:"tax_label"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

// View is the complete cart page view-model. It carries everything the
// template needs; the presentation layer adds no computation of its own.
type View struct {
	State       ViewState  `json:"state"`
	Rows        []Row      `json:"rows"`
	Totals      TotalsView `json:"totals"`
	ItemCount   int        `json:"item_count"`
	CheckoutURL string     `json:"checkout_url"`
}

// BuildView reconstructs the cart page view-model from current cart state.
// The view is rebuilt in full on every call; there is no incremental
// patching. Lines whose product no longer resolves in the catalog are
// skipped, matching ComputeTotals.
func BuildView(c Cart, cat Catalog, taxRatePercent int) View {
	rows := make([]Row, 0, len(c))
	for _, item := range c {
		product, ok := cat.ProductByID(item.ProductID)
		if !ok {
			continue
		}
		rows = append(rows, Row{
			ProductID: product.ID,
			Title:     product.Title,
			Image:     product.Image,
			DetailURL: fmt.Sprintf("/products/%d", product.ID),
			Category:  product.CategoryName(),
			UnitPrice: FormatCents(product.Price),
			Qty:       item.Qty,
			Subtotal:  FormatCents(product.Price * int64(item.Qty)),
		})
	}

	if len(rows) == 0 {
		// The badge counts every stored line, resolvable or not, so it stays
		// consistent with the count endpoint even when the page shows the
		// empty state.
		return View{State: StateEmpty, Rows: rows, ItemCount: c.ItemCount()}
	}

	totals := ComputeTotals(c, cat, taxRatePercent)
	return View{
		State: StatePopulated,
		Rows:  rows,
		Totals: TotalsView{
			Subtotal: FormatCents(totals.Subtotal),
			TaxLabel: fmt.Sprintf("Tax (%d%%)", taxRatePercent),
			Tax:      FormatCents(totals.Tax),
			Total:    FormatCents(totals.Total),
		},
		ItemCount:   c.ItemCount(),
		CheckoutURL: "/checkout",
	}
}

// BuildView renders the view-model against the service's catalog and tax
// rate.
func (s *Service) BuildView(c Cart) View {
	return BuildView(c, s.catalog, s.taxRatePercent)
}

// FormatCents formats a non-negative cent amount with two decimals.
func FormatCents(v int64) string {
	return fmt.Sprintf("%d.%02d", v/100, v%100)
}
