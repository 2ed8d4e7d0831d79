package cart_test

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/your-org/storefront-backend/internal/domain/cart"
)

func TestService_AddItem(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()

	c.Run("adds a new line and computes totals", func(c *qt.C) {
		svc := newTestService(newMemorySlot(), headphonesCatalog())

		got, err := svc.AddItem(ctx, "s", 7, 2)
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.DeepEquals, cart.Cart{{ProductID: 7, Qty: 2}})

		totals := svc.ComputeTotals(got)
		c.Assert(totals, qt.DeepEquals, cart.Totals{Subtotal: 4000, Tax: 400, Total: 4400})
	})

	c.Run("adding the same product merges into one line", func(c *qt.C) {
		svc := newTestService(newMemorySlot(), headphonesCatalog())

		_, err := svc.AddItem(ctx, "s", 7, 2)
		c.Assert(err, qt.IsNil)
		got, err := svc.AddItem(ctx, "s", 7, 3)
		c.Assert(err, qt.IsNil)

		c.Assert(got, qt.DeepEquals, cart.Cart{{ProductID: 7, Qty: 5}})
	})

	c.Run("quantity accumulates over any sequence of adds", func(c *qt.C) {
		svc := newTestService(newMemorySlot(), headphonesCatalog())

		sum := 0
		for _, q := range []int{1, 4, 2, 1, 7} {
			sum += q
			_, err := svc.AddItem(ctx, "s", 7, q)
			c.Assert(err, qt.IsNil)
		}

		got := svc.Cart(ctx, "s")
		c.Assert(got, qt.DeepEquals, cart.Cart{{ProductID: 7, Qty: sum}})
	})

	c.Run("insertion order is preserved", func(c *qt.C) {
		svc := newTestService(newMemorySlot(), headphonesCatalog())

		_, err := svc.AddItem(ctx, "s", 9, 1)
		c.Assert(err, qt.IsNil)
		_, err = svc.AddItem(ctx, "s", 7, 1)
		c.Assert(err, qt.IsNil)
		got, err := svc.AddItem(ctx, "s", 9, 1)
		c.Assert(err, qt.IsNil)

		c.Assert(got, qt.DeepEquals, cart.Cart{
			{ProductID: 9, Qty: 2},
			{ProductID: 7, Qty: 1},
		})
	})

	c.Run("unknown product id is a no-op", func(c *qt.C) {
		svc := newTestService(newMemorySlot(), headphonesCatalog())

		got, err := svc.AddItem(ctx, "s", 404, 1)
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.HasLen, 0)
		c.Assert(svc.Cart(ctx, "s"), qt.HasLen, 0)
	})

	c.Run("non-positive quantity is a no-op", func(c *qt.C) {
		svc := newTestService(newMemorySlot(), headphonesCatalog())

		got, err := svc.AddItem(ctx, "s", 7, 0)
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.HasLen, 0)
	})
}

func TestService_RemoveItem(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()

	c.Run("removing the only line empties the cart", func(c *qt.C) {
		svc := newTestService(newMemorySlot(), headphonesCatalog())

		_, err := svc.AddItem(ctx, "s", 7, 2)
		c.Assert(err, qt.IsNil)

		got, err := svc.RemoveItem(ctx, "s", 7)
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.HasLen, 0)

		view := svc.BuildView(got)
		c.Assert(view.State, qt.Equals, cart.StateEmpty)
	})

	c.Run("other lines keep their order", func(c *qt.C) {
		svc := newTestService(newMemorySlot(), headphonesCatalog())

		_, err := svc.AddItem(ctx, "s", 9, 1)
		c.Assert(err, qt.IsNil)
		_, err = svc.AddItem(ctx, "s", 7, 2)
		c.Assert(err, qt.IsNil)

		got, err := svc.RemoveItem(ctx, "s", 9)
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.DeepEquals, cart.Cart{{ProductID: 7, Qty: 2}})
	})

	c.Run("absent product is a no-op", func(c *qt.C) {
		svc := newTestService(newMemorySlot(), headphonesCatalog())

		_, err := svc.AddItem(ctx, "s", 7, 2)
		c.Assert(err, qt.IsNil)

		got, err := svc.RemoveItem(ctx, "s", 404)
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.DeepEquals, cart.Cart{{ProductID: 7, Qty: 2}})
	})
}

func TestService_SetQuantity(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()

	c.Run("sets the quantity of an existing line", func(c *qt.C) {
		svc := newTestService(newMemorySlot(), headphonesCatalog())

		_, err := svc.AddItem(ctx, "s", 7, 2)
		c.Assert(err, qt.IsNil)

		got, err := svc.SetQuantity(ctx, "s", 7, "6")
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.DeepEquals, cart.Cart{{ProductID: 7, Qty: 6}})
	})

	c.Run("invalid input leaves the cart unchanged", func(c *qt.C) {
		for _, raw := range []string{"abc", "", "0", "-3", "1.5", "2x", "NaN"} {
			svc := newTestService(newMemorySlot(), headphonesCatalog())

			before, err := svc.AddItem(ctx, "s", 7, 2)
			c.Assert(err, qt.IsNil)

			got, err := svc.SetQuantity(ctx, "s", 7, raw)
			c.Assert(err, qt.IsNil)
			c.Assert(got, qt.DeepEquals, before, qt.Commentf("raw quantity %q", raw))
			c.Assert(svc.Cart(ctx, "s"), qt.DeepEquals, before)
		}
	})

	c.Run("missing line is a no-op", func(c *qt.C) {
		svc := newTestService(newMemorySlot(), headphonesCatalog())

		got, err := svc.SetQuantity(ctx, "s", 7, "3")
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.HasLen, 0)
	})

	c.Run("surrounding whitespace is tolerated", func(c *qt.C) {
		svc := newTestService(newMemorySlot(), headphonesCatalog())

		_, err := svc.AddItem(ctx, "s", 7, 2)
		c.Assert(err, qt.IsNil)

		got, err := svc.SetQuantity(ctx, "s", 7, " 4 ")
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.DeepEquals, cart.Cart{{ProductID: 7, Qty: 4}})
	})
}

func TestService_ComputeTotals(t *testing.T) {
	c := qt.New(t)

	c.Run("is pure and idempotent", func(c *qt.C) {
		svc := newTestService(newMemorySlot(), headphonesCatalog())

		current := cart.Cart{{ProductID: 7, Qty: 2}, {ProductID: 9, Qty: 1}}
		first := svc.ComputeTotals(current)
		second := svc.ComputeTotals(current)

		c.Assert(first, qt.DeepEquals, second)
		c.Assert(current, qt.DeepEquals, cart.Cart{{ProductID: 7, Qty: 2}, {ProductID: 9, Qty: 1}})
	})

	c.Run("skips lines whose product left the catalog", func(c *qt.C) {
		// Product 9 has been removed from the catalog.
		cat := fakeCatalog{7: product(7, "Wireless Headphones", 2000, "Electronics")}
		svc := newTestService(newMemorySlot(), cat)

		totals := svc.ComputeTotals(cart.Cart{{ProductID: 7, Qty: 2}, {ProductID: 9, Qty: 1}})
		c.Assert(totals, qt.DeepEquals, cart.Totals{Subtotal: 4000, Tax: 400, Total: 4400})
	})

	c.Run("empty cart totals to zero", func(c *qt.C) {
		svc := newTestService(newMemorySlot(), headphonesCatalog())

		c.Assert(svc.ComputeTotals(cart.Cart{}), qt.DeepEquals, cart.Totals{})
	})

	c.Run("tax is rounded to whole cents", func(c *qt.C) {
		cat := fakeCatalog{1: product(1, "Penny Sweet", 5, "Sweets")}
		svc := newTestService(newMemorySlot(), cat)

		// Subtotal 5 cents, 10% tax = 0.5 cents, rounds half up to 1.
		totals := svc.ComputeTotals(cart.Cart{{ProductID: 1, Qty: 1}})
		c.Assert(totals, qt.DeepEquals, cart.Totals{Subtotal: 5, Tax: 1, Total: 6})
	})
}
