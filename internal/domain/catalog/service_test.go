package catalog_test

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

type fakeSource struct {
	products []catalog.Product
	err      error
	calls    atomic.Int32
}

func (f *fakeSource) LoadProducts(context.Context) ([]catalog.Product, error) {
	f.calls.Add(1)
	return f.products, f.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testProducts() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Title: "Wireless Headphones", Price: 7999, Category: catalog.Category{Name: "Electronics"}},
		{ID: 2, Title: "Bluetooth Speaker", Price: 4999, Category: catalog.Category{Name: "Electronics"}},
		{ID: 3, Title: "Go Programming Handbook", Price: 2999, Category: catalog.Category{Name: "Books"}},
	}
}

func loadedService(c *qt.C, products []catalog.Product) *catalog.Service {
	svc := catalog.NewService(&fakeSource{products: products}, quietLogger())
	svc.LoadProducts(nil)
	select {
	case <-svc.ReadyCh():
	case <-time.After(5 * time.Second):
		c.Fatal("catalog never became ready")
	}
	return svc
}

func TestService_LoadProducts(t *testing.T) {
	c := qt.New(t)

	c.Run("onReady fires exactly once after the load", func(c *qt.C) {
		src := &fakeSource{products: testProducts()}
		svc := catalog.NewService(src, quietLogger())

		ready := make(chan struct{})
		svc.LoadProducts(func() { close(ready) })

		select {
		case <-ready:
		case <-time.After(5 * time.Second):
			c.Fatal("onReady was never invoked")
		}
		c.Assert(svc.Ready(), qt.IsTrue)
		c.Assert(src.calls.Load(), qt.Equals, int32(1))
	})

	c.Run("callbacks registered after the load run immediately", func(c *qt.C) {
		svc := loadedService(c, testProducts())

		invoked := false
		svc.OnReady(func() { invoked = true })
		c.Assert(invoked, qt.IsTrue)
	})

	c.Run("the snapshot is loaded once even with repeated calls", func(c *qt.C) {
		src := &fakeSource{products: testProducts()}
		svc := catalog.NewService(src, quietLogger())

		svc.LoadProducts(nil)
		<-svc.ReadyCh()
		svc.LoadProducts(nil)
		svc.LoadProducts(nil)

		c.Assert(src.calls.Load(), qt.Equals, int32(1))
	})

	c.Run("a failed load leaves the catalog not ready", func(c *qt.C) {
		src := &fakeSource{err: errors.New("connection refused")}
		svc := catalog.NewService(src, quietLogger())

		svc.LoadProducts(func() { c.Error("onReady must not fire on failure") })

		select {
		case <-svc.ReadyCh():
			c.Fatal("catalog must not become ready")
		case <-time.After(100 * time.Millisecond):
		}
		c.Assert(svc.Ready(), qt.IsFalse)
	})
}

func TestService_Lookups(t *testing.T) {
	c := qt.New(t)
	svc := loadedService(c, testProducts())

	c.Run("ProductByID resolves known ids", func(c *qt.C) {
		p, ok := svc.ProductByID(2)
		c.Assert(ok, qt.IsTrue)
		c.Assert(p.Title, qt.Equals, "Bluetooth Speaker")
		c.Assert(p.CategoryName(), qt.Equals, "Electronics")
	})

	c.Run("ProductByID reports absence", func(c *qt.C) {
		_, ok := svc.ProductByID(404)
		c.Assert(ok, qt.IsFalse)
	})

	c.Run("Products returns the snapshot in id order", func(c *qt.C) {
		products := svc.Products()
		c.Assert(products, qt.HasLen, 3)
		c.Assert(products[0].ID, qt.Equals, uint(1))
		c.Assert(products[2].ID, qt.Equals, uint(3))
	})
}

func TestService_Suggest(t *testing.T) {
	c := qt.New(t)
	svc := loadedService(c, testProducts())

	c.Run("matches are case-insensitive substrings", func(c *qt.C) {
		got := svc.Suggest("BLUE", 10)
		c.Assert(got, qt.HasLen, 1)
		c.Assert(got[0].ProductID, qt.Equals, uint(2))
		c.Assert(got[0].HighlightedHTML, qt.Equals, "<mark>Blue</mark>tooth Speaker")
	})

	c.Run("matches inside a word are highlighted in place", func(c *qt.C) {
		got := svc.Suggest("phone", 10)
		c.Assert(got, qt.HasLen, 1)
		c.Assert(got[0].HighlightedHTML, qt.Equals, "Wireless Head<mark>phone</mark>s")
	})

	c.Run("results are capped at the limit", func(c *qt.C) {
		got := svc.Suggest("o", 2)
		c.Assert(got, qt.HasLen, 2)
	})

	c.Run("blank query returns nothing", func(c *qt.C) {
		c.Assert(svc.Suggest("", 10), qt.HasLen, 0)
		c.Assert(svc.Suggest("   ", 10), qt.HasLen, 0)
	})

	c.Run("no match returns nothing", func(c *qt.C) {
		c.Assert(svc.Suggest("zzz", 10), qt.HasLen, 0)
	})

	c.Run("titles whose lowercase form is byte-longer stay intact", func(c *qt.C) {
		// "Ⱥ" (U+023A) is two bytes; its lowercase "ⱥ" (U+2C65) is three.
		svc := loadedService(c, []catalog.Product{
			{ID: 11, Title: "ȺȺȺ Power Cell", Category: catalog.Category{Name: "Electronics"}},
		})

		got := svc.Suggest("ⱥⱥⱥ", 10)
		c.Assert(got, qt.HasLen, 1)
		c.Assert(got[0].HighlightedHTML, qt.Equals, "<mark>ȺȺȺ</mark> Power Cell")
	})

	c.Run("titles whose lowercase form is byte-shorter stay intact", func(c *qt.C) {
		// The Kelvin sign "K" (U+212A) is three bytes; its lowercase "k" is one.
		svc := loadedService(c, []catalog.Product{
			{ID: 12, Title: "Resistor 10KΩ", Category: catalog.Category{Name: "Electronics"}},
		})

		got := svc.Suggest("k", 10)
		c.Assert(got, qt.HasLen, 1)
		c.Assert(got[0].HighlightedHTML, qt.Equals, "Resistor 10<mark>K</mark>Ω")
	})

	c.Run("titles are escaped outside of the mark tags", func(c *qt.C) {
		svc := loadedService(c, []catalog.Product{
			{ID: 9, Title: "Cables & Adapters", Category: catalog.Category{Name: "Electronics"}},
		})

		got := svc.Suggest("cables", 10)
		c.Assert(got, qt.HasLen, 1)
		c.Assert(got[0].HighlightedHTML, qt.Equals, "<mark>Cables</mark> &amp; Adapters")
	})
}
