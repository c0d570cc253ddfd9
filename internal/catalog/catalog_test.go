package catalog

import (
	"context"
	"errors"
	"testing"

	"storefront-gateway/internal/domain"
)

type stubProductAPI struct {
	products     []domain.Product
	err          error
	calls        int
	lastCategory string
}

func (s *stubProductAPI) ListProducts(_ context.Context, category string) ([]domain.Product, error) {
	s.calls++
	s.lastCategory = category
	return s.products, s.err
}

func TestGetByID_BeforeLoadReturnsNotFound(t *testing.T) {
	c := New(&stubProductAPI{})
	if _, err := c.GetByID(1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound before load, got %v", err)
	}
}

func TestLoad_ReplacesWholeCache(t *testing.T) {
	ctx := context.Background()
	api := &stubProductAPI{products: []domain.Product{
		{ID: 1, Name: "Widget", Price: 9.99},
		{ID: 2, Name: "Gadget", Price: 3.50},
	}}
	c := New(api)

	if _, err := c.Load(ctx, ""); err != nil {
		t.Fatalf("Load: %v", err)
	}
	p, err := c.GetByID(2)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if p.Name != "Gadget" {
		t.Fatalf("unexpected product %+v", p)
	}

	// Second load drops product 2 entirely; last load wins.
	api.products = []domain.Product{{ID: 3, Name: "Gizmo", Price: 1.25}}
	if _, err := c.Load(ctx, "tools"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if api.lastCategory != "tools" {
		t.Fatalf("category not forwarded, got %q", api.lastCategory)
	}
	if _, err := c.GetByID(2); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected product 2 gone after reload, got %v", err)
	}
	if _, err := c.GetByID(3); err != nil {
		t.Fatalf("expected product 3 cached, got %v", err)
	}
}

func TestLoad_FailureKeepsPreviousCache(t *testing.T) {
	ctx := context.Background()
	api := &stubProductAPI{products: []domain.Product{{ID: 1, Name: "Widget"}}}
	c := New(api)
	if _, err := c.Load(ctx, ""); err != nil {
		t.Fatalf("Load: %v", err)
	}

	api.err = errors.New("upstream down")
	if _, err := c.Load(ctx, ""); err == nil {
		t.Fatalf("expected load error")
	}
	if _, err := c.GetByID(1); err != nil {
		t.Fatalf("previous cache should survive a failed load, got %v", err)
	}
}

func TestItems_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	api := &stubProductAPI{products: []domain.Product{{ID: 1, Name: "Widget"}}}
	c := New(api)
	if _, err := c.Load(ctx, ""); err != nil {
		t.Fatalf("Load: %v", err)
	}

	items := c.Items()
	items[0].Name = "Mutated"

	p, err := c.GetByID(1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if p.Name != "Widget" {
		t.Fatalf("cache mutated through Items copy: %+v", p)
	}
}
