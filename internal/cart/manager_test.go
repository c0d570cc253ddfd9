package cart

import (
	"context"
	"io"
	"log"
	"math"
	"testing"

	"storefront-gateway/internal/domain"
)

type stubStore struct {
	loaded   []domain.LineItem
	loadErr  error
	saved    [][]domain.LineItem
	saveErr  error
	lastSave []domain.LineItem
}

func (s *stubStore) LoadCart(_ context.Context, _ string) ([]domain.LineItem, error) {
	return s.loaded, s.loadErr
}

func (s *stubStore) SaveCart(_ context.Context, _ string, items []domain.LineItem) error {
	snapshot := make([]domain.LineItem, len(items))
	copy(snapshot, items)
	s.saved = append(s.saved, snapshot)
	s.lastSave = snapshot
	return s.saveErr
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAdd_SameProductTwiceMergesLines(t *testing.T) {
	ctx := context.Background()
	store := &stubStore{loadErr: domain.ErrNotFound}
	m := New(ctx, store, "client-1", testLogger())

	m.Add(ctx, 1, "Widget", 9.99)
	m.Add(ctx, 1, "Widget", 9.99)

	items := m.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
	if m.ItemCount() != 2 {
		t.Fatalf("expected item count 2, got %d", m.ItemCount())
	}
}

func TestAdd_DistinctProductsAppendInOrder(t *testing.T) {
	ctx := context.Background()
	store := &stubStore{loadErr: domain.ErrNotFound}
	m := New(ctx, store, "client-1", testLogger())

	m.Add(ctx, 2, "Gadget", 5.00)
	m.Add(ctx, 1, "Widget", 9.99)

	items := m.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(items))
	}
	if items[0].ProductID != 2 || items[1].ProductID != 1 {
		t.Fatalf("unexpected order: %+v", items)
	}
}

func TestSetQuantity_ZeroRemovesLine(t *testing.T) {
	ctx := context.Background()
	store := &stubStore{loadErr: domain.ErrNotFound}
	m := New(ctx, store, "client-1", testLogger())

	m.Add(ctx, 1, "Widget", 9.99)
	m.SetQuantity(ctx, 1, 0)

	if len(m.Items()) != 0 {
		t.Fatalf("expected empty cart, got %+v", m.Items())
	}
	if m.ItemCount() != 0 {
		t.Fatalf("expected item count 0, got %d", m.ItemCount())
	}
	if !approxEqual(m.Total(), 0) {
		t.Fatalf("expected total 0, got %f", m.Total())
	}
}

func TestSetQuantity_UnknownProductIsNoop(t *testing.T) {
	ctx := context.Background()
	store := &stubStore{loadErr: domain.ErrNotFound}
	m := New(ctx, store, "client-1", testLogger())

	m.Add(ctx, 1, "Widget", 9.99)
	saves := len(store.saved)
	m.SetQuantity(ctx, 42, 3)

	if len(store.saved) != saves {
		t.Fatalf("no-op should not persist, saves went %d -> %d", saves, len(store.saved))
	}
	if m.Items()[0].Quantity != 1 {
		t.Fatalf("existing line changed: %+v", m.Items())
	}
}

func TestRemove_AbsentProductIsNoop(t *testing.T) {
	ctx := context.Background()
	store := &stubStore{loadErr: domain.ErrNotFound}
	m := New(ctx, store, "client-1", testLogger())

	m.Add(ctx, 1, "Widget", 9.99)
	m.Remove(ctx, 99)

	if len(m.Items()) != 1 {
		t.Fatalf("expected line to survive, got %+v", m.Items())
	}
}

func TestTotal_MatchesSumForAnySequence(t *testing.T) {
	ctx := context.Background()
	store := &stubStore{loadErr: domain.ErrNotFound}
	m := New(ctx, store, "client-1", testLogger())

	m.Add(ctx, 1, "Widget", 9.99)
	m.Add(ctx, 2, "Gadget", 3.50)
	m.Add(ctx, 1, "Widget", 9.99)
	m.SetQuantity(ctx, 2, 4)
	m.Remove(ctx, 3)
	m.Add(ctx, 3, "Gizmo", 1.25)
	m.SetQuantity(ctx, 1, 1)

	var want float64
	count := 0
	for _, it := range m.Items() {
		want += it.UnitPrice * float64(it.Quantity)
		count += it.Quantity
	}
	if !approxEqual(m.Total(), want) {
		t.Fatalf("total %f does not match recomputed sum %f", m.Total(), want)
	}
	if m.ItemCount() != count {
		t.Fatalf("item count %d does not match recomputed %d", m.ItemCount(), count)
	}
}

func TestScenario_AddAddSetQuantity(t *testing.T) {
	ctx := context.Background()
	store := &stubStore{loadErr: domain.ErrNotFound}
	m := New(ctx, store, "client-1", testLogger())

	m.Add(ctx, 1, "Widget", 9.99)
	m.Add(ctx, 1, "Widget", 9.99)
	m.SetQuantity(ctx, 1, 3)

	items := m.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(items))
	}
	want := domain.LineItem{ProductID: 1, Name: "Widget", UnitPrice: 9.99, Quantity: 3}
	if items[0] != want {
		t.Fatalf("expected %+v, got %+v", want, items[0])
	}
	if !approxEqual(m.Total(), 29.97) {
		t.Fatalf("expected total 29.97, got %f", m.Total())
	}
	if m.ItemCount() != 3 {
		t.Fatalf("expected item count 3, got %d", m.ItemCount())
	}
}

func TestMutations_PersistFullSnapshotEveryTime(t *testing.T) {
	ctx := context.Background()
	store := &stubStore{loadErr: domain.ErrNotFound}
	m := New(ctx, store, "client-1", testLogger())

	m.Add(ctx, 1, "Widget", 9.99)
	m.Add(ctx, 2, "Gadget", 3.50)
	m.SetQuantity(ctx, 1, 5)
	m.Remove(ctx, 2)
	m.Clear(ctx)

	if len(store.saved) != 5 {
		t.Fatalf("expected 5 persisted snapshots, got %d", len(store.saved))
	}
	if len(store.lastSave) != 0 {
		t.Fatalf("final snapshot should be empty, got %+v", store.lastSave)
	}
}

func TestNew_RehydratesFromStore(t *testing.T) {
	ctx := context.Background()
	store := &stubStore{loaded: []domain.LineItem{{ProductID: 7, Name: "Lamp", UnitPrice: 20, Quantity: 2}}}
	m := New(ctx, store, "client-1", testLogger())

	if m.ItemCount() != 2 {
		t.Fatalf("expected rehydrated count 2, got %d", m.ItemCount())
	}
	if !approxEqual(m.Total(), 40) {
		t.Fatalf("expected total 40, got %f", m.Total())
	}
}

func TestOnChange_FiresAfterEveryMutation(t *testing.T) {
	ctx := context.Background()
	store := &stubStore{loadErr: domain.ErrNotFound}
	m := New(ctx, store, "client-1", testLogger())

	var counts []int
	m.OnChange(func(c domain.Cart) {
		counts = append(counts, c.ItemCount())
	})

	m.Add(ctx, 1, "Widget", 9.99)
	m.Add(ctx, 1, "Widget", 9.99)
	m.Clear(ctx)

	want := []int{1, 2, 0}
	if len(counts) != len(want) {
		t.Fatalf("expected %d notifications, got %d", len(want), len(counts))
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Fatalf("notification %d: expected count %d, got %d", i, want[i], counts[i])
		}
	}
}
