package catalog_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/greengivers/nursery/pkg/internal/model"
	"github.com/greengivers/nursery/pkg/internal/storage/catalog"
)

func newTestStore(t *testing.T) *catalog.JSONFileStore {
	t.Helper()

	store, err := catalog.NewJSONFile(filepath.Join(t.TempDir(), "catalog.json"))
	if err != nil {
		t.Fatalf("NewJSONFile failed: %v", err)
	}

	return store
}

func sampleProduct(name string) *model.Product {
	return &model.Product{
		Name:          name,
		Category:      "Indoor Plants",
		Price:         120,
		Description:   "A hardy indoor plant.",
		InStock:       true,
		StockQuantity: 10,
		IsActive:      true,
	}
}

func TestJSONFileCreateAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, sampleProduct("Money Plant"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == "" {
		t.Error("expected a generated id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be stamped")
	}

	got, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "Money Plant" || got.Price != 120 || got.StockQuantity != 10 {
		t.Errorf("round trip lost fields: %+v", got)
	}
}

func TestJSONFileListEmptyIsNotNil(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, f := range []catalog.Filter{{}, {Category: "Indoor Plants"}, {Search: "palm"}} {
		products, err := store.List(ctx, f)
		if err != nil {
			t.Fatalf("List(%+v) failed: %v", f, err)
		}
		if products == nil {
			t.Errorf("List(%+v) returned nil, want empty slice", f)
		}
		if len(products) != 0 {
			t.Errorf("List(%+v) on empty store returned %d products", f, len(products))
		}
	}
}

func TestJSONFileValidation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	bad := &model.Product{Name: "", Category: "Space Plants", Price: -5}

	_, err := store.Create(ctx, bad)
	if err == nil {
		t.Fatal("expected validation failure")
	}

	var verr *catalog.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Errors) != 3 {
		t.Errorf("expected 3 field messages, got %d: %v", len(verr.Errors), verr.Errors)
	}

	products, err := store.List(ctx, catalog.Filter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("rejected create still stored %d records", len(products))
	}
}

func TestJSONFileActiveFilter(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	active := sampleProduct("Active Plant")
	inactive := sampleProduct("Inactive Plant")
	inactive.IsActive = false

	if _, err := store.Create(ctx, active); err != nil {
		t.Fatalf("Create active: %v", err)
	}
	if _, err := store.Create(ctx, inactive); err != nil {
		t.Fatalf("Create inactive: %v", err)
	}

	defaultList, err := store.List(ctx, catalog.Filter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(defaultList) != 1 || defaultList[0].Name != "Active Plant" {
		t.Errorf("default filter should return the active record only, got %d", len(defaultList))
	}

	f := false
	inactiveList, err := store.List(ctx, catalog.Filter{IsActive: &f})
	if err != nil {
		t.Fatalf("List inactive failed: %v", err)
	}
	if len(inactiveList) != 1 || inactiveList[0].Name != "Inactive Plant" {
		t.Errorf("explicit isActive=false should return the inactive record only, got %d", len(inactiveList))
	}

	// The two partitions cover the whole catalog.
	if len(defaultList)+len(inactiveList) != 2 {
		t.Error("partitions do not sum to the total")
	}
}

func TestJSONFileSearchAndCategory(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rose := sampleProduct("Rose Plant")
	rose.Category = "Flower Plants"
	rose.Description = "Fragrant blooms in many colors."
	snake := sampleProduct("Snake Plant")

	for _, p := range []*model.Product{rose, snake} {
		if _, err := store.Create(ctx, p); err != nil {
			t.Fatalf("Create %s: %v", p.Name, err)
		}
	}

	byCategory, err := store.List(ctx, catalog.Filter{Category: "Flower Plants"})
	if err != nil {
		t.Fatalf("List by category: %v", err)
	}
	if len(byCategory) != 1 || byCategory[0].Name != "Rose Plant" {
		t.Errorf("category filter returned wrong records: %v", byCategory)
	}

	bySearch, err := store.List(ctx, catalog.Filter{Search: "fragrant"})
	if err != nil {
		t.Fatalf("List by search: %v", err)
	}
	if len(bySearch) != 1 || bySearch[0].Name != "Rose Plant" {
		t.Errorf("search should match the description substring, got %v", bySearch)
	}
}

func TestJSONFileUpdate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, sampleProduct("Fern"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	replacement := sampleProduct("Boston Fern")
	replacement.Price = 200

	updated, err := store.Update(ctx, created.ID, replacement)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Name != "Boston Fern" || updated.Price != 200 {
		t.Errorf("update did not replace fields: %+v", updated)
	}
	if updated.ID != created.ID {
		t.Error("update changed the id")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("update lost the creation timestamp")
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Error("update did not advance updatedAt")
	}

	if _, err := store.Update(ctx, "ffffffffffffffffffffffff", replacement); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestJSONFileDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, sampleProduct("Doomed Plant"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	deleted, err := store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted.Name != "Doomed Plant" {
		t.Errorf("delete returned wrong record: %+v", deleted)
	}

	if _, err := store.Get(ctx, created.ID); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	if _, err := store.Delete(ctx, created.ID); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("expected ErrNotFound for repeated delete, got %v", err)
	}
}

func TestJSONFileStats(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	specs := []struct {
		name     string
		category string
		badge    string
		active   bool
	}{
		{"P1", "Indoor Plants", "Top Selling", true},
		{"P2", "Indoor Plants", "", true},
		{"P3", "Flower Plants", "Top Selling", true},
		{"P4", "Flower Plants", "Top Trending", false},
		{"P5", "Fruit Plants", "", false},
	}
	for _, spec := range specs {
		p := sampleProduct(spec.name)
		p.Category = spec.category
		p.Badge = spec.badge
		p.IsActive = spec.active

		if _, err := store.Create(ctx, p); err != nil {
			t.Fatalf("Create %s: %v", spec.name, err)
		}
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	if stats.TotalProducts != 5 || stats.ActiveProducts != 3 || stats.InactiveProducts != 2 {
		t.Errorf("wrong totals: %+v", stats)
	}

	categorySum := 0
	for _, gc := range stats.CategoryStats {
		categorySum += gc.Count
	}
	if categorySum != 3 {
		t.Errorf("category buckets should count active records only, sum=%d", categorySum)
	}

	for _, gc := range stats.BadgeStats {
		if gc.Key == "" {
			t.Error("empty badge leaked into the badge buckets")
		}
		if gc.Key == "Top Trending" {
			t.Error("badge of an inactive record counted")
		}
	}
}

func TestJSONFilePersistenceReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	ctx := context.Background()

	first, err := catalog.NewJSONFile(path)
	if err != nil {
		t.Fatalf("NewJSONFile failed: %v", err)
	}

	created, err := first.Create(ctx, sampleProduct("Persistent Plant"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	second, err := catalog.NewJSONFile(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	got, err := second.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get after reload failed: %v", err)
	}
	if got.Name != "Persistent Plant" {
		t.Errorf("reload lost the record: %+v", got)
	}
}
