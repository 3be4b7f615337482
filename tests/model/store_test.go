package modeltest

import (
	"encoding/json"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	catalogEntity "mbs.GO/model/entity/catalog"
	orderEntity "mbs.GO/model/entity/order"
	storeEntity "mbs.GO/model/entity/store"
	catalogRepo "mbs.GO/model/repository/catalog"
	orderRepo "mbs.GO/model/repository/order"
	storeRepo "mbs.GO/model/repository/store"
)

func testKV(t *testing.T) *storeRepo.KVRepository {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	kv := storeRepo.NewKVRepository(db)
	if err := kv.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return kv
}

// newCatalogStore loads through Refresh so the shared cache never leaks
// state between tests.
func newCatalogStore(t *testing.T, kv *storeRepo.KVRepository) *catalogRepo.Store {
	s := catalogRepo.NewStore(kv, nil)
	s.Refresh()
	return s
}

func TestKVRepository_PutGetRoundtrip(t *testing.T) {
	kv := testKV(t)

	if _, ok := kv.Get("missing"); ok {
		t.Fatal("Get on missing key reported ok")
	}
	if err := kv.Put("k1", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	raw, ok := kv.Get("k1")
	if !ok || string(raw) != `{"a":1}` {
		t.Errorf("Get = %q, %v", raw, ok)
	}

	// Upsert replaces the value in place.
	if err := kv.Put("k1", []byte(`{"a":2}`)); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	raw, _ = kv.Get("k1")
	if string(raw) != `{"a":2}` {
		t.Errorf("after overwrite = %q", raw)
	}

	keys, err := kv.Keys()
	if err != nil || len(keys) != 1 || keys[0] != "k1" {
		t.Errorf("Keys = %v, %v", keys, err)
	}

	if err := kv.Delete("k1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := kv.Get("k1"); ok {
		t.Error("key survived Delete")
	}
}

func TestCatalogStore_LoadDefaults(t *testing.T) {
	s := newCatalogStore(t, testKV(t))

	cats := s.Categories()
	if len(cats) == 0 {
		t.Fatal("no default categories")
	}
	shingles, ok := s.CategoryByID("shingles")
	if !ok || !shingles.HasSubcategories {
		t.Errorf("shingles = %+v, %v", shingles, ok)
	}
	if len(s.BrandsFor("shingles")) == 0 {
		t.Error("no default brands for shingles")
	}
	if len(s.TiersFor("shingles")) != 4 {
		t.Errorf("shingles tiers = %d, want 4", len(s.TiersFor("shingles")))
	}
}

func TestCatalogStore_MalformedJSONFallsBackToDefaults(t *testing.T) {
	kv := testKV(t)
	if err := kv.Put(storeEntity.KeyCategories, []byte("{not json")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	s := newCatalogStore(t, kv)
	if len(s.Categories()) == 0 {
		t.Error("corrupted categories did not fall back to defaults")
	}
}

func TestCatalogStore_LoadPersistedOverridesDefaults(t *testing.T) {
	kv := testKV(t)
	custom := []catalogEntity.Category{{ID: "only", Name: "Only One", HasSubcategories: false}}
	raw, _ := json.Marshal(custom)
	if err := kv.Put(storeEntity.KeyCategories, raw); err != nil {
		t.Fatalf("Put: %v", err)
	}

	s := newCatalogStore(t, kv)
	cats := s.Categories()
	if len(cats) != 1 || cats[0].ID != "only" {
		t.Errorf("Categories = %+v, want the persisted list", cats)
	}
}

func TestCatalogStore_OverrideCategoryPersists(t *testing.T) {
	kv := testKV(t)
	s := newCatalogStore(t, kv)

	updated, ok := s.OverrideCategory("shingles", map[string]interface{}{"name": "Shingles & Caps"})
	if !ok {
		t.Fatal("OverrideCategory reported not found")
	}
	if updated.Name != "Shingles & Caps" {
		t.Errorf("Name = %q", updated.Name)
	}
	if updated.ID != "shingles" {
		t.Errorf("ID changed to %q", updated.ID)
	}

	// A fresh store over the same KV sees the edit.
	s2 := newCatalogStore(t, kv)
	c, _ := s2.CategoryByID("shingles")
	if c.Name != "Shingles & Caps" {
		t.Errorf("reloaded Name = %q", c.Name)
	}
}

func TestCatalogStore_OverrideUnknownID(t *testing.T) {
	s := newCatalogStore(t, testKV(t))
	if _, ok := s.OverrideCategory("nope", map[string]interface{}{"name": "x"}); ok {
		t.Error("override of unknown id reported ok")
	}
	if _, ok := s.OverrideBrand("shingles", "nope", map[string]interface{}{"name": "x"}); ok {
		t.Error("override of unknown brand reported ok")
	}
}

func TestCatalogStore_OverrideColorWeakTypes(t *testing.T) {
	s := newCatalogStore(t, testKV(t))

	colors := s.ColorsFor("pinnacle")
	if len(colors) == 0 {
		t.Fatal("no default colors for pinnacle")
	}
	target := colors[0]

	// Edit dialogs submit numbers as strings.
	updated, ok := s.OverrideColor("pinnacle", target.ID, map[string]interface{}{
		"price": "123.45",
		"stock": "7",
	})
	if !ok {
		t.Fatalf("OverrideColor(%s) not found", target.ID)
	}
	if updated.Price != 123.45 || updated.Stock != 7 {
		t.Errorf("Price=%v Stock=%v", updated.Price, updated.Stock)
	}
	if updated.Name != target.Name {
		t.Errorf("untouched field changed: %q -> %q", target.Name, updated.Name)
	}
}

func TestCatalogStore_LookupsFailSoft(t *testing.T) {
	s := newCatalogStore(t, testKV(t))

	if _, ok := s.CategoryByID("ghost"); ok {
		t.Error("ghost category found")
	}
	if got := s.BrandsFor("ghost"); len(got) != 0 {
		t.Errorf("BrandsFor ghost = %v", got)
	}
	if got := s.ProductsFor("ghost", "ghost"); len(got) != 0 {
		t.Errorf("ProductsFor ghost = %v", got)
	}
	if _, ok := s.ColorByID("ghost", "ghost"); ok {
		t.Error("ghost color found")
	}
	if got := s.TiersFor("ghost"); len(got) != 0 {
		t.Errorf("TiersFor ghost = %v", got)
	}
}

func TestOrderStore_AppendReplaceLoad(t *testing.T) {
	kv := testKV(t)
	s := orderRepo.NewStore(kv)
	s.Load()

	o := orderEntity.Order{ID: "ORD-1", Status: orderEntity.StatusPending, Total: 100}
	if err := s.Append(o); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, ok := s.Get("ORD-1")
	if !ok || got.Total != 100 {
		t.Fatalf("Get = %+v, %v", got, ok)
	}

	got.Status = orderEntity.StatusAccepted
	if !s.Replace(got) {
		t.Fatal("Replace reported not found")
	}
	if s.Replace(orderEntity.Order{ID: "ORD-404"}) {
		t.Error("Replace of unknown id reported ok")
	}

	// Another store over the same KV sees the write.
	s2 := orderRepo.NewStore(kv)
	s2.Load()
	got2, _ := s2.Get("ORD-1")
	if got2.Status != orderEntity.StatusAccepted {
		t.Errorf("reloaded Status = %s", got2.Status)
	}
}

func TestOrderStore_MalformedKeepsPrevious(t *testing.T) {
	kv := testKV(t)
	s := orderRepo.NewStore(kv)
	if err := s.Append(orderEntity.Order{ID: "ORD-1"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	if err := kv.Put(storeEntity.KeyOrders, []byte("][")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	s.Refresh()
	if len(s.List()) != 1 {
		t.Errorf("orders = %d, want previous list kept", len(s.List()))
	}
}
