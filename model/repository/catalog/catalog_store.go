package catalog

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"

	"mbs.GO/core/cache"
	catalogEntity "mbs.GO/model/entity/catalog"
	storeEntity "mbs.GO/model/entity/store"
	storeRepo "mbs.GO/model/repository/store"
)

const (
	cacheTag = "catalog"
	// InvalidateChannel carries store keys whose collection changed.
	InvalidateChannel = "mbs:store:invalidate"
)

// Collections holds every catalog collection as immutable-replace values:
// mutations build a new collection and swap it in whole, so readers never
// observe a partial update.
type Collections struct {
	Categories     []catalogEntity.Category
	Brands         map[string][]catalogEntity.Brand
	Products       map[string]map[string][]catalogEntity.Product
	Colors         map[string][]catalogEntity.Color
	DirectProducts map[string][]catalogEntity.DirectProduct
	BulkPricing    map[string][]catalogEntity.BulkTier
}

// Store owns the in-memory catalog collections and their persistence.
// Lookups fail soft: a missing id resolves to a zero value or empty list,
// never an error.
type Store struct {
	kv    *storeRepo.KVRepository
	rdb   *redis.Client
	cache *cache.Cache

	mu   sync.RWMutex
	cols Collections
}

func NewStore(kv *storeRepo.KVRepository, rdb *redis.Client) *Store {
	return &Store{kv: kv, rdb: rdb, cache: cache.GetInstance()}
}

// Load reads every persisted collection, falling back to the built-in
// defaults when a key is missing or its JSON fails to parse. A corrupted
// entry is logged and discarded, not repaired.
func (s *Store) Load() {
	cols := Collections{
		Categories:     DefaultCategories(),
		Brands:         DefaultBrands(),
		Products:       DefaultProducts(),
		Colors:         DefaultColors(),
		DirectProducts: DefaultDirectProducts(),
		BulkPricing:    DefaultBulkPricing(),
	}

	loadKey(s, storeEntity.KeyCategories, &cols.Categories)
	loadKey(s, storeEntity.KeyBrands, &cols.Brands)
	loadKey(s, storeEntity.KeyProducts, &cols.Products)
	loadKey(s, storeEntity.KeyColors, &cols.Colors)
	loadKey(s, storeEntity.KeyDirectProducts, &cols.DirectProducts)

	s.mu.Lock()
	s.cols = cols
	s.mu.Unlock()
}

// loadKey overwrites dst with the persisted value when present and valid.
func loadKey[T any](s *Store, key string, dst *T) {
	if v, ok := s.cache.Get(key); ok {
		if typed, ok := v.(T); ok {
			*dst = typed
			return
		}
	}
	raw, ok := s.kv.Get(key)
	if !ok {
		return
	}
	var parsed T
	if err := json.Unmarshal(raw, &parsed); err != nil {
		log.Printf("catalog store: malformed %s, using defaults: %v", key, err)
		return
	}
	*dst = parsed
	s.cache.Set(key, parsed, 0, []string{cacheTag})
}

// Refresh drops cached reads and reloads from the persisted store. Called
// by the poll job and the redis subscriber.
func (s *Store) Refresh() {
	s.cache.DeleteByTag(cacheTag)
	s.Load()
}

// Save persists every collection (used by seeding).
func (s *Store) Save() error {
	s.mu.RLock()
	cols := s.cols
	s.mu.RUnlock()
	for _, w := range []struct {
		key string
		val interface{}
	}{
		{storeEntity.KeyCategories, cols.Categories},
		{storeEntity.KeyBrands, cols.Brands},
		{storeEntity.KeyProducts, cols.Products},
		{storeEntity.KeyColors, cols.Colors},
		{storeEntity.KeyDirectProducts, cols.DirectProducts},
	} {
		if err := s.persist(w.key, w.val); err != nil {
			return err
		}
	}
	return nil
}

// persist writes one collection document and notifies other instances.
func (s *Store) persist(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := s.kv.Put(key, raw); err != nil {
		return err
	}
	s.cache.Delete(key)
	if s.rdb != nil {
		if err := s.rdb.Publish(context.Background(), InvalidateChannel, key).Err(); err != nil {
			log.Printf("catalog store: redis publish failed: %v", err)
		}
	}
	return nil
}

// SubscribeInvalidations refreshes the store whenever another instance
// publishes a collection write. Returns immediately when redis is not
// configured (the cron poll remains the only refresh path).
func (s *Store) SubscribeInvalidations(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	sub := s.rdb.Subscribe(ctx, InvalidateChannel)
	go func() {
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}
				log.Printf("catalog store: invalidation for %s", msg.Payload)
				s.Refresh()
			}
		}
	}()
}

// --- Lookups ---

func (s *Store) Categories() []catalogEntity.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalogEntity.Category, len(s.cols.Categories))
	copy(out, s.cols.Categories)
	return out
}

func (s *Store) CategoryByID(id string) (catalogEntity.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.cols.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return catalogEntity.Category{}, false
}

func (s *Store) BrandsFor(categoryID string) []catalogEntity.Brand {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]catalogEntity.Brand(nil), s.cols.Brands[categoryID]...)
}

func (s *Store) BrandByID(categoryID, id string) (catalogEntity.Brand, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.cols.Brands[categoryID] {
		if b.ID == id {
			return b, true
		}
	}
	return catalogEntity.Brand{}, false
}

func (s *Store) ProductsFor(brandID, categoryID string) []catalogEntity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]catalogEntity.Product(nil), s.cols.Products[brandID][categoryID]...)
}

func (s *Store) ProductByID(brandID, categoryID, id string) (catalogEntity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.cols.Products[brandID][categoryID] {
		if p.ID == id {
			return p, true
		}
	}
	return catalogEntity.Product{}, false
}

func (s *Store) ColorsFor(productID string) []catalogEntity.Color {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]catalogEntity.Color(nil), s.cols.Colors[productID]...)
}

func (s *Store) ColorByID(productID, id string) (catalogEntity.Color, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.cols.Colors[productID] {
		if c.ID == id {
			return c, true
		}
	}
	return catalogEntity.Color{}, false
}

func (s *Store) DirectProductsFor(categoryID string) []catalogEntity.DirectProduct {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]catalogEntity.DirectProduct(nil), s.cols.DirectProducts[categoryID]...)
}

func (s *Store) DirectProductByID(categoryID, id string) (catalogEntity.DirectProduct, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.cols.DirectProducts[categoryID] {
		if p.ID == id {
			return p, true
		}
	}
	return catalogEntity.DirectProduct{}, false
}

// TiersFor returns the bulk tiers for a category (ascending MinQty).
// Categories without tiers return an empty slice.
func (s *Store) TiersFor(categoryID string) []catalogEntity.BulkTier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]catalogEntity.BulkTier(nil), s.cols.BulkPricing[categoryID]...)
}

// Locations returns the warehouse list.
func (s *Store) Locations() []catalogEntity.StockLocation {
	return StockLocations()
}

// --- Overrides (admin edit mode) ---
// Each override replaces one record in place, matched by id, builds a new
// collection, swaps it in, and persists the whole document.

func (s *Store) OverrideCategory(id string, patch map[string]interface{}) (catalogEntity.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]catalogEntity.Category, 0, len(s.cols.Categories))
	var updated catalogEntity.Category
	found := false
	for _, c := range s.cols.Categories {
		if c.ID == id {
			if err := decodePatch(patch, &c); err != nil {
				log.Printf("catalog store: bad category patch for %s: %v", id, err)
				return catalogEntity.Category{}, false
			}
			c.ID = id
			updated, found = c, true
		}
		next = append(next, c)
	}
	if !found {
		return catalogEntity.Category{}, false
	}
	s.cols.Categories = next
	if err := s.persist(storeEntity.KeyCategories, next); err != nil {
		log.Printf("catalog store: persist categories: %v", err)
	}
	return updated, true
}

func (s *Store) OverrideBrand(categoryID, id string, patch map[string]interface{}) (catalogEntity.Brand, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := s.cols.Brands[categoryID]
	if !ok {
		return catalogEntity.Brand{}, false
	}
	next := make([]catalogEntity.Brand, 0, len(list))
	var updated catalogEntity.Brand
	found := false
	for _, b := range list {
		if b.ID == id {
			if err := decodePatch(patch, &b); err != nil {
				log.Printf("catalog store: bad brand patch for %s: %v", id, err)
				return catalogEntity.Brand{}, false
			}
			b.ID = id
			updated, found = b, true
		}
		next = append(next, b)
	}
	if !found {
		return catalogEntity.Brand{}, false
	}
	brands := make(map[string][]catalogEntity.Brand, len(s.cols.Brands))
	for k, v := range s.cols.Brands {
		brands[k] = v
	}
	brands[categoryID] = next
	s.cols.Brands = brands
	if err := s.persist(storeEntity.KeyBrands, brands); err != nil {
		log.Printf("catalog store: persist brands: %v", err)
	}
	return updated, true
}

func (s *Store) OverrideProduct(brandID, categoryID, id string, patch map[string]interface{}) (catalogEntity.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := s.cols.Products[brandID][categoryID]
	if !ok {
		return catalogEntity.Product{}, false
	}
	next := make([]catalogEntity.Product, 0, len(list))
	var updated catalogEntity.Product
	found := false
	for _, p := range list {
		if p.ID == id {
			if err := decodePatch(patch, &p); err != nil {
				log.Printf("catalog store: bad product patch for %s: %v", id, err)
				return catalogEntity.Product{}, false
			}
			p.ID = id
			updated, found = p, true
		}
		next = append(next, p)
	}
	if !found {
		return catalogEntity.Product{}, false
	}
	products := make(map[string]map[string][]catalogEntity.Product, len(s.cols.Products))
	for bk, bv := range s.cols.Products {
		inner := make(map[string][]catalogEntity.Product, len(bv))
		for ck, cv := range bv {
			inner[ck] = cv
		}
		products[bk] = inner
	}
	products[brandID][categoryID] = next
	s.cols.Products = products
	if err := s.persist(storeEntity.KeyProducts, products); err != nil {
		log.Printf("catalog store: persist products: %v", err)
	}
	return updated, true
}

func (s *Store) OverrideColor(productID, id string, patch map[string]interface{}) (catalogEntity.Color, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := s.cols.Colors[productID]
	if !ok {
		return catalogEntity.Color{}, false
	}
	next := make([]catalogEntity.Color, 0, len(list))
	var updated catalogEntity.Color
	found := false
	for _, c := range list {
		if c.ID == id {
			if err := decodePatch(patch, &c); err != nil {
				log.Printf("catalog store: bad color patch for %s: %v", id, err)
				return catalogEntity.Color{}, false
			}
			c.ID = id
			updated, found = c, true
		}
		next = append(next, c)
	}
	if !found {
		return catalogEntity.Color{}, false
	}
	colors := make(map[string][]catalogEntity.Color, len(s.cols.Colors))
	for k, v := range s.cols.Colors {
		colors[k] = v
	}
	colors[productID] = next
	s.cols.Colors = colors
	if err := s.persist(storeEntity.KeyColors, colors); err != nil {
		log.Printf("catalog store: persist colors: %v", err)
	}
	return updated, true
}

func (s *Store) OverrideDirectProduct(categoryID, id string, patch map[string]interface{}) (catalogEntity.DirectProduct, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := s.cols.DirectProducts[categoryID]
	if !ok {
		return catalogEntity.DirectProduct{}, false
	}
	next := make([]catalogEntity.DirectProduct, 0, len(list))
	var updated catalogEntity.DirectProduct
	found := false
	for _, p := range list {
		if p.ID == id {
			if err := decodePatch(patch, &p); err != nil {
				log.Printf("catalog store: bad direct product patch for %s: %v", id, err)
				return catalogEntity.DirectProduct{}, false
			}
			p.ID = id
			updated, found = p, true
		}
		next = append(next, p)
	}
	if !found {
		return catalogEntity.DirectProduct{}, false
	}
	direct := make(map[string][]catalogEntity.DirectProduct, len(s.cols.DirectProducts))
	for k, v := range s.cols.DirectProducts {
		direct[k] = v
	}
	direct[categoryID] = next
	s.cols.DirectProducts = direct
	if err := s.persist(storeEntity.KeyDirectProducts, direct); err != nil {
		log.Printf("catalog store: persist direct products: %v", err)
	}
	return updated, true
}
