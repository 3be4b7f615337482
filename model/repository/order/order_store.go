package order

import (
	"encoding/json"
	"log"
	"sync"

	orderEntity "mbs.GO/model/entity/order"
	storeEntity "mbs.GO/model/entity/store"
	storeRepo "mbs.GO/model/repository/store"
)

// Store reads and rewrites the mbs-orders collection. New orders are written
// by the checkout flow; the admin dashboard mutates status and fields here.
// Writes replace the whole collection, so concurrent writers are
// last-write-wins at collection granularity.
type Store struct {
	kv *storeRepo.KVRepository

	mu     sync.RWMutex
	orders []orderEntity.Order
}

func NewStore(kv *storeRepo.KVRepository) *Store {
	return &Store{kv: kv}
}

// Load re-reads the persisted order list. Malformed JSON is logged and the
// previous in-memory list is kept (nothing here is fatal).
func (s *Store) Load() {
	raw, ok := s.kv.Get(storeEntity.KeyOrders)
	if !ok {
		return
	}
	var parsed []orderEntity.Order
	if err := json.Unmarshal(raw, &parsed); err != nil {
		log.Printf("order store: malformed %s, keeping previous list: %v", storeEntity.KeyOrders, err)
		return
	}
	s.mu.Lock()
	s.orders = parsed
	s.mu.Unlock()
}

// Refresh is the poll-driven re-read (cooperative, not a consistency
// mechanism; staleness window equals the poll interval).
func (s *Store) Refresh() {
	s.Load()
}

// List returns a copy of all orders.
func (s *Store) List() []orderEntity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]orderEntity.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Get returns the order with the given id.
func (s *Store) Get(id string) (orderEntity.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return orderEntity.Order{}, false
}

// Append adds a new order and persists the collection.
func (s *Store) Append(o orderEntity.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]orderEntity.Order, 0, len(s.orders)+1)
	next = append(next, s.orders...)
	next = append(next, o)
	return s.swap(next)
}

// Replace swaps the order matched by id with the given value and persists.
// Returns false when the id is unknown.
func (s *Store) Replace(o orderEntity.Order) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]orderEntity.Order, 0, len(s.orders))
	found := false
	for _, cur := range s.orders {
		if cur.ID == o.ID {
			cur = o
			found = true
		}
		next = append(next, cur)
	}
	if !found {
		return false
	}
	if err := s.swap(next); err != nil {
		log.Printf("order store: persist: %v", err)
	}
	return true
}

// swap installs a new collection and writes it through. Callers hold s.mu.
func (s *Store) swap(next []orderEntity.Order) error {
	raw, err := json.Marshal(next)
	if err != nil {
		return err
	}
	if err := s.kv.Put(storeEntity.KeyOrders, raw); err != nil {
		return err
	}
	s.orders = next
	return nil
}
