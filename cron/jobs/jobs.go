package jobs

import (
	"log"
	"sync"

	catalogRepo "mbs.GO/model/repository/catalog"
	orderRepo "mbs.GO/model/repository/order"
)

// Job targets are bound at startup, after the stores exist. Jobs that fire
// before Bind are no-ops; the scheduler may tick before wiring finishes.
var (
	mu      sync.RWMutex
	catalog *catalogRepo.Store
	orders  *orderRepo.Store
)

// Bind points the scheduled jobs at the live stores. Call once from main
// before StartCron.
func Bind(c *catalogRepo.Store, o *orderRepo.Store) {
	mu.Lock()
	defer mu.Unlock()
	catalog = c
	orders = o
}

// OrdersRefreshJob re-reads the persisted order collection so edits from
// other instances become visible. The staleness window is the schedule
// interval.
func OrdersRefreshJob(args ...string) {
	mu.RLock()
	o := orders
	mu.RUnlock()
	if o == nil {
		return
	}
	o.Refresh()
}

// CatalogRefreshJob reloads catalog collections from the persisted store.
func CatalogRefreshJob(args ...string) {
	mu.RLock()
	c := catalog
	mu.RUnlock()
	if c == nil {
		return
	}
	c.Refresh()
	log.Println("cron: catalog refreshed")
}
