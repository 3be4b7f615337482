package cmd

import (
	"fmt"

	"mbs.GO/config"
	catalogRepo "mbs.GO/model/repository/catalog"
	orderRepo "mbs.GO/model/repository/order"
	storeRepo "mbs.GO/model/repository/store"
)

// openStores connects the database and loads both stores. Shared by the
// commands that need live data.
func openStores() (*catalogRepo.Store, *orderRepo.Store, error) {
	db, err := config.NewDB()
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}
	kv := storeRepo.NewKVRepository(db)
	if err := kv.Migrate(); err != nil {
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	catalog := catalogRepo.NewStore(kv, config.RedisClient)
	catalog.Load()
	orders := orderRepo.NewStore(kv)
	orders.Load()
	return catalog, orders, nil
}
