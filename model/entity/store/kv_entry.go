package store

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry represents one persisted collection document in the mbs_store
// table. Values are whole-collection JSON writes (last write wins).
type KVEntry struct {
	Key       string         `gorm:"column:store_key;primaryKey;size:64" json:"key"`
	Value     datatypes.JSON `gorm:"column:value" json:"value"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (KVEntry) TableName() string {
	return "mbs_store"
}

// Persisted collection keys (layout mirrors the storefront's browser store).
const (
	KeyCategories     = "mbs_categories"
	KeyBrands         = "mbs_brands"
	KeyProducts       = "mbs_products"
	KeyColors         = "mbs_colors"
	KeyDirectProducts = "mbs_direct_products"
	KeyOrders         = "mbs-orders"
)
