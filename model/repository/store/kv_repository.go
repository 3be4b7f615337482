package store

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	storeEntity "mbs.GO/model/entity/store"
)

// KVRepository persists whole-collection JSON documents keyed by store key.
type KVRepository struct {
	db *gorm.DB
}

func NewKVRepository(db *gorm.DB) *KVRepository {
	return &KVRepository{db: db}
}

// Migrate creates the backing table.
func (r *KVRepository) Migrate() error {
	return r.db.AutoMigrate(&storeEntity.KVEntry{})
}

// Get returns the raw JSON for a key. Missing keys return (nil, false).
func (r *KVRepository) Get(key string) ([]byte, bool) {
	var entry storeEntity.KVEntry
	if err := r.db.First(&entry, "store_key = ?", key).Error; err != nil {
		return nil, false
	}
	return []byte(entry.Value), true
}

// Put upserts the JSON document for a key. The write replaces the whole
// value; concurrent writers are last-write-wins at this granularity.
func (r *KVRepository) Put(key string, value []byte) error {
	entry := storeEntity.KVEntry{Key: key, Value: value}
	upsert := clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}
	return r.db.Clauses(upsert).Create(&entry).Error
}

// Delete removes a key. Missing keys are not an error.
func (r *KVRepository) Delete(key string) error {
	return r.db.Delete(&storeEntity.KVEntry{}, "store_key = ?", key).Error
}

// Keys lists all persisted store keys.
func (r *KVRepository) Keys() ([]string, error) {
	var keys []string
	err := r.db.Model(&storeEntity.KVEntry{}).Pluck("store_key", &keys).Error
	return keys, err
}
