package database

import "gorm.io/gorm"

// OwnedBy restricts a query to rows belonging to the given owner. Every
// event/todo repository query goes through this scope so a row outside the
// caller's ownership is never visible.
func OwnedBy(ownerID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ?", ownerID)
	}
}
