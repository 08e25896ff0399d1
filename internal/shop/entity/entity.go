package entity

import "gorm.io/gorm"

// AutoMigrate migrates all shop tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Supplier{},
		&Brand{},
		&Category{},
		&Product{},
		&Item{},
	)
}
