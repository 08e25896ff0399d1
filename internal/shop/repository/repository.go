package repository

import "gorm.io/gorm"

// Repositories bundles all shop data access.
type Repositories struct {
	Supplier *SupplierRepository
	Brand    *BrandRepository
	Category *CategoryRepository
	Product  *ProductRepository
	Item     *ItemRepository
	Report   *ReportRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Supplier: NewSupplierRepository(db),
		Brand:    NewBrandRepository(db),
		Category: NewCategoryRepository(db),
		Product:  NewProductRepository(db),
		Item:     NewItemRepository(db),
		Report:   NewReportRepository(db),
	}
}
