package repository

import (
	"github.com/artenepo/inventory-manager/internal/shop/entity"
	"gorm.io/gorm"
)

// The supplier, brand and category repositories are thin: the entities are
// plain lookup tables and deletes rely on the store's RESTRICT constraints.

type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) List() ([]entity.Supplier, error) {
	var suppliers []entity.Supplier
	err := r.db.Order("name").Find(&suppliers).Error
	return suppliers, err
}

func (r *SupplierRepository) Get(id uint) (*entity.Supplier, error) {
	var supplier entity.Supplier
	if err := r.db.First(&supplier, id).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *SupplierRepository) Create(supplier *entity.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *SupplierRepository) Update(supplier *entity.Supplier) error {
	return r.db.Save(supplier).Error
}

func (r *SupplierRepository) Delete(id uint) error {
	return r.db.Delete(&entity.Supplier{}, id).Error
}

type BrandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

func (r *BrandRepository) List() ([]entity.Brand, error) {
	var brands []entity.Brand
	err := r.db.Order("name").Find(&brands).Error
	return brands, err
}

func (r *BrandRepository) Get(id uint) (*entity.Brand, error) {
	var brand entity.Brand
	if err := r.db.First(&brand, id).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *BrandRepository) Create(brand *entity.Brand) error {
	return r.db.Create(brand).Error
}

func (r *BrandRepository) Update(brand *entity.Brand) error {
	return r.db.Save(brand).Error
}

func (r *BrandRepository) Delete(id uint) error {
	return r.db.Delete(&entity.Brand{}, id).Error
}

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List() ([]entity.Category, error) {
	var categories []entity.Category
	err := r.db.Order("name").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) Get(id uint) (*entity.Category, error) {
	var category entity.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Create(category *entity.Category) error {
	return r.db.Create(category).Error
}

func (r *CategoryRepository) Update(category *entity.Category) error {
	return r.db.Save(category).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.db.Delete(&entity.Category{}, id).Error
}
