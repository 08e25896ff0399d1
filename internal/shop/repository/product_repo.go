package repository

import (
	"github.com/artenepo/inventory-manager/internal/shop/entity"
	"github.com/artenepo/inventory-manager/internal/shop/query"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns products matching the filter predicate, ordered by name,
// with brand, category and items loaded for the derived fields.
func (r *ProductRepository) List(pred query.Node) ([]entity.Product, error) {
	cond, args, err := query.Compile(pred, query.ProductScope)
	if err != nil {
		return nil, err
	}

	q := r.db.Model(&entity.Product{}).
		Select("product.*").
		Joins("LEFT JOIN brand ON brand.id = product.brand_id")
	if cond != "" {
		q = q.Where(cond, args...)
	}

	var products []entity.Product
	err = q.Order("product.name").
		Preload("Brand").
		Preload("Category").
		Preload("Items").
		Find(&products).Error
	return products, err
}

func (r *ProductRepository) Get(id uint) (*entity.Product, error) {
	var product entity.Product
	err := r.db.Preload("Brand").Preload("Category").Preload("Items").
		First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Create(product *entity.Product) error {
	return r.db.Create(product).Error
}

func (r *ProductRepository) Update(product *entity.Product) error {
	return r.db.Omit(clause.Associations).Save(product).Error
}

// Delete removes a product. The store rejects it while items reference the
// product; the violation propagates untranslated into a conflict upstream.
func (r *ProductRepository) Delete(id uint) error {
	return r.db.Delete(&entity.Product{}, id).Error
}
