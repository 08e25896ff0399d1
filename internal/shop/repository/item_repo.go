package repository

import (
	"time"

	"github.com/artenepo/inventory-manager/internal/shop/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// OldestUnsold returns up to limit unsold items of a product, oldest first.
// Creation order breaks ties, so a sale always drains the oldest stock.
func (r *ItemRepository) OldestUnsold(productID uint, limit int) ([]entity.Item, error) {
	var items []entity.Item
	err := r.db.
		Where("product_id = ? AND selling_price IS NULL", productID).
		Order("created_date, id").
		Limit(limit).
		Find(&items).Error
	return items, err
}

// CreateBatch inserts a batch of freshly stocked items in one statement,
// stamping both timestamps with the given instant.
func (r *ItemRepository) CreateBatch(items []entity.Item, now time.Time) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].CreatedDate = now
		items[i].UpdatedDate = now
	}
	return r.db.Create(&items).Error
}

// MarkSold sets the selling price on an item, stamping the sold date with
// now only when it is still empty. Only those two columns are written, so
// the creation timestamp stays untouched.
func (r *ItemRepository) MarkSold(item *entity.Item, price float64, now time.Time) error {
	soldDate := item.SoldDate
	if soldDate == nil {
		soldDate = &now
	}
	err := r.db.Model(&entity.Item{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"selling_price": price,
			"sold_date":     soldDate,
		}).Error
	if err != nil {
		return err
	}
	item.SellingPrice = &price
	item.SoldDate = soldDate
	return nil
}

// Save writes a full item row. The creation timestamp is re-stamped on every
// full save (historical behavior; sales go through MarkSold instead), and a
// non-empty selling price forces a sold date.
func (r *ItemRepository) Save(item *entity.Item, now time.Time) error {
	item.CreatedDate = now
	if item.UpdatedDate.IsZero() {
		item.UpdatedDate = now
	}
	if item.Sold() && item.SoldDate == nil {
		item.SoldDate = &now
	}
	return r.db.Omit(clause.Associations).Save(item).Error
}

func (r *ItemRepository) Get(id uint) (*entity.Item, error) {
	var item entity.Item
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
